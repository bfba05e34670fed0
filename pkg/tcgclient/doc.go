// Package tcgclient wires configuration, HTTP transport, and API key
// resolution on top of the types and interfaces defined in the tcg package.
// Most applications should import tcgclient to build a client, then use the
// returned tcg.Client to access the resource-specific clients Games(),
// Sets(), and Cards().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/cardindex-io/tcgpricing/pkg/tcg"
//	  "github.com/cardindex-io/tcgpricing/pkg/tcgclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: key from the TCG_API_KEY environment variable.
//	  cli, err := tcgclient.New(&tcg.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an explicit key:
//	  cli, err = tcgclient.NewWithKey("tcg_live_...")
//	  if err != nil { log.Fatal(err) }
//
//	  sets, err := cli.Sets().List(ctx, tcg.NewParams().WithGame("pokemon"))
//	  if err != nil { log.Fatal(err) }
//	  _ = sets
//	}
//
// Construction fails fast with tcg.ErrAPIKeyRequired when no key is
// available from either source; no network call is made before that check.
package tcgclient
