// Package tcg provides types, interfaces, and helpers for working with the
// card pricing API.
//
// # Overview
//
// The tcg package defines the domain types (Game, Set, Card, Variant), the
// uniform response envelope, the query parameter serializer, and the
// pagination helpers, plus the interfaces for resource-oriented clients
// (GamesClient, SetsClient, CardsClient). A concrete implementation of these
// clients is provided by the tcgclient package, which wires configuration,
// transport, and API key resolution. Most consumers should import tcgclient
// to construct a client and then interact with the resource interfaces
// exposed here.
//
// Getting a client
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
//	  cli, err := tcgclient.New(&tcg.Config{APIKey: "tcg_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // Search the first page of cards
//	  cards, err := cli.Cards().Search(ctx, tcg.NewParams().WithQuery("charizard").WithGame("pokemon"))
//	  if err != nil { log.Fatal(err) }
//	  _ = cards
//	}
//
// # Responses and errors
//
// Every call returns a Response whose Data, Pagination, and Usage fields
// mirror the server envelope. Two failure channels exist and are never
// conflated: a non-2xx exchange returns a *RequestError from the call, while
// a 2xx exchange whose envelope carries an error/code pair is reported on the
// Response itself — check Failed() or APIError(). Helpers IsNotFound,
// IsUnauthorized, and IsRateLimited branch on common cases of either channel.
//
// # Queries and pagination
//
// Use Params to express call parameters. Absent fields stay off the wire, the
// search text field is renamed to its wire key "q", and array values are
// comma-joined for query strings but kept as arrays in JSON bodies. List
// endpoints paginate with limit/offset; the package provides a pull-based
// iterator and collecting helpers:
//
//	it := cli.Sets().Iterate(ctx, tcg.NewParams().WithGame("pokemon"), 50)
//	for it.HasNext() {
//	  set, err := it.Next()
//	  if err != nil { break }
//	  _ = set
//	}
//
// or fetch all results at once via SetsClient.ListAll / CardsClient.SearchAll.
// Pages are fetched strictly on demand: breaking out of the loop issues no
// further requests.
package tcg
