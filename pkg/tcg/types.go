package tcg

// Pagination mirrors the meta block the API attaches to list responses.
// It is only present on endpoints that paginate.
type Pagination struct {
	Total   int  `json:"total"   yaml:"total"`
	Limit   int  `json:"limit"   yaml:"limit"`
	Offset  int  `json:"offset"  yaml:"offset"`
	HasMore bool `json:"hasMore" yaml:"hasMore"`
}

// Usage mirrors the _metadata block returned on every successful call. The
// counters report the account's quota state as of the request that carried
// them.
type Usage struct {
	RequestLimit      int    `json:"apiRequestLimit"      yaml:"apiRequestLimit"`
	RequestsUsed      int    `json:"apiRequestsUsed"      yaml:"apiRequestsUsed"`
	RequestsRemaining int    `json:"apiRequestsRemaining" yaml:"apiRequestsRemaining"`
	RateLimit         int    `json:"apiRateLimit"         yaml:"apiRateLimit"`
	Plan              string `json:"apiPlan"              yaml:"apiPlan"`
}

// Game represents a supported trading card game.
type Game struct {
	ID         string `json:"id"                   yaml:"id"`
	Name       string `json:"name"                 yaml:"name"`
	CardsCount int    `json:"cards_count"          yaml:"cards_count"`
	SetsCount  int    `json:"sets_count"           yaml:"sets_count"`
}

// Set represents a card set within a game.
type Set struct {
	ID          string `json:"id"                     yaml:"id"`
	Name        string `json:"name"                   yaml:"name"`
	Game        string `json:"game"                   yaml:"game"`
	GameID      string `json:"game_id"                yaml:"game_id"`
	CardsCount  int    `json:"cards_count"            yaml:"cards_count"`
	ReleaseDate string `json:"release_date,omitempty" yaml:"release_date,omitempty"`
}

// Card represents one card together with its priced variants.
type Card struct {
	ID          string    `json:"id"                     yaml:"id"`
	Name        string    `json:"name"                   yaml:"name"`
	Game        string    `json:"game"                   yaml:"game"`
	Set         string    `json:"set"                    yaml:"set"`
	Number      string    `json:"number,omitempty"       yaml:"number,omitempty"`
	Rarity      string    `json:"rarity,omitempty"       yaml:"rarity,omitempty"`
	TCGPlayerID string    `json:"tcgplayerId,omitempty"  yaml:"tcgplayerId,omitempty"`
	Variants    []Variant `json:"variants"               yaml:"variants"`
}

// Variant is one condition/printing combination of a card with its price.
type Variant struct {
	ID          string  `json:"id"                    yaml:"id"`
	Condition   string  `json:"condition"             yaml:"condition"`
	Printing    string  `json:"printing"              yaml:"printing"`
	Price       float64 `json:"price"                 yaml:"price"`
	LastUpdated int64   `json:"lastUpdated"           yaml:"lastUpdated"`
	PriceChange float64 `json:"priceChange24hr"       yaml:"priceChange24hr"`
}

// BatchLookup identifies one card for a batch price lookup. Provide either a
// TCGplayer ID or a card ID; condition and printing narrow the variants
// returned. Empty fields are omitted from the request body.
type BatchLookup struct {
	TCGPlayerID string `json:"tcgplayerId,omitempty" yaml:"tcgplayerId,omitempty"`
	CardID      string `json:"cardId,omitempty"      yaml:"cardId,omitempty"`
	VariantID   string `json:"variantId,omitempty"   yaml:"variantId,omitempty"`
	Condition   string `json:"condition,omitempty"   yaml:"condition,omitempty"`
	Printing    string `json:"printing,omitempty"    yaml:"printing,omitempty"`
}

// GameList is the data payload of the games endpoint.
type GameList = []Game

// SetList is the data payload of one page of the sets endpoint.
type SetList = []Set

// CardList is the data payload of one page of the cards endpoint.
type CardList = []Card
