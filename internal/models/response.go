package models

type SearchMetadata struct {
	TotalResults    int   `json:"total_results"`
	SearchTimeMs    int64 `json:"search_time_ms"`
	CacheHit        bool  `json:"cache_hit"`
	CatalogDegraded bool  `json:"catalog_degraded"`
}

type SearchResponse struct {
	Query       SearchQuery    `json:"query"`
	Metadata    SearchMetadata `json:"metadata"`
	Itineraries []Itinerary    `json:"itineraries"`
}

// RoundTripResponse keeps the outbound and inbound lists separate:
// the two sides are selected independently and are never cross-joined.
type RoundTripResponse struct {
	Query    SearchQuery    `json:"query"`
	Metadata SearchMetadata `json:"metadata"`
	Outbound []Itinerary    `json:"outbound"`
	Inbound  []Itinerary    `json:"inbound"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
