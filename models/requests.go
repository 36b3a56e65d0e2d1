package models

// SearchRequest represents a train search from the home screen
type SearchRequest struct {
	From  string `json:"from" binding:"required"`
	To    string `json:"to" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Class string `json:"class"`
}

// SearchResult is one train in a search response, priced for the
// requested class
type SearchResult struct {
	Train       Train  `json:"train"`
	Class       string `json:"class"`
	FarePerSeat int    `json:"fare_per_seat"`
}

// SearchResponse represents the search results
type SearchResponse struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	Date    string         `json:"date"`
	Results []SearchResult `json:"results"`
}
