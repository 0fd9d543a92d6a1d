package domain

// SearchItem is an auxiliary catalog entry maintained through the search
// endpoints. It uses sequential integer ids, unlike the live collections.
type SearchItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Type     string `json:"type"`
}

// SearchResult is the unified envelope returned by the cross-collection
// search, tagging each hit with its source kind.
type SearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	IsRead      *bool  `json:"isRead,omitempty"`
}
