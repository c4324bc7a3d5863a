package standings

import "encoding/json"

// PageSize is the fixed number of rows FPL returns per standings page.
const PageSize = 50

// Page is one page of a classic league's standings as FPL serves it.
type Page struct {
	League          json.RawMessage `json:"league"`
	NewEntries      json.RawMessage `json:"new_entries,omitempty"`
	LastUpdatedData json.RawMessage `json:"last_updated_data,omitempty"`
	Standings       Block           `json:"standings"`
}

type Block struct {
	HasNext bool              `json:"has_next"`
	Page    int               `json:"page"`
	Results []json.RawMessage `json:"results"`
}

// Combined is the whole league assembled from every page. It keeps the
// upstream shape so clients can consume it as if it were a single page.
type Combined struct {
	League          json.RawMessage `json:"league"`
	NewEntries      json.RawMessage `json:"new_entries,omitempty"`
	LastUpdatedData json.RawMessage `json:"last_updated_data,omitempty"`
	Standings       Block           `json:"standings"`
}

// NewCombined seeds the aggregate from the first page, which owns the league
// metadata.
func NewCombined(first Page) Combined {
	results := make([]json.RawMessage, 0, len(first.Standings.Results))
	results = append(results, first.Standings.Results...)
	return Combined{
		League:          first.League,
		NewEntries:      first.NewEntries,
		LastUpdatedData: first.LastUpdatedData,
		Standings: Block{
			HasNext: false,
			Page:    first.Standings.Page,
			Results: results,
		},
	}
}

// Append adds only the rows of a later page.
func (c *Combined) Append(page Page) {
	c.Standings.Results = append(c.Standings.Results, page.Standings.Results...)
}

func (c Combined) EntryCount() int {
	return len(c.Standings.Results)
}
