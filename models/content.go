package models

// Content is a single catalog item (movie or show).
type Content struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Synopsis      string  `json:"synopsis"`
	Cast          string  `json:"cast"`
	Director      string  `json:"director"`
	Genre         string  `json:"genre,omitempty"`
	ReleaseYear   int     `json:"release_year,omitempty"`
	AverageRating float64 `json:"average_rating"`
}

// ContentSummary is the catalog item shape returned by read endpoints.
type ContentSummary struct {
	Title         string  `json:"title"`
	Synopsis      string  `json:"synopsis"`
	Cast          string  `json:"cast"`
	Director      string  `json:"director"`
	Genre         string  `json:"genre,omitempty"`
	ReleaseYear   int     `json:"release_year,omitempty"`
	AverageRating float64 `json:"average_rating"`
}

// Summary projects the full record onto the read shape.
func (c Content) Summary() ContentSummary {
	return ContentSummary{
		Title:         c.Title,
		Synopsis:      c.Synopsis,
		Cast:          c.Cast,
		Director:      c.Director,
		Genre:         c.Genre,
		ReleaseYear:   c.ReleaseYear,
		AverageRating: c.AverageRating,
	}
}

// SearchFilter carries the optional catalog search predicates. Nil or empty
// fields are not applied; supplied fields are combined with logical AND.
type SearchFilter struct {
	Query     string
	Genre     string
	Year      *int
	MinRating *float64
}
