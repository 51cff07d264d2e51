package model

// SearchResult pairs a publication with its relevance score for a
// query. Results are ordered by descending score; ties keep the
// original corpus order.
type SearchResult struct {
	Publication Publication `json:"publication"`
	Score       float64     `json:"score"`
}
