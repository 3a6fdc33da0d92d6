package models

// Book lives in the in-memory catalog, not in the database. It goes through
// the same repository pattern as the persistent models so handlers don't
// care where the rows come from.
type Book struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Rating      int    `json:"rating"`
}
