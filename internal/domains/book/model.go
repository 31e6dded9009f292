package book

// Book is a catalog book. Author is a non-owning reference; it is written
// without an existence check and may dangle.
type Book struct {
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	AuthorID string `json:"authorId"`
	Summary  string `json:"summary"`
}

// CreateResult is the createBook success payload.
type CreateResult struct {
	BookID string `json:"bookId"`
}
