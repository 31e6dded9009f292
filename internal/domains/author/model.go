package author

// Author is a catalog author. Uniqueness is per exact name, case-sensitive.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateResult is the createAuthor success payload.
type CreateResult struct {
	AuthorID string `json:"authorId"`
}
