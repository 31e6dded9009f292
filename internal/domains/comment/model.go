package comment

import "time"

// Comment on a book. Username is the commenting public profile's id,
// resolved from the caller's identity at write time, never caller-supplied.
// Book is a non-owning reference and may dangle.
type Comment struct {
	Text        string    `json:"text"`
	Username    string    `json:"username"`
	DateCreated time.Time `json:"dateCreated"`
	BookID      string    `json:"bookId"`
}

// PostResult is the postComment success payload.
type PostResult struct {
	CommentID string `json:"commentId"`
}
