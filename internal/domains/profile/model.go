package profile

// PublicProfile is keyed by its caller-chosen username: the username is the
// document id, not a field. Two uniqueness constraints hold independently:
// one profile per user and one profile per username.
type PublicProfile struct {
	Username string `json:"username"`
	UserID   string `json:"userId"`
}

// CreateResult is the createPublicProfile success payload.
type CreateResult struct {
	Username string `json:"username"`
}
