package callable

// Identity is the authenticated caller of a procedure, supplied by the
// transport layer per call. A nil *Identity means the call is anonymous.
type Identity struct {
	// Subject is the opaque account id (the JWT user_id claim).
	Subject string

	// Email as carried by the token; used by the profile escalation flow.
	Email string

	// Admin is the privileged-role claim.
	Admin bool
}
