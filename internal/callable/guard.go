package callable

// Authorize gates a procedure on the caller's identity. It is a pure check:
// no identity fails Unauthenticated, and when requireAdmin is set a caller
// without the admin claim fails PermissionDenied.
func Authorize(identity *Identity, requireAdmin bool) error {
	if identity == nil {
		return Unauthenticated("You must be signed in to use this feature")
	}
	if requireAdmin && !identity.Admin {
		return PermissionDenied("You must be an admin to use this feature")
	}
	return nil
}
