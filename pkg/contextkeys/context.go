package contextkeys

// Custom key type avoids collisions with other packages writing to the
// same context.
type contextKey string

const (
	// UserIDKey holds the authenticated user's id.
	UserIDKey = contextKey("user_id")

	// RoleKey holds the authenticated user's role as returned by the
	// auth provider. The application trusts this value.
	RoleKey = contextKey("role")

	// ImpersonationKey holds an auth.ImpersonationGrant when a
	// super admin is acting as another user. Absent otherwise.
	ImpersonationKey = contextKey("impersonation")
)
