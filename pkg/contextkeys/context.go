package contextkeys

// ContextKey is the type for values stored in request contexts, so that
// packages cannot collide on bare strings.
type ContextKey string

const (
	// CurrentUserKey holds the *models.User resolved from the session cookie.
	CurrentUserKey ContextKey = "current_user"
)
