// Package contexthelpers carries request-scoped values between middleware and
// handlers without leaking context key types.
package contexthelpers

import "context"

type contextKey string

const (
	authenticatedUserIDContextKey = contextKey("authenticatedUserID")
	isAuthenticatedContextKey     = contextKey("isAuthenticated")
	currentPathContextKey         = contextKey("currentPath")
)

// WithAuthenticatedUserID marks the context as belonging to the given user.
func WithAuthenticatedUserID(ctx context.Context, userID int) context.Context {
	ctx = context.WithValue(ctx, authenticatedUserIDContextKey, userID)
	return context.WithValue(ctx, isAuthenticatedContextKey, true)
}

// AuthenticatedUserID returns the user id set by the session middleware, or 0.
func AuthenticatedUserID(ctx context.Context) int {
	userID, ok := ctx.Value(authenticatedUserIDContextKey).(int)
	if !ok {
		return 0
	}
	return userID
}

// IsAuthenticated reports whether the session middleware resolved a user.
func IsAuthenticated(ctx context.Context) bool {
	isAuthenticated, ok := ctx.Value(isAuthenticatedContextKey).(bool)
	if !ok {
		return false
	}
	return isAuthenticated
}

// WithCurrentPath stores the request path for logging.
func WithCurrentPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, currentPathContextKey, path)
}

// CurrentPath returns the request path stored by the middleware, or "".
func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(currentPathContextKey).(string)
	if !ok {
		return ""
	}
	return currentPath
}
