package auth

import "context"

type contextKey string

const userIDContextKey contextKey = "user_id"

// DefaultOwner is the owner id used for unauthenticated requests, so
// a single-user setup works without any auth configuration.
const DefaultOwner = "default"

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey).(string)
	return userID, ok
}

// OwnerUserID returns the authenticated user id, falling back to
// DefaultOwner when the request carried no token.
func OwnerUserID(ctx context.Context) string {
	if userID, ok := GetUserID(ctx); ok && userID != "" {
		return userID
	}
	return DefaultOwner
}
