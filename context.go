package vault

import "context"

type contextKey int

const (
	contextKeyHeight contextKey = iota
)

// WithHeight sets the current progress counter value for the duration
// of this context. The host runtime is responsible for supplying a
// strictly increasing value.
func WithHeight(ctx context.Context, height int64) context.Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current progress counter value as declared in
// the context, or false if none was set.
func GetHeight(ctx context.Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// IsExpired returns true if the given expiration height is no longer in
// the future as compared to the "now" declared in the context.
// Expiration is inclusive, meaning that if current height is equal to
// the expiration height then this function returns true.
func IsExpired(ctx context.Context, expiration int64) bool {
	now, _ := GetHeight(ctx)
	return now >= expiration
}
