package validator

import "context"

type contextKey struct{}

type sessionKey struct{}

// WithContext stores v in ctx.
func WithContext(ctx context.Context, v *Validator) context.Context {
	return context.WithValue(ctx, contextKey{}, v)
}

// FromContext returns the request's Validator stored by Middleware.
func FromContext(ctx context.Context) (*Validator, bool) {
	if ctx == nil {
		return nil, false
	}
	v, ok := ctx.Value(contextKey{}).(*Validator)
	return v, ok && v != nil
}

// SessionIDFromContext returns the id Middleware assigned to the request's
// validation session, or "".
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

func withSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}
