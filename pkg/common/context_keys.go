package common

import "context"

type contextKey string

const (
	TraceIdKey    contextKey = "trace_id"
	AdminClaimKey contextKey = "admin_claims"
)

// TraceID returns the request trace id carried by ctx, if any.
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(TraceIdKey).(string)
	return id
}
