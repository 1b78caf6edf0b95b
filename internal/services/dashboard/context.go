package dashboard

import "context"

type contextKey string

const renderIDContextKey contextKey = "renderID"

// WithRenderID tags ctx with the id of the page render it belongs to.
func WithRenderID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, renderIDContextKey, id)
}

// RenderIDFromContext returns the render id, or "-" when ctx carries none.
func RenderIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(renderIDContextKey).(string); ok && id != "" {
		return id
	}
	return "-"
}
