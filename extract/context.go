package extract

import "context"

type statsKey struct{}

// Stats receives run counters when attached to the context.
type Stats struct {
	Found     int
	Converted int
	Skipped   int
	Failed    int
}

// WithStats attaches a counters receiver to the context.
func WithStats(ctx context.Context, stats *Stats) context.Context {
	if ctx == nil || stats == nil {
		return ctx
	}
	return context.WithValue(ctx, statsKey{}, stats)
}

func statsFromContext(ctx context.Context) *Stats {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(statsKey{}).(*Stats); ok {
		return v
	}
	return nil
}
