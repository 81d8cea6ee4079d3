package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, slog.Default())
}

// FromContextOr returns the logger stored in ctx, or fallback.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	l, ok := ctx.Value(ctxKey{}).(*slog.Logger)
	if !ok {
		return fallback
	}
	return l
}

// WithCallID attaches a call_id attribute to the context logger, starting
// from fallback when ctx carries none.
func WithCallID(ctx context.Context, fallback *slog.Logger, callID string) (context.Context, *slog.Logger) {
	l := FromContextOr(ctx, fallback).With("call_id", callID)
	return WithContext(ctx, l), l
}
