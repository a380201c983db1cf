package adapter

import (
	"context"

	"github.com/google/uuid"
)

// ReportCache stores computed reports per user.
// Implementations must treat a miss and a decode failure the same way.
type ReportCache interface {
	// Get loads a cached value into dest. It returns false on a miss.
	Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error)

	// Set stores value under key for the user.
	Set(ctx context.Context, userID uuid.UUID, key string, value any) error

	// Invalidate drops every cached report of the user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
