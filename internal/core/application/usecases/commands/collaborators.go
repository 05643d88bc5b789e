package commands

import (
	"context"

	"support/internal/core/application/usecases/queries"
)

// LogisticsResolver resolves one order-related message against order data.
// Satisfied by queries.ResolveLogisticsQueryHandler.
type LogisticsResolver interface {
	Handle(ctx context.Context, query queries.ResolveLogisticsQuery) (queries.Resolution, error)
}
