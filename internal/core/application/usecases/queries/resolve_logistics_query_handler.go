package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"support/internal/core/domain/model/kernel"
	"support/internal/core/domain/services"
	"support/internal/core/ports"
	"support/internal/pkg/errs"
	"support/internal/pkg/metrics"
)

// user-facing message templates for the non-status outcomes.
const (
	orderNotFoundFormat = "I couldn't find any information for order #%s. " +
		"Please check the order number and try again."
	productNotFoundFormat = "I couldn't find any orders for products containing '%s'."
	multipleOrdersFormat  = "Found %d orders containing '%s'. Here are the details:"
	guidanceMessage       = "I need more specific information to help you. Please provide " +
		"an order number (e.g., 'Where is my order #123?') or mention a specific product."
)

// ResolveLogisticsQueryHandler resolves order-related messages against the
// order store. It applies the extraction pipeline in strict precedence:
// an explicit order reference always wins over product matching, and an
// unknown reference reports "not found" rather than falling through.
//
// The handler returns an error only for infrastructure failures; every
// business outcome, including "not found", is a Resolution.
type ResolveLogisticsQueryHandler struct {
	store     ports.OrderStore
	extractor services.ReferenceExtractor
	matcher   services.ProductMatcher
	formatter services.StatusMessageFormatter
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewResolveLogisticsQueryHandler creates a handler over the given order
// store and product matcher. Metrics may be nil.
func NewResolveLogisticsQueryHandler(
	store ports.OrderStore,
	matcher services.ProductMatcher,
	m *metrics.Metrics,
	logger *slog.Logger,
) ResolveLogisticsQueryHandler {
	return ResolveLogisticsQueryHandler{
		store:     store,
		extractor: services.NewReferenceExtractor(),
		matcher:   matcher,
		formatter: services.NewStatusMessageFormatter(),
		metrics:   m,
		logger:    logger.With("component", "logistics_resolver"),
	}
}

// Handle resolves the query to a Resolution.
func (h ResolveLogisticsQueryHandler) Handle(ctx context.Context, query ResolveLogisticsQuery) (Resolution, error) {
	if err := query.Validate(); err != nil {
		return Resolution{}, err
	}

	started := time.Now()
	defer func() {
		if h.metrics != nil {
			h.metrics.ResolveLatency.Observe(time.Since(started).Seconds())
		}
	}()

	if id, ok := h.extractor.Extract(query.Text()); ok {
		return h.resolveByReference(ctx, id)
	}

	if matches := h.matcher.Match(query.Text()); len(matches) > 0 {
		// A single-category search uses the first match only; the full set
		// stays available to callers of the matcher itself.
		return h.resolveByProduct(ctx, matches[0])
	}

	h.observeOutcome("guidance")
	return Resolution{Succeeded: false, Message: guidanceMessage}, nil
}

func (h ResolveLogisticsQueryHandler) resolveByReference(ctx context.Context, id kernel.OrderID) (Resolution, error) {
	view, err := h.store.GetOrderView(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			h.logger.InfoContext(ctx, "order reference not found", "order_id", id.String())
			h.observeOutcome("order_not_found")
			return Resolution{
				Succeeded: false,
				Message:   fmt.Sprintf(orderNotFoundFormat, id.String()),
			}, nil
		}
		return Resolution{}, err
	}

	h.observeOutcome("order")
	return Resolution{
		Succeeded: true,
		Message:   h.formatter.Format(view),
		Order:     &view,
	}, nil
}

func (h ResolveLogisticsQueryHandler) resolveByProduct(ctx context.Context, category services.Category) (Resolution, error) {
	views, err := h.store.FindByProduct(ctx, category.Label)
	if err != nil {
		return Resolution{}, err
	}

	switch len(views) {
	case 0:
		h.observeOutcome("product_not_found")
		return Resolution{
			Succeeded: false,
			Message:   fmt.Sprintf(productNotFoundFormat, category.Label),
		}, nil
	case 1:
		h.observeOutcome("product")
		return Resolution{
			Succeeded: true,
			Message:   h.formatter.Format(views[0]),
			Order:     &views[0],
		}, nil
	default:
		h.observeOutcome("product")
		return Resolution{
			Succeeded: true,
			Message:   fmt.Sprintf(multipleOrdersFormat, len(views), category.Label),
			Orders:    views,
		}, nil
	}
}

func (h ResolveLogisticsQueryHandler) observeOutcome(outcome string) {
	if h.metrics != nil {
		h.metrics.ResolutionsTotal.WithLabelValues(outcome).Inc()
	}
}
