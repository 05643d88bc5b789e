package queries

import (
	"errors"
	"strings"

	"support/internal/pkg/guard"
)

var (
	ErrResolveLogisticsQueryIsNotConstructed = errors.New(
		"ResolveLogisticsQuery must be created via NewResolveLogisticsQuery constructor",
	)
	ErrQueryTextIsRequired = errors.New("query text is required")
)

// ResolveLogisticsQuery asks the pipeline to answer one order-related
// customer message from order data.
//
// Example:
//
//	query, err := NewResolveLogisticsQuery("Where is my order #1?")
//	if err != nil {
//	    return err
//	}
//
//	resolution, err := handler.Handle(ctx, query)
//	if err != nil {
//	    // infrastructure failure; mask before replying
//	    return err
//	}
//	fmt.Println(resolution.Message)
type ResolveLogisticsQuery struct { //nolint:recvcheck //using for validation
	text string

	guard guard.ConstructorGuard
}

// NewResolveLogisticsQuery creates a query for the given message text.
// Returns an error when the text is empty or whitespace only.
func NewResolveLogisticsQuery(text string) (ResolveLogisticsQuery, error) {
	if strings.TrimSpace(text) == "" {
		return ResolveLogisticsQuery{}, ErrQueryTextIsRequired
	}

	return ResolveLogisticsQuery{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrResolveLogisticsQueryIsNotConstructed if validation fails.
func (q ResolveLogisticsQuery) Validate() error {
	return q.guard.Validate(ErrResolveLogisticsQueryIsNotConstructed)
}

// Text returns the raw customer message.
func (q ResolveLogisticsQuery) Text() string {
	return q.text
}
