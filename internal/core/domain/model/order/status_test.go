package order_test

import (
	"testing"

	"support/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_Is(t *testing.T) {
	testCases := []struct {
		name      string
		status    order.DeliveryStatus
		canonical order.DeliveryStatus
		expected  bool
	}{
		{"exact_match", order.StatusDelivered, order.StatusDelivered, true},
		{"lowercase_match", order.DeliveryStatus("delivered"), order.StatusDelivered, true},
		{"uppercase_match", order.DeliveryStatus("IN TRANSIT"), order.StatusInTransit, true},
		{"mixed_case_match", order.DeliveryStatus("ShIpPeD"), order.StatusShipped, true},
		{"different_status", order.StatusProcessing, order.StatusDelivered, false},
		{"free_text_status", order.DeliveryStatus("Held at customs"), order.StatusInTransit, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.Is(tc.canonical))
		})
	}
}

func TestDeliveryStatus_IsCanonical(t *testing.T) {
	assert.True(t, order.StatusProcessing.IsCanonical())
	assert.True(t, order.DeliveryStatus("in transit").IsCanonical())
	assert.False(t, order.DeliveryStatus("Held at customs").IsCanonical())
	assert.False(t, order.DeliveryStatus("").IsCanonical())
}
