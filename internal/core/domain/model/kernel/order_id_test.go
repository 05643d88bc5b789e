package kernel_test

import (
	"encoding/json"
	"testing"

	"support/internal/core/domain/model/kernel"
	"support/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("positive_value_is_valid", func(t *testing.T) {
		id, err := kernel.NewOrderID(42)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id.Value())
		assert.Equal(t, "42", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("zero_is_rejected", func(t *testing.T) {
		_, err := kernel.NewOrderID(0)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_is_rejected", func(t *testing.T) {
		_, err := kernel.NewOrderID(-7)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var id kernel.OrderID
		err := id.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, _ := kernel.NewOrderID(1)
	b, _ := kernel.NewOrderID(1)
	c, _ := kernel.NewOrderID(2)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestOrderID_JSONRoundTrip(t *testing.T) {
	id, err := kernel.NewOrderID(42)
	require.NoError(t, err)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, "42", string(data))

	var restored kernel.OrderID
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.True(t, id.IsEqual(restored))
}

func TestOrderID_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not a number", data: `"abc"`},
		{name: "zero", data: "0"},
		{name: "negative", data: "-7"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var id kernel.OrderID
			err := json.Unmarshal([]byte(test.data), &id)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
