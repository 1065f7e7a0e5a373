package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressColumn(t *testing.T) {
	addr := Address{
		Street:      "1200 Harbor Blvd",
		City:        "Long Beach",
		State:       "CA",
		Zip:         "90802",
		Country:     "US",
		Coordinates: &GeoPoint{Lat: 33.77, Lng: -118.19},
	}

	value, err := addr.Value()
	require.NoError(t, err)

	var scanned Address
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, addr, scanned)
}

func TestStatusUpdateListColumn(t *testing.T) {
	t.Run("nil list stores empty array", func(t *testing.T) {
		var l StatusUpdateList
		value, err := l.Value()
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	})

	t.Run("round trip preserves order", func(t *testing.T) {
		history := StatusUpdateList{
			{Status: "pending", Timestamp: "2024-03-01T10:00:00Z", UpdatedBy: "system"},
			{Status: "dispatched", Timestamp: "2024-03-01T11:30:00Z", UpdatedBy: "ops@example.com", Notes: "driver assigned"},
		}
		value, err := history.Value()
		require.NoError(t, err)

		var scanned StatusUpdateList
		require.NoError(t, scanned.Scan(value))
		require.Len(t, scanned, 2)
		assert.Equal(t, history, scanned)
	})

	t.Run("scan from string source", func(t *testing.T) {
		var scanned StatusUpdateList
		require.NoError(t, scanned.Scan(`[{"status":"pending","timestamp":"t","updatedBy":"u"}]`))
		require.Len(t, scanned, 1)
		assert.Equal(t, "pending", scanned[0].Status)
	})

	t.Run("scan nil yields empty", func(t *testing.T) {
		var scanned StatusUpdateList
		require.NoError(t, scanned.Scan(nil))
		assert.Empty(t, scanned)
	})
}

func TestRateBreakdownColumn(t *testing.T) {
	rb := RateBreakdown{
		BaseRate:      "1000.00",
		FuelSurcharge: "150.00",
		AdditionalCharges: []RateComponent{
			{Description: "overweight permit", Quantity: 1, UnitPrice: "75.00", Total: "75.00"},
		},
	}

	value, err := rb.Value()
	require.NoError(t, err)

	var scanned RateBreakdown
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, rb, scanned)
}

func TestScanUnsupportedSource(t *testing.T) {
	var addr Address
	assert.Error(t, addr.Scan(42))
}
