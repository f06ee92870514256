package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_MarshalJSON(t *testing.T) {
	r := Record{
		Date:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Channel:     "Instagram",
		Campaign:    "DT-Launch",
		Spend:       350.5,
		Impressions: 12000,
		Clicks:      480,
		Conversions: 24,
		Revenue:     2400,
	}

	b, err := json.Marshal([]Record{r})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"date":"2025-07-01","channel":"Instagram","campaign":"DT-Launch","spend":350.5,"impressions":12000,"clicks":480,"conversions":24,"revenue":2400}]`, string(b))
}

func TestDataset_Len(t *testing.T) {
	var d *Dataset
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 2, (&Dataset{Records: make([]Record, 2)}).Len())
}
