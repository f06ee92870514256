package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/csvtext"
)

var templateHeader = []string{"Date", "Channel", "Campaign", "Spend", "Impressions", "Clicks", "Conversions", "Revenue"}

func TestMapRecords_Errors(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]string
		missing []string
		empty   bool
	}{
		{
			name:  "Sem linhas",
			rows:  nil,
			empty: true,
		},
		{
			name:    "Sem a coluna Revenue",
			rows:    [][]string{{"Date", "Channel", "Campaign", "Spend", "Impressions", "Clicks", "Conversions"}},
			missing: []string{"Revenue"},
		},
		{
			name:    "Várias colunas ausentes na ordem obrigatória",
			rows:    [][]string{{"Revenue", "Channel", "Date"}},
			missing: []string{"Campaign", "Spend", "Impressions", "Clicks", "Conversions"},
		},
		{
			name:    "Nomes são sensíveis a maiúsculas",
			rows:    [][]string{{"date", "Channel", "Campaign", "Spend", "Impressions", "Clicks", "Conversions", "Revenue"}},
			missing: []string{"Date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := MapRecords(tt.rows)
			require.Error(t, err)
			assert.Nil(t, result)

			if tt.empty {
				assert.ErrorIs(t, err, ErrEmptyInput)
				return
			}

			mcErr, ok := IsMissingColumns(err)
			require.True(t, ok)
			assert.Equal(t, tt.missing, mcErr.Missing)
		})
	}
}

func TestMapRecords_MissingColumnsMessage(t *testing.T) {
	_, err := MapRecords([][]string{{"Date", "Channel"}})

	assert.EqualError(t, err, "missing required columns: Campaign, Spend, Impressions, Clicks, Conversions, Revenue")
}

func TestMapRecords_HeaderOnly(t *testing.T) {
	result, err := MapRecords([][]string{templateHeader})

	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, result.RowCount)
}

func TestMapRecords_Rows(t *testing.T) {
	rows := [][]string{
		{" Revenue ", "Date", "Channel", "Campaign", "Spend", "Impressions", "Clicks", "Conversions", "Date"},
		{"$2,400.50", "2025-07-01", " Instagram ", "DT-Launch", "350", "12000", "480", "24", "ignored"},
		{"100", "2025-07-02T10:30:00Z", "", "", "abc", "1.2.3", "", "-3", ""},
		{"100", "07/02/2025", "Email", "X", "1", "1", "1", "1", ""},
		{"", "2025-07-03"},
	}

	result, err := MapRecords(rows)
	require.NoError(t, err)

	assert.Equal(t, 4, result.RowCount)
	assert.Equal(t, 1, result.DroppedRows)
	require.Len(t, result.Records, 3)

	first := result.Records[0]
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Instagram", first.Channel)
	assert.Equal(t, "DT-Launch", first.Campaign)
	assert.Equal(t, 350.0, first.Spend)
	assert.Equal(t, 2400.5, first.Revenue)

	second := result.Records[1]
	assert.Equal(t, "2025-07-02", second.Day())
	assert.Equal(t, domain.UnspecifiedChannel, second.Channel)
	assert.Equal(t, domain.UnspecifiedCampaign, second.Campaign)
	assert.Equal(t, 0.0, second.Spend)
	assert.Equal(t, 0.0, second.Impressions)
	assert.Equal(t, 0.0, second.Clicks)
	assert.Equal(t, -3.0, second.Conversions)

	// Linha curta: células ausentes valem vazio
	third := result.Records[2]
	assert.Equal(t, "2025-07-03", third.Day())
	assert.Equal(t, domain.UnspecifiedChannel, third.Channel)
	assert.Equal(t, 0.0, third.Revenue)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"350", 350},
		{" 1,200 ", 1200},
		{"$99.90", 99.9},
		{"R$ 1.5", 1.5},
		{"-12", -12},
		{"", 0},
		{"n/a", 0},
		{"1.2.3", 0},
		{"1.234.567", 0},
		{"12-3", 0},
		{"--", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in))
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"2025-07-01", true, "2025-07-01"},
		{" 2025-07-01 ", true, "2025-07-01"},
		{"2025-07-01T23:59:59-03:00", true, "2025-07-01"},
		{"2025-07-01 08:00:00", true, "2025-07-01"},
		{"", false, ""},
		{"yesterday", false, ""},
		{"2025-13-01", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format(time.DateOnly))
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestTemplate(t *testing.T) {
	result, err := MapRecords(csvtext.Parse(TemplateCSV()))
	require.NoError(t, err)

	assert.Equal(t, 6, result.RowCount)
	assert.Equal(t, 0, result.DroppedRows)
	require.Len(t, result.Records, 6)

	var spend, revenue float64
	channels := map[string]bool{}
	campaigns := map[string]bool{}
	for _, r := range result.Records {
		spend += r.Spend
		revenue += r.Revenue
		channels[r.Channel] = true
		campaigns[r.Campaign] = true
	}

	assert.Equal(t, 1740.0, spend)
	assert.Equal(t, 13900.0, revenue)
	assert.Len(t, channels, 4)
	assert.Len(t, campaigns, 4)
}

func TestMapRecords_ByteOrderMark(t *testing.T) {
	result, err := MapRecords(csvtext.Parse("\uFEFF" + TemplateCSV()))
	require.NoError(t, err)

	assert.Len(t, result.Records, 6)
	assert.Equal(t, "2025-07-01", result.Records[0].Day())
}
