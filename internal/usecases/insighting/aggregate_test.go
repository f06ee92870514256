package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing"
	"github.com/vfg2006/campaign-insights-api/pkg/csvtext"
)

func templateRecords(t *testing.T) []domain.Record {
	t.Helper()

	result, err := importing.MapRecords(csvtext.Parse(importing.TemplateCSV()))
	require.NoError(t, err)
	require.Len(t, result.Records, 6)

	return result.Records
}

func record(date, channel, campaign string, spend, impressions, clicks, conversions, revenue float64) domain.Record {
	d, _ := time.Parse(time.DateOnly, date)
	return domain.Record{
		Date:        d,
		Channel:     channel,
		Campaign:    campaign,
		Spend:       spend,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Revenue:     revenue,
	}
}

func TestCalculateTotals_Template(t *testing.T) {
	totals := CalculateTotals(templateRecords(t))

	assert.Equal(t, 6, totals.Records)
	assert.Equal(t, 1740.0, totals.Spend)
	assert.Equal(t, 13900.0, totals.Revenue)
	assert.Equal(t, 57000.0, totals.Impressions)
	assert.Equal(t, 2540.0, totals.Clicks)
	assert.Equal(t, 129.0, totals.Conversions)

	require.NotNil(t, totals.ROAS)
	assert.InDelta(t, 7.99, *totals.ROAS, 0.005)
	require.NotNil(t, totals.CPM)
	assert.InDelta(t, 1740.0/57000.0*1000, *totals.CPM, 1e-9)
}

func TestCalculateTotals_Empty(t *testing.T) {
	totals := CalculateTotals(nil)

	assert.Equal(t, 0, totals.Records)
	assert.Nil(t, totals.ROAS)
	assert.Nil(t, totals.CTR)
	assert.Nil(t, totals.CVR)
	assert.Nil(t, totals.CPA)
	assert.Nil(t, totals.CPC)
	assert.Nil(t, totals.CPM)
}

func TestCalculateRatios_ZeroDenominators(t *testing.T) {
	ratios := CalculateRatios(domain.Sums{Spend: 100, Impressions: 1000, Clicks: 0, Conversions: 0, Revenue: 0})

	assert.Nil(t, ratios.CPC)
	assert.Nil(t, ratios.CVR)
	assert.Nil(t, ratios.CPA)
	require.NotNil(t, ratios.ROAS)
	assert.Equal(t, 0.0, *ratios.ROAS)
	require.NotNil(t, ratios.CTR)
	assert.Equal(t, 0.0, *ratios.CTR)
	require.NotNil(t, ratios.CPM)
	assert.Equal(t, 100.0, *ratios.CPM)
}

func TestByDate(t *testing.T) {
	points := ByDate(templateRecords(t))

	require.Len(t, points, 3)
	assert.Equal(t, []string{"2025-07-01", "2025-07-02", "2025-07-03"},
		[]string{points[0].Date, points[1].Date, points[2].Date})
	assert.Equal(t, 600.0, points[0].Spend)
	assert.Equal(t, 4000.0, points[0].Revenue)
	assert.InDelta(t, 4800.0/360.0, points[1].ROAS, 1e-9)
}

func TestByDate_SortsOutOfOrderInputAndZeroSpendIsZeroROAS(t *testing.T) {
	points := ByDate([]domain.Record{
		record("2025-07-05", "Email", "A", 0, 100, 10, 1, 50),
		record("2025-07-04", "Email", "A", 10, 100, 10, 1, 50),
		record("2025-07-05", "Email", "B", 0, 100, 10, 1, 25),
	})

	require.Len(t, points, 2)
	assert.Equal(t, "2025-07-04", points[0].Date)
	assert.Equal(t, 5.0, points[0].ROAS)
	assert.Equal(t, "2025-07-05", points[1].Date)
	assert.Equal(t, 75.0, points[1].Revenue)
	assert.Equal(t, 0.0, points[1].ROAS)
}

func TestChannelSpendBreakdown(t *testing.T) {
	got := ChannelSpendBreakdown(templateRecords(t))

	assert.Equal(t, []domain.ChannelSpend{
		{Channel: "Google Ads", Spend: 850},
		{Channel: "Instagram", Spend: 530},
		{Channel: "Facebook", Spend: 300},
		{Channel: "Email", Spend: 60},
	}, got)
}

func TestChannelRevenueComparison(t *testing.T) {
	got := ChannelRevenueComparison(templateRecords(t))

	assert.Equal(t, []domain.ChannelComparison{
		{Channel: "Google Ads", Spend: 850, Revenue: 4600},
		{Channel: "Instagram", Spend: 530, Revenue: 4500},
		{Channel: "Email", Spend: 60, Revenue: 3600},
		{Channel: "Facebook", Spend: 300, Revenue: 1200},
	}, got)
}

func TestByCampaign(t *testing.T) {
	got := ByCampaign(templateRecords(t))

	require.Len(t, got, 4)
	assert.Equal(t, "DT-Launch", got[0].Campaign)
	assert.Equal(t, 2, got[0].Channels)
	assert.Equal(t, 830.0, got[0].Spend)
	assert.Equal(t, 5700.0, got[0].Revenue)
	require.NotNil(t, got[0].ROAS)
	assert.InDelta(t, 5700.0/830.0, *got[0].ROAS, 1e-9)

	assert.Equal(t, "Newsletter-July", got[1].Campaign)
	assert.Equal(t, "Retargeting", got[2].Campaign)
	assert.Equal(t, "Search-Brand", got[3].Campaign)
}

func TestByCampaign_ZeroClicksIsNullCPC(t *testing.T) {
	got := ByCampaign([]domain.Record{
		record("2025-07-01", "Display", "Awareness", 120, 40000, 0, 0, 0),
	})

	require.Len(t, got, 1)
	assert.Nil(t, got[0].CPC)
	assert.Nil(t, got[0].CVR)
	assert.Nil(t, got[0].CPA)
	require.NotNil(t, got[0].CTR)
	assert.Equal(t, 0.0, *got[0].CTR)
}

func TestByCampaign_TiesKeepFirstSeenOrder(t *testing.T) {
	got := ByCampaign([]domain.Record{
		record("2025-07-01", "Email", "Zeta", 10, 100, 10, 1, 500),
		record("2025-07-01", "Email", "Alpha", 10, 100, 10, 1, 500),
		record("2025-07-02", "Email", "Top", 10, 100, 10, 1, 900),
		record("2025-07-02", "Email", "Mid", 10, 100, 10, 1, 500),
	})

	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Campaign)
	}
	assert.Equal(t, []string{"Top", "Zeta", "Alpha", "Mid"}, names)
}

func TestAggregations_AreIdempotent(t *testing.T) {
	records := templateRecords(t)

	assert.Equal(t, ByCampaign(records), ByCampaign(records))
	assert.Equal(t, ByDate(records), ByDate(records))
	assert.Equal(t, CalculateTotals(records), CalculateTotals(records))
}
