package insighting

import (
	"sort"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// accumulator acumula as somas de um grupo durante a varredura
type accumulator struct {
	sums     domain.Sums
	channels map[string]struct{}
}

func (a *accumulator) add(r domain.Record) {
	a.sums.Spend += r.Spend
	a.sums.Impressions += r.Impressions
	a.sums.Clicks += r.Clicks
	a.sums.Conversions += r.Conversions
	a.sums.Revenue += r.Revenue
}

// groups é um mapa ordenado pela primeira aparição da chave
type groups struct {
	keys  []string
	byKey map[string]*accumulator
}

func groupBy(records []domain.Record, key func(domain.Record) string, trackChannels bool) *groups {
	g := &groups{byKey: make(map[string]*accumulator)}

	for _, r := range records {
		k := key(r)
		acc, ok := g.byKey[k]
		if !ok {
			acc = &accumulator{}
			if trackChannels {
				acc.channels = make(map[string]struct{})
			}
			g.byKey[k] = acc
			g.keys = append(g.keys, k)
		}
		acc.add(r)
		if trackChannels {
			acc.channels[r.Channel] = struct{}{}
		}
	}

	return g
}

func divide(numerator, denominator float64) *float64 {
	if denominator == 0 {
		return nil
	}
	v := numerator / denominator
	return &v
}

// CalculateRatios calcula as métricas derivadas; denominador zero resulta em nil
func CalculateRatios(s domain.Sums) domain.Ratios {
	ratios := domain.Ratios{
		ROAS: divide(s.Revenue, s.Spend),
		CTR:  divide(s.Clicks, s.Impressions),
		CVR:  divide(s.Conversions, s.Clicks),
		CPA:  divide(s.Spend, s.Conversions),
		CPC:  divide(s.Spend, s.Clicks),
	}
	if s.Impressions != 0 {
		cpm := s.Spend / s.Impressions * 1000
		ratios.CPM = &cpm
	}
	return ratios
}

// CalculateTotals soma todos os registros filtrados, sem agrupamento
func CalculateTotals(records []domain.Record) domain.Totals {
	acc := &accumulator{}
	for _, r := range records {
		acc.add(r)
	}

	return domain.Totals{
		Sums:    acc.sums,
		Ratios:  CalculateRatios(acc.sums),
		Records: len(records),
	}
}

// ByDate agrupa por dia, em ordem cronológica. Dias sem investimento têm ROAS 0 para manter o gráfico contínuo.
func ByDate(records []domain.Record) []domain.DailyPoint {
	g := groupBy(records, domain.Record.Day, false)

	out := make([]domain.DailyPoint, 0, len(g.keys))
	for _, k := range g.keys {
		sums := g.byKey[k].sums
		point := domain.DailyPoint{Date: k, Sums: sums}
		if sums.Spend != 0 {
			point.ROAS = sums.Revenue / sums.Spend
		}
		out = append(out, point)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})

	return out
}

// ChannelSpendBreakdown retorna o investimento por canal, do maior para o menor
func ChannelSpendBreakdown(records []domain.Record) []domain.ChannelSpend {
	g := groupBy(records, channelKey, false)

	out := make([]domain.ChannelSpend, 0, len(g.keys))
	for _, k := range g.keys {
		out = append(out, domain.ChannelSpend{Channel: k, Spend: g.byKey[k].sums.Spend})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Spend > out[j].Spend
	})

	return out
}

// ChannelRevenueComparison retorna investimento e receita por canal, da maior receita para a menor
func ChannelRevenueComparison(records []domain.Record) []domain.ChannelComparison {
	g := groupBy(records, channelKey, false)

	out := make([]domain.ChannelComparison, 0, len(g.keys))
	for _, k := range g.keys {
		sums := g.byKey[k].sums
		out = append(out, domain.ChannelComparison{Channel: k, Spend: sums.Spend, Revenue: sums.Revenue})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Revenue > out[j].Revenue
	})

	return out
}

// ByCampaign agrupa por campanha com as métricas completas, da maior receita para a menor
func ByCampaign(records []domain.Record) []domain.CampaignInsight {
	g := groupBy(records, campaignKey, true)

	out := make([]domain.CampaignInsight, 0, len(g.keys))
	for _, k := range g.keys {
		acc := g.byKey[k]
		out = append(out, domain.CampaignInsight{
			Campaign: k,
			Channels: len(acc.channels),
			Sums:     acc.sums,
			Ratios:   CalculateRatios(acc.sums),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Sums.Revenue > out[j].Sums.Revenue
	})

	return out
}

func channelKey(r domain.Record) string  { return r.Channel }
func campaignKey(r domain.Record) string { return r.Campaign }
