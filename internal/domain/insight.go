package domain

// Ratios agrupa as métricas derivadas. Um ponteiro nulo indica denominador zero.
type Ratios struct {
	ROAS *float64 `json:"roas"`
	CTR  *float64 `json:"ctr"`
	CVR  *float64 `json:"cvr"`
	CPA  *float64 `json:"cpa"`
	CPC  *float64 `json:"cpc"`
	CPM  *float64 `json:"cpm"`
}

// Sums são as somas brutas de um agrupamento
type Sums struct {
	Spend       float64 `json:"spend"`
	Impressions float64 `json:"impressions"`
	Clicks      float64 `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// Totals alimenta os indicadores de resumo
type Totals struct {
	Sums
	Ratios
	Records int `json:"records"`
}

// DailyPoint é um ponto da série temporal. ROAS vale 0 em dias sem investimento.
type DailyPoint struct {
	Date string `json:"date"`
	Sums
	ROAS float64 `json:"roas"`
}

// ChannelSpend alimenta a visão proporcional de investimento por canal
type ChannelSpend struct {
	Channel string  `json:"channel"`
	Spend   float64 `json:"spend"`
}

// ChannelComparison alimenta a comparação de investimento e receita por canal
type ChannelComparison struct {
	Channel string  `json:"channel"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
}

// CampaignInsight é uma linha da tabela de campanhas
type CampaignInsight struct {
	Campaign string `json:"campaign"`
	Channels int    `json:"channels"`
	Sums
	Ratios
}

// Dashboard reúne todas as visões calculadas para um filtro
type Dashboard struct {
	Dataset           *DatasetSummary     `json:"dataset"`
	Totals            Totals              `json:"totals"`
	Daily             []DailyPoint        `json:"daily"`
	ChannelSpend      []ChannelSpend      `json:"channel_spend"`
	ChannelComparison []ChannelComparison `json:"channel_comparison"`
	Campaigns         []CampaignInsight   `json:"campaigns"`
}
