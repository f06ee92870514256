package domain

// Presentation é a configuração imutável entregue ao colaborador de renderização
type Presentation struct {
	Palette             []string `json:"palette"`
	UnspecifiedChannel  string   `json:"unspecified_channel"`
	UnspecifiedCampaign string   `json:"unspecified_campaign"`
	DateFormat          string   `json:"date_format"`
}

// DefaultPresentation retorna uma cópia nova a cada chamada
func DefaultPresentation() Presentation {
	return Presentation{
		Palette: []string{
			"#6366F1",
			"#22C55E",
			"#F59E0B",
			"#EF4444",
			"#06B6D4",
			"#A855F7",
			"#84CC16",
			"#F97316",
		},
		UnspecifiedChannel:  UnspecifiedChannel,
		UnspecifiedCampaign: UnspecifiedCampaign,
		DateFormat:          "YYYY-MM-DD",
	}
}
