package domain

import "time"

// FilterSpec descreve os filtros escolhidos pelo usuário.
// Campos vazios significam "sem restrição".
type FilterSpec struct {
	Channels      map[string]struct{}
	CampaignQuery string
	Start         *time.Time
	End           *time.Time
}

// NewFilterSpec monta um FilterSpec a partir de uma lista de canais
func NewFilterSpec(channels []string, campaignQuery string, start, end *time.Time) FilterSpec {
	spec := FilterSpec{
		CampaignQuery: campaignQuery,
		Start:         start,
		End:           end,
	}
	if len(channels) > 0 {
		spec.Channels = make(map[string]struct{}, len(channels))
		for _, ch := range channels {
			spec.Channels[ch] = struct{}{}
		}
	}
	return spec
}

// IsEmpty indica se nenhum predicado está ativo
func (f FilterSpec) IsEmpty() bool {
	return len(f.Channels) == 0 && f.CampaignQuery == "" && f.Start == nil && f.End == nil
}
