// Package filtering aplica os predicados de data, canal e campanha sobre um conjunto de registros.
package filtering

import (
	"strings"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// Apply devolve um novo slice com os registros que atendem a todos os predicados ativos,
// preservando a ordem original. O slice de entrada nunca é alterado.
func Apply(records []domain.Record, spec domain.FilterSpec) []domain.Record {
	out := make([]domain.Record, 0, len(records))
	if spec.IsEmpty() {
		return append(out, records...)
	}

	match := predicate(spec)
	for _, r := range records {
		if match(r) {
			out = append(out, r)
		}
	}

	return out
}

func predicate(spec domain.FilterSpec) func(domain.Record) bool {
	var (
		start, end       int64
		hasStart, hasEnd bool
	)
	if spec.Start != nil {
		start, hasStart = utils.TruncateDay(*spec.Start).Unix(), true
	}
	if spec.End != nil {
		end, hasEnd = utils.TruncateDay(*spec.End).Unix(), true
	}
	query := strings.ToLower(spec.CampaignQuery)

	return func(r domain.Record) bool {
		day := utils.TruncateDay(r.Date).Unix()
		if hasStart && day < start {
			return false
		}
		if hasEnd && day > end {
			return false
		}
		if len(spec.Channels) > 0 {
			if _, ok := spec.Channels[r.Channel]; !ok {
				return false
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Campaign), query) {
			return false
		}
		return true
	}
}
