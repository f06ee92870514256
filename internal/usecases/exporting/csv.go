package exporting

import (
	"strings"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// CSVFilename é o nome sugerido para o download dos registros filtrados
const CSVFilename = "campaign-performance-filtered.csv"

// ToCSV serializa os registros com o cabeçalho fixo, uma linha por registro.
// Os campos não são escapados: vírgula ou aspas em Channel/Campaign geram um CSV ambíguo.
func ToCSV(records []domain.Record) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(domain.RequiredColumns, ","))

	for _, r := range records {
		lines = append(lines, strings.Join(row(r), ","))
	}

	return strings.Join(lines, "\n")
}

func row(r domain.Record) []string {
	return []string{
		r.Day(),
		r.Channel,
		r.Campaign,
		utils.FormatNumber(r.Spend),
		utils.FormatNumber(r.Impressions),
		utils.FormatNumber(r.Clicks),
		utils.FormatNumber(r.Conversions),
		utils.FormatNumber(r.Revenue),
	}
}
