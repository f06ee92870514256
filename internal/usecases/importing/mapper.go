package importing

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// Layouts aceitos para a coluna Date. Hora, quando presente, é descartada.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// MapResult é o resultado do mapeamento das linhas para registros
type MapResult struct {
	Records     []domain.Record
	RowCount    int // linhas de dados, sem o cabeçalho
	DroppedRows int // linhas descartadas por data inválida
}

// MapRecords usa a primeira linha como cabeçalho e converte as demais em registros.
// Falha apenas com ErrEmptyInput ou *MissingColumnsError, nunca de forma parcial.
func MapRecords(rows [][]string) (*MapResult, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	index, missing := headerIndex(rows[0])
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Missing: missing}
	}

	result := &MapResult{
		Records:  make([]domain.Record, 0, len(rows)-1),
		RowCount: len(rows) - 1,
	}

	for _, row := range rows[1:] {
		cell := func(column string) string {
			i := index[column]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		date, ok := ParseDate(cell("Date"))
		if !ok {
			result.DroppedRows++
			continue
		}

		result.Records = append(result.Records, domain.Record{
			Date:        date,
			Channel:     textOr(cell("Channel"), domain.UnspecifiedChannel),
			Campaign:    textOr(cell("Campaign"), domain.UnspecifiedCampaign),
			Spend:       ParseNumber(cell("Spend")),
			Impressions: ParseNumber(cell("Impressions")),
			Clicks:      ParseNumber(cell("Clicks")),
			Conversions: ParseNumber(cell("Conversions")),
			Revenue:     ParseNumber(cell("Revenue")),
		})
	}

	return result, nil
}

// headerIndex localiza cada coluna obrigatória no cabeçalho. Em nomes repetidos vale a primeira ocorrência.
func headerIndex(header []string) (map[string]int, []string) {
	index := make(map[string]int, len(domain.RequiredColumns))
	for i, h := range header {
		name := trimCell(h)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []string
	for _, column := range domain.RequiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, column)
		}
	}

	return index, missing
}

// ParseDate interpreta a célula como data de calendário, em UTC e sem hora
func ParseDate(value string) (time.Time, bool) {
	value = trimCell(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// ParseNumber é total: remove tudo que não for dígito, '.' ou '-' e devolve 0 quando não der para converter
func ParseNumber(value string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, value)

	if cleaned == "" {
		return 0
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return n
}

func textOr(value, fallback string) string {
	value = trimCell(value)
	if value == "" {
		return fallback
	}
	return value
}

// trimCell remove espaços e o BOM (U+FEFF) das pontas, como faz o trim de texto em UTF-8
func trimCell(value string) string {
	return strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
