// Package csvtext tokeniza texto CSV em linhas de campos.
//
// Regras: aspas abrem e fecham o modo citado, "" dentro de aspas vira uma aspa
// literal, vírgulas e quebras de linha dentro de aspas são mantidas no campo.
// \n, \r e \r\n encerram a linha. Linhas totalmente vazias são descartadas.
package csvtext

import "strings"

// Parse converte o texto em linhas. Nunca falha: no pior caso retorna nil.
func Parse(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
				continue
			}
			field.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			endField()
		case '\r', '\n':
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endField()
			if len(row) > 1 || row[0] != "" {
				rows = append(rows, row)
			}
			row = nil
		default:
			field.WriteByte(c)
		}
	}

	// Aspas não fechadas são tratadas como fechadas no fim do texto
	if field.Len() > 0 || len(row) > 0 {
		endField()
		rows = append(rows, row)
	}

	return dropBlank(rows)
}

func dropBlank(rows [][]string) [][]string {
	out := rows[:0]
	for _, r := range rows {
		if !isBlank(r) {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isBlank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}
