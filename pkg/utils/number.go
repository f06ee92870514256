package utils

import "strconv"

// FormatNumber escreve o número com a menor representação decimal que o preserva
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
