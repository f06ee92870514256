package importing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyInput indica que o texto não produziu nenhuma linha aproveitável
var ErrEmptyInput = errors.New("the file has no rows to import")

// MissingColumnsError indica que o cabeçalho não tem todas as colunas obrigatórias
type MissingColumnsError struct {
	Missing []string
}

// Error implementa a interface error
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// IsMissingColumns extrai o MissingColumnsError da cadeia de erros, se existir
func IsMissingColumns(err error) (*MissingColumnsError, bool) {
	var mcErr *MissingColumnsError
	if errors.As(err, &mcErr) {
		return mcErr, true
	}
	return nil, false
}

// ErrPayloadTooLarge indica que o arquivo passou do limite configurado
var ErrPayloadTooLarge = errors.New("the file exceeds the maximum upload size")
