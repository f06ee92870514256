package domain

import "time"

type ImportStatus string

const (
	ImportStatusSuccess ImportStatus = "SUCCESS"
	ImportStatusFailed  ImportStatus = "FAILED"
)

// ImportEntry registra uma tentativa de carga de arquivo.
// Apenas metadados são guardados, nunca os registros.
type ImportEntry struct {
	ID             int64        `json:"id"`
	DatasetID      string       `json:"dataset_id,omitempty"`
	Source         string       `json:"source"`
	Status         ImportStatus `json:"status"`
	RowCount       int          `json:"row_count"`
	RecordCount    int          `json:"record_count"`
	DroppedRows    int          `json:"dropped_rows"`
	MissingColumns []string     `json:"missing_columns,omitempty"`
	Error          string       `json:"error,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}
