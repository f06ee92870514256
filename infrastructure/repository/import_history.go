package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

const (
	importHistoryTable = "import_history ih"

	createImportHistoryTable = `CREATE TABLE IF NOT EXISTS import_history (
	id              BIGSERIAL PRIMARY KEY,
	dataset_id      TEXT,
	source          TEXT NOT NULL,
	status          TEXT NOT NULL,
	row_count       INTEGER NOT NULL DEFAULT 0,
	record_count    INTEGER NOT NULL DEFAULT 0,
	dropped_rows    INTEGER NOT NULL DEFAULT 0,
	missing_columns TEXT[],
	error           TEXT,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
)

type ImportHistoryRepository interface {
	Save(entry *domain.ImportEntry) error
	ListRecent(limit int) ([]*domain.ImportEntry, error)
}

type importHistoryRepository struct {
	conn *postgres.Connection
}

func NewImportHistoryRepository(conn *postgres.Connection) ImportHistoryRepository {
	return &importHistoryRepository{
		conn: conn,
	}
}

// EnsureImportHistorySchema cria a tabela de histórico caso ainda não exista
func EnsureImportHistorySchema(conn *postgres.Connection) error {
	if _, err := conn.Exec(createImportHistoryTable); err != nil {
		return fmt.Errorf("erro ao criar tabela import_history: %w", err)
	}
	return nil
}

func (r *importHistoryRepository) Save(entry *domain.ImportEntry) error {
	query, args, err := buildInsertImportEntry(entry)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRow(query, args...).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao salvar histórico de importação: %w", err)
	}

	return nil
}

func (r *importHistoryRepository) ListRecent(limit int) ([]*domain.ImportEntry, error) {
	query, args, err := buildListImportEntries(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.ImportEntry, 0)
	for rows.Next() {
		var (
			entry     domain.ImportEntry
			datasetID sql.NullString
			errorText sql.NullString
			status    string
		)

		err := rows.Scan(
			&entry.ID,
			&datasetID,
			&entry.Source,
			&status,
			&entry.RowCount,
			&entry.RecordCount,
			&entry.DroppedRows,
			pq.Array(&entry.MissingColumns),
			&errorText,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear histórico de importação: %w", err)
		}

		entry.DatasetID = datasetID.String
		entry.Error = errorText.String
		entry.Status = domain.ImportStatus(status)
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func buildInsertImportEntry(entry *domain.ImportEntry) (string, []any, error) {
	return squirrel.
		Insert("import_history").
		Columns("dataset_id", "source", "status", "row_count", "record_count", "dropped_rows", "missing_columns", "error").
		Values(
			nullIfEmpty(entry.DatasetID),
			entry.Source,
			string(entry.Status),
			entry.RowCount,
			entry.RecordCount,
			entry.DroppedRows,
			pq.Array(entry.MissingColumns),
			nullIfEmpty(entry.Error),
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListImportEntries(limit int) (string, []any, error) {
	return squirrel.
		Select("ih.id, ih.dataset_id, ih.source, ih.status, ih.row_count, ih.record_count, ih.dropped_rows, ih.missing_columns, ih.error, ih.created_at").
		From(importHistoryTable).
		OrderBy("ih.created_at DESC", "ih.id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
