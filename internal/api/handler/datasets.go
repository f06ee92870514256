package handler

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/importing"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

const (
	uploadFormField     = "file"
	defaultUploadSource = "upload.csv"
	// Folga para os cabeçalhos do multipart além do limite do arquivo
	multipartOverhead = 1 << 20
)

// UploadResponse descreve o dataset carregado e o resultado do mapeamento
type UploadResponse struct {
	Dataset     *domain.DatasetSummary `json:"dataset"`
	RowCount    int                    `json:"row_count"`
	RecordCount int                    `json:"record_count"`
	DroppedRows int                    `json:"dropped_rows"`
}

// UploadDataset aceita o CSV no corpo da requisição ou no campo multipart "file"
func UploadDataset(importer importing.Importer, maxUploadBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, source, err := uploadedFile(w, r, maxUploadBytes)
		if err != nil {
			writeImportError(w, r, err)
			return
		}
		defer body.Close()

		logger.WithField("import_source", source).Info("datasets: importing file")

		dataset, result, err := importer.Import(r.Context(), source, body)
		if err != nil {
			writeImportError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, UploadResponse{
			Dataset:     insighting.Summarize(dataset),
			RowCount:    result.RowCount,
			RecordCount: len(result.Records),
			DroppedRows: result.DroppedRows,
		})
	})
}

func uploadedFile(w http.ResponseWriter, r *http.Request, maxUploadBytes int64) (io.ReadCloser, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		source := strings.TrimSpace(r.URL.Query().Get("name"))
		if source == "" {
			source = defaultUploadSource
		}
		return r.Body, source, nil
	}

	if maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+multipartOverhead)
	}

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, "", importing.ErrEmptyInput
		}
		return nil, "", err
	}

	return file, header.Filename, nil
}

func GetCurrentDataset(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Summary()
		if err != nil {
			writeInsightError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// LoadTemplateDataset volta o dataset corrente para o CSV de exemplo
func LoadTemplateDataset(importer importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		dataset, err := importer.LoadTemplate(r.Context())
		if err != nil {
			writeImportError(w, r, err)
			return
		}

		log.ForContext(r.Context()).WithField("dataset_id", dataset.ID).Info("datasets: template loaded")
		writeJSON(w, r, http.StatusCreated, insighting.Summarize(dataset))
	})
}

func DownloadTemplate() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeAttachment(w, "text/csv; charset=utf-8", importing.TemplateFilename)
		if _, err := io.WriteString(w, importing.TemplateCSV()); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("datasets: failed to write template")
		}
	})
}

func ListImports(importer importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			query := struct {
				Limit int `validate:"min=1,max=1000"`
			}{Limit: n}
			if err != nil || Validator().Struct(query) != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be an integer between 1 and 1000", nil)
				return
			}
			limit = query.Limit
		}

		entries, err := importer.History(limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("imports: failed to list history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list import history", nil)
			return
		}
		if entries == nil {
			entries = make([]*domain.ImportEntry, 0)
		}

		writeJSON(w, r, http.StatusOK, entries)
	})
}
