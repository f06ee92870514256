package exporting

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	// XLSXFilename é o nome sugerido para o download da planilha
	XLSXFilename = "campaign-performance-filtered.xlsx"
	// SheetName é a única aba gerada
	SheetName = "Records"
)

// ToXLSX escreve os registros numa planilha com o mesmo cabeçalho e ordem de colunas do CSV.
// Datas vão como texto YYYY-MM-DD e as métricas como células numéricas.
func ToXLSX(records []domain.Record, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "error naming sheet")
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return errors.Wrap(err, "error creating stream writer")
	}

	header := make([]interface{}, 0, len(domain.RequiredColumns))
	for _, column := range domain.RequiredColumns {
		header = append(header, column)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return errors.Wrap(err, "error writing header")
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return errors.Wrap(err, "error resolving cell")
		}

		values := []interface{}{
			r.Day(),
			r.Channel,
			r.Campaign,
			r.Spend,
			r.Impressions,
			r.Clicks,
			r.Conversions,
			r.Revenue,
		}
		if err := sw.SetRow(cell, values); err != nil {
			return errors.Wrapf(err, "error writing row %d", i+2)
		}
	}

	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "error flushing sheet")
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "error writing workbook")
	}

	return nil
}
