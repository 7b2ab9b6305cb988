// Package export renders poster records to their output formats: JSON,
// CSV, and XLSX workbooks for batch runs.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/posterscan/posterscan/internal/entity"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// RenderJSON returns the record as indented JSON with the field names as
// keys. Key order follows the struct definition, which matches the fixed
// field order.
func (s *Service) RenderJSON(rec entity.PosterRecord) ([]byte, error) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return out, nil
}

// RenderCSV returns a two-row CSV: the field names as the header and the
// extracted values as the single data row.
func (s *Service) RenderCSV(rec entity.PosterRecord) ([]byte, error) {
	fields := rec.Fields()
	header := make([]string, len(fields))
	row := make([]string, len(fields))
	for i, f := range fields {
		header[i] = string(f.Name)
		row[i] = f.Value
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	if err := w.Write(row); err != nil {
		return nil, fmt.Errorf("csv row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportExtractionsXLSX returns an XLSX workbook (as bytes) with one row
// per extraction, preceded by the fixed header row.
func (s *Service) ExportExtractionsXLSX(extractions []entity.Extraction) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Source")
	for i, field := range (entity.PosterRecord{}).Fields() {
		write(i+2, 1, string(field.Name))
	}
	write(12, 1, "Status")

	row := 2
	for _, ex := range extractions {
		write(1, row, ex.SourcePath)
		for i, field := range ex.Record.Fields() {
			write(i+2, row, field.Value)
		}
		write(12, row, string(ex.Status))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 40) // source path
	_ = f.SetColWidth(sheet, "B", "B", 32) // event name
	_ = f.SetColWidth(sheet, "C", "E", 24) // date, time, venue
	_ = f.SetColWidth(sheet, "F", "K", 22)
	_ = f.SetColWidth(sheet, "L", "L", 10) // status

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(extractions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
