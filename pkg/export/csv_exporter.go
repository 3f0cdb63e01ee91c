package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
)

// CSVExporter renders slices of csv-tagged structs into CSV bytes.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes, header first, for rows (a slice of structs).
func (e *CSVExporter) Render(rows interface{}) ([]byte, error) {
	out, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return nil, fmt.Errorf("marshal csv: %w", err)
	}
	return out, nil
}
