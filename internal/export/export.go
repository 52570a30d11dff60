// Package export writes recommendation lists in the downstream export shape:
// course name, faculty, cutoff, match percentage, capacity, in that order.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Emynex4real/innovateam-sub003/internal/ranking"
	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Header is the CSV header row. Column order is part of the export contract.
var Header = []string{"Course", "Faculty", "Cutoff", "Match %", "Capacity"}

// Row is one exported course. Field order matches Header.
type Row struct {
	Course          string `json:"course"`
	Faculty         string `json:"faculty"`
	Cutoff          int    `json:"cutoff"`
	MatchPercentage int    `json:"match_percentage"`
	Capacity        int    `json:"capacity"`
}

// Rows flattens the ranked recommendations of a list, in list order.
func Rows(list *types.RecommendationList) []Row {
	if list == nil {
		return []Row{}
	}

	rows := make([]Row, 0, len(list.Recommendations))
	for _, rec := range list.Recommendations {
		rows = append(rows, Row{
			Course:          rec.Course.Name,
			Faculty:         rec.Course.Faculty,
			Cutoff:          rec.Course.Cutoff,
			MatchPercentage: ranking.MatchPercentage(rec.Result.Score),
			Capacity:        rec.Course.Capacity,
		})
	}
	return rows
}

// Write encodes rows in the given format.
func Write(w io.Writer, format string, rows []Row) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, rows)
	case FormatCSV:
		return WriteCSV(w, rows)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteJSON encodes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("failed to encode export JSON: %w", err)
	}
	return nil
}

// ReadJSON decodes rows written by WriteJSON.
func ReadJSON(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode export JSON: %w", err)
	}
	return rows, nil
}

// WriteCSV writes the header followed by one record per row.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Course,
			row.Faculty,
			strconv.Itoa(row.Cutoff),
			strconv.Itoa(row.MatchPercentage),
			strconv.Itoa(row.Capacity),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", row.Course, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses CSV written by WriteCSV. The header must match exactly.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV is empty: missing header")
	}
	for i, col := range Header {
		if records[0][i] != col {
			return nil, fmt.Errorf("unexpected CSV header column %d: got %q, want %q", i+1, records[0][i], col)
		}
	}

	rows := make([]Row, 0, len(records)-1)
	for line, record := range records[1:] {
		row := Row{Course: record[0], Faculty: record[1]}
		fields := []struct {
			name string
			dst  *int
			raw  string
		}{
			{"cutoff", &row.Cutoff, record[2]},
			{"match percentage", &row.MatchPercentage, record[3]},
			{"capacity", &row.Capacity, record[4]},
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f.raw)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid %s %q: %w", line+2, f.name, f.raw, err)
			}
			*f.dst = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
