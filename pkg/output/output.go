// Copyright (c) 2025 horeilly
//
// This software is licensed under the MIT License.
// See the LICENSE file in the root of the repository for details.

// Package output persists or displays a finalized record set. The file
// format is selected by the destination extension: .csv, .xlsx or .json.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/xuri/excelize/v2"

	"github.com/horeilly/qdl-tee-times/pkg/models"
)

var columns = []string{"date", "time", "course", "price", "players", "start_hole"}

// Save writes the records to path, choosing the format from the file
// extension. An unrecognised extension is a configuration error and no
// file is created.
func Save(records []models.TeeTimeRecord, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return saveCSV(records, path)
	case ".xlsx":
		return saveXLSX(records, path)
	case ".json":
		return saveJSON(records, path)
	default:
		return &models.Error{Kind: models.KindOutput,
			Err: fmt.Errorf("unsupported output format %q (use .csv, .xlsx or .json)", filepath.Ext(path))}
	}
}

func saveCSV(records []models.TeeTimeRecord, path string) error {
	// Encode fully in memory first so a row error never leaves a partial file.
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(columns)
	for _, r := range records {
		_ = w.Write([]string{
			r.Date,
			r.Time,
			r.Course,
			strconv.FormatFloat(r.Price, 'f', -1, 64),
			strconv.Itoa(r.Players),
			strconv.Itoa(r.StartHole),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return outputErr(path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return outputErr(path, err)
	}
	return nil
}

func saveXLSX(records []models.TeeTimeRecord, path string) error {
	const sheet = "Tee Times"

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return outputErr(path, err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return outputErr(path, err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return outputErr(path, err)
		}
		row := []interface{}{r.Date, r.Time, r.Course, r.Price, r.Players, r.StartHole}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return outputErr(path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return outputErr(path, err)
	}
	return nil
}

func saveJSON(records []models.TeeTimeRecord, path string) error {
	if records == nil {
		records = []models.TeeTimeRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return outputErr(path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return outputErr(path, err)
	}
	return nil
}

// Render writes the record set as an aligned console table.
func Render(w io.Writer, records []models.TeeTimeRecord) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%d\t%d\n",
			r.Date, r.Time, r.Course, r.Price, r.Players, r.StartHole)
	}
	_ = tw.Flush()
}

// Line renders a single record the way the interactive pager shows it.
func Line(r models.TeeTimeRecord) string {
	return fmt.Sprintf("%s %s – %s – %.2f – %d players – hole %d",
		r.Date, r.Time, r.Course, r.Price, r.Players, r.StartHole)
}

func outputErr(path string, err error) error {
	return &models.Error{Kind: models.KindOutput, Err: fmt.Errorf("saving %s: %w", path, err)}
}
