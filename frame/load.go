// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aclements/go-chartdata/variable"
)

// Options control how tabular data is converted to a Frame.
type Options struct {
	// Columns, if non-empty, lists the columns to load, in order.
	// It is an error for a listed column to be absent.
	Columns []string

	// Kinds forces the kind of the named columns instead of
	// inferring it. Cells that do not parse as the forced kind are
	// missing.
	Kinds map[string]variable.Kind
}

// ReadCSV reads a Frame from CSV data whose first record is a header
// of column names. Records may have differing numbers of fields;
// absent trailing fields are missing.
func ReadCSV(r io.Reader, opts *Options) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return FromRows(rows, opts)
}

// ReadXLSX reads a Frame from sheet of the XLSX workbook at path. If
// sheet is "", it reads the first sheet. As with ReadCSV, the first row
// of the sheet is the header.
func ReadXLSX(path, sheet string, opts *Options) (*Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return FromRows(rows, opts)
}

// FromRows returns a Frame from rows of cells, where rows[0] is the
// header. Blank header names, and names repeating an earlier column's,
// are replaced with "Column1", "Column2", and so on.
func FromRows(rows [][]string, opts *Options) (*Frame, error) {
	if opts == nil {
		opts = new(Options)
	}
	f := New()
	if len(rows) == 0 {
		if len(opts.Columns) > 0 {
			return nil, fmt.Errorf("column %q not found", opts.Columns[0])
		}
		return f, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	seen := make(map[string]bool, len(header))
	blank := 0
	for i, h := range header {
		if h == "" || seen[h] {
			for {
				blank++
				h = fmt.Sprintf("Column%d", blank)
				if !seen[h] && indexOf(header[i+1:], h) < 0 {
					break
				}
			}
		}
		seen[h] = true
		header[i] = h
	}

	cols := make([]int, len(header))
	for i := range cols {
		cols[i] = i
	}
	if len(opts.Columns) > 0 {
		cols = cols[:0]
		for _, name := range opts.Columns {
			i := indexOf(header, name)
			if i < 0 {
				return nil, fmt.Errorf("column %q not found", name)
			}
			cols = append(cols, i)
		}
	}

	data := rows[1:]
	for _, ci := range cols {
		cells := make([]string, len(data))
		for r, row := range data {
			if ci < len(row) {
				cells[r] = row[ci]
			}
		}
		kind, ok := opts.Kinds[header[ci]]
		if !ok {
			kind = InferKind(cells)
		}
		v, err := Column(header[ci], kind, cells)
		if err != nil {
			return nil, err
		}
		if err := f.Add(v); err != nil {
			return nil, err
		}
	}
	if f.n < 0 {
		f.n = len(data)
	}
	return f, nil
}

func indexOf(xs []string, x string) int {
	for i, y := range xs {
		if y == x {
			return i
		}
	}
	return -1
}
