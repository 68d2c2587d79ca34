// Package tabular loads checkshot surveys and formation tops from CSV
// files. Both formats are two-column with an optional header row: depth
// and one-way time for checkshots, name and depth for tops.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-seis/seis/timedepth"
)

// Errors returned by the CSV loaders.
var (
	ErrBadRecord = errors.New("tabular: malformed record")
	ErrEmptyFile = errors.New("tabular: no records")
)

// TopRecord is a named formation boundary at a measured depth.
type TopRecord struct {
	Name  string
	Depth float64
}

// LoadCheckshots reads depth,time rows and builds a validated checkshot
// table. A non-numeric first row is treated as a header and skipped.
func LoadCheckshots(r io.Reader) (*timedepth.Table, error) {
	records, err := readRecords(r, 2)
	if err != nil {
		return nil, err
	}

	shots := make([]timedepth.Checkshot, 0, len(records))
	for i, rec := range records {
		depth, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%w: row %d: depth %q", ErrBadRecord, i+1, rec[0])
		}
		t, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: time %q", ErrBadRecord, i+1, rec[1])
		}
		shots = append(shots, timedepth.Checkshot{Depth: depth, Time: t})
	}
	if len(shots) == 0 {
		return nil, ErrEmptyFile
	}

	return timedepth.NewTable(shots)
}

// LoadTops reads name,depth rows. A first row whose depth field is not
// numeric is treated as a header and skipped. Order is preserved.
func LoadTops(r io.Reader) ([]TopRecord, error) {
	records, err := readRecords(r, 2)
	if err != nil {
		return nil, err
	}

	tops := make([]TopRecord, 0, len(records))
	for i, rec := range records {
		depth, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("%w: row %d: depth %q", ErrBadRecord, i+1, rec[1])
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			return nil, fmt.Errorf("%w: row %d: empty top name", ErrBadRecord, i+1)
		}
		tops = append(tops, TopRecord{Name: name, Depth: depth})
	}
	if len(tops) == 0 {
		return nil, ErrEmptyFile
	}

	return tops, nil
}

func readRecords(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = fields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tabular: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
	}
	return records, nil
}
