// Package las reads and writes Log ASCII Standard (LAS) 2.0 well-log
// files.
//
// Only unwrapped files are supported. Null values (NULL in the well
// section, -999.25 by default) are replaced with NaN on read so downstream
// stages can detect missing samples explicitly. The first curve column is
// taken as the depth index, as LAS requires.
package las

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-seis/seis/curve"
	"github.com/cwbudde/algo-seis/well"
)

// Errors returned by LAS parsing.
var (
	ErrWrapNotSupported = errors.New("las: wrapped files are not supported")
	ErrNoCurveSection   = errors.New("las: missing curve section")
	ErrNoData           = errors.New("las: missing data section")
	ErrColumnMismatch   = errors.New("las: data row column count does not match curve section")
	ErrBadNumber        = errors.New("las: malformed numeric value")
)

const defaultNull = -999.25

// header line: MNEM.UNIT   VALUE : DESCRIPTION
type headerItem struct {
	mnemonic string
	unit     string
	value    string
	descr    string
}

// Read parses a LAS 2.0 document into a Well. The depth curve (first
// column) becomes the store's depth axis; remaining columns become
// depth-domain curves with their declared units.
func Read(r io.Reader) (*well.Well, error) {
	var (
		section   byte // 'V', 'W', 'C', 'P', 'O', 'A'
		wellItems []headerItem
		curves    []headerItem
		rows      [][]float64
		nullValue = defaultNull
		wrap      bool
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "~") {
			if len(line) > 1 {
				section = line[1] & 0xDF // uppercase
			}
			continue
		}

		switch section {
		case 'V':
			item, err := parseHeaderLine(line)
			if err != nil {
				return nil, fmt.Errorf("las: line %d: %w", lineNo, err)
			}
			if item.mnemonic == "WRAP" && strings.EqualFold(item.value, "YES") {
				wrap = true
			}
		case 'W':
			item, err := parseHeaderLine(line)
			if err != nil {
				return nil, fmt.Errorf("las: line %d: %w", lineNo, err)
			}
			if item.mnemonic == "NULL" && item.value != "" {
				nv, err := strconv.ParseFloat(item.value, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: NULL %q", ErrBadNumber, lineNo, item.value)
				}
				nullValue = nv
			}
			wellItems = append(wellItems, item)
		case 'C':
			item, err := parseHeaderLine(line)
			if err != nil {
				return nil, fmt.Errorf("las: line %d: %w", lineNo, err)
			}
			curves = append(curves, item)
		case 'A':
			row, err := parseDataRow(line, len(curves), nullValue)
			if err != nil {
				return nil, fmt.Errorf("las: line %d: %w", lineNo, err)
			}
			rows = append(rows, row)
		default:
			// Parameter and other sections carry no curve data.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("las: read: %w", err)
	}

	if wrap {
		return nil, ErrWrapNotSupported
	}
	if len(curves) == 0 {
		return nil, ErrNoCurveSection
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	return buildWell(wellItems, curves, rows)
}

func parseHeaderLine(line string) (headerItem, error) {
	dot := strings.Index(line, ".")
	if dot < 0 {
		return headerItem{}, fmt.Errorf("missing dot delimiter in %q", line)
	}

	var item headerItem
	item.mnemonic = strings.ToUpper(strings.TrimSpace(line[:dot]))

	rest := line[dot+1:]

	// Unit runs from the dot to the first whitespace.
	unitEnd := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' })
	if unitEnd < 0 {
		item.unit = strings.TrimSpace(rest)
		return item, nil
	}
	item.unit = rest[:unitEnd]
	rest = rest[unitEnd:]

	// Value runs to the first colon; description follows it.
	if colon := strings.Index(rest, ":"); colon >= 0 {
		item.value = strings.TrimSpace(rest[:colon])
		item.descr = strings.TrimSpace(rest[colon+1:])
	} else {
		item.value = strings.TrimSpace(rest)
	}
	return item, nil
}

func parseDataRow(line string, columns int, nullValue float64) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) != columns {
		return nil, fmt.Errorf("%w: got %d fields, expected %d", ErrColumnMismatch, len(fields), columns)
	}

	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}
		if v == nullValue {
			v = math.NaN()
		}
		row[i] = v
	}
	return row, nil
}

func buildWell(wellItems, curves []headerItem, rows [][]float64) (*well.Well, error) {
	h := well.Header{}
	for _, item := range wellItems {
		switch item.mnemonic {
		case "WELL":
			h.Name = item.value
		case "UWI", "API":
			if h.UWI == "" {
				h.UWI = item.value
			}
		case "FLD":
			h.Field = item.value
		case "LOC":
			h.Location = item.value
		case "EREF", "KB":
			if v, err := strconv.ParseFloat(item.value, 64); err == nil {
				h.Datum = v
			}
		}
	}

	w := well.New(h)

	depth := make([]float64, len(rows))
	for i, row := range rows {
		depth[i] = row[0]
	}

	for col := 1; col < len(curves); col++ {
		values := make([]float64, len(rows))
		for i, row := range rows {
			values[i] = row[col]
		}
		if err := w.Curves.AddCurve(curves[col].mnemonic, values, depth, curves[col].unit, curve.Depth); err != nil {
			return nil, fmt.Errorf("las: curve %q: %w", curves[col].mnemonic, err)
		}
	}

	return w, nil
}

// Write serializes a well's depth-domain curves as an unwrapped LAS 2.0
// document. Curves are emitted in sorted name order after the depth index;
// NaN samples are written as the null value.
func Write(wr io.Writer, w *well.Well) error {
	names := w.Curves.Names(curve.Depth)
	sort.Strings(names)
	axis := w.Curves.Axis(curve.Depth)
	if len(axis) == 0 {
		return ErrNoData
	}

	bw := bufio.NewWriter(wr)

	step := 0.0
	if len(axis) > 1 {
		step = axis[1] - axis[0]
	}

	fmt.Fprintln(bw, "~Version")
	fmt.Fprintln(bw, " VERS.                 2.0 : CWLS Log ASCII Standard - Version 2.0")
	fmt.Fprintln(bw, " WRAP.                  NO : One line per depth step")
	fmt.Fprintln(bw, "~Well")
	fmt.Fprintf(bw, " STRT.M %14.4f : START DEPTH\n", axis[0])
	fmt.Fprintf(bw, " STOP.M %14.4f : STOP DEPTH\n", axis[len(axis)-1])
	fmt.Fprintf(bw, " STEP.M %14.4f : STEP\n", step)
	fmt.Fprintf(bw, " NULL.  %14.4f : NULL VALUE\n", defaultNull)
	fmt.Fprintf(bw, " WELL.  %s : WELL NAME\n", w.Header.Name)
	fmt.Fprintf(bw, " UWI .  %s : UNIQUE WELL ID\n", w.Header.UWI)
	if w.Header.Field != "" {
		fmt.Fprintf(bw, " FLD .  %s : FIELD\n", w.Header.Field)
	}
	if w.Header.Location != "" {
		fmt.Fprintf(bw, " LOC .  %s : LOCATION\n", w.Header.Location)
	}

	fmt.Fprintln(bw, "~Curve")
	fmt.Fprintln(bw, " DEPT.M : depth index")
	cols := make([]*curve.Curve, 0, len(names))
	for _, name := range names {
		c, err := w.Curves.Curve(name, curve.Depth)
		if err != nil {
			return err
		}
		cols = append(cols, c)
		fmt.Fprintf(bw, " %s.%s :\n", c.Name, c.Unit)
	}

	fmt.Fprintln(bw, "~ASCII")
	for i := range axis {
		fmt.Fprintf(bw, "%12.4f", axis[i])
		for _, c := range cols {
			v := c.Values[i]
			if math.IsNaN(v) {
				v = defaultNull
			}
			fmt.Fprintf(bw, " %12.4f", v)
		}
		fmt.Fprintln(bw)
	}

	return bw.Flush()
}
