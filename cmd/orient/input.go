package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// record is one input line, parsed into numbers.
type record struct {
	line   int
	values []float64
}

// Numbers may be separated by whitespace, commas or both. Lines starting with
// # are comments.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func parseLine(line string) ([]float64, error) {
	fields := splitFields(line)
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", field)
		}
		values[i] = v
	}
	return values, nil
}

// readRecords parses every line of in. Blank lines come back as records with
// no values, since the turns command uses them as separators.
func readRecords(in io.Reader) ([]record, error) {
	var records []record
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		values, err := parseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		records = append(records, record{line: lineNumber, values: values})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return records, nil
}

// readLineStrings groups point records into line strings, with a blank line
// ending each one. The first point of each line string decides whether it is
// XY or XYZ, and every other point must match.
func readLineStrings(in io.Reader) ([]*geom.LineString, error) {
	records, err := readRecords(in)
	if err != nil {
		return nil, err
	}

	var lineStrings []*geom.LineString
	var flat []float64
	var layout geom.Layout
	flush := func() {
		if len(flat) > 0 {
			lineStrings = append(lineStrings, geom.NewLineStringFlat(layout, flat))
			flat = nil
		}
	}
	for _, r := range records {
		if len(r.values) == 0 {
			flush()
			continue
		}
		if len(flat) == 0 {
			switch len(r.values) {
			case 2:
				layout = geom.XY
			case 3:
				layout = geom.XYZ
			default:
				return nil, errors.Errorf("line %d: a point needs 2 or 3 coordinates, got %d", r.line, len(r.values))
			}
		}
		if len(r.values) != layout.Stride() {
			return nil, errors.Errorf("line %d: expected %d coordinates like the rest of the line string, got %d", r.line, layout.Stride(), len(r.values))
		}
		flat = append(flat, r.values...)
	}
	flush()
	return lineStrings, nil
}
