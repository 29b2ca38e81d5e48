package recfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spatialkit/boxtree/geo"
)

// Parse parses one whitespace-separated record line of the form
//
//	name minX minY minZ maxX maxY maxZ
//
// or the planar form
//
//	name minX minY maxX maxY
//
// and returns a record with a fresh identity.
func Parse(line string) (*Record, error) {
	parts := strings.Fields(line)
	var coords []float64
	switch len(parts) {
	case 5, 7:
		coords = make([]float64, 0, len(parts)-1)
		for _, p := range parts[1:] {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad coordinate %q", ErrFormat, p)
			}
			coords = append(coords, v)
		}
	default:
		return nil, fmt.Errorf("%w: expected 5 or 7 fields, got %d", ErrFormat, len(parts))
	}
	var env geo.Envelope
	var err error
	if len(coords) == 4 {
		env, err = geo.Planar(coords[0], coords[1], coords[2], coords[3])
	} else {
		env, err = geo.New(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5])
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return New(parts[0], env), nil
}

// ParseAll reads a record file line by line. Blank lines and lines starting
// with '#' are skipped.
func ParseAll(r io.Reader) ([]*Record, error) {
	var records []*Record
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := Parse(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
