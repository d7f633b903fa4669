package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/bcsd/coord"
)

// commentPrefix marks comment lines, as written by numpy.savetxt(header=...).
const commentPrefix = "#"

// LoadText parses whitespace-separated rows of floats, the numpy.savetxt
// default layout, into a Dense. Blank lines and '#' comments are skipped.
// Like numpy.loadtxt, a single row or a single column yields a 1-D grid;
// everything else is (rows, cols).
// Returns ErrEmpty, ErrRagged, ErrNaN or a wrapped strconv error with its
// 1-based line number.
func LoadText(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		data []float64
		rows int
		cols = -1
		line int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentPrefix); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if cols >= 0 && len(fields) != cols {
			return nil, fmt.Errorf("line %d has %d values, want %d: %w", line, len(fields), cols, ErrRagged)
		}
		cols = len(fields)
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("grid: line %d: %w", line, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	if rows == 0 {
		return nil, ErrEmpty
	}

	shape := coord.Shape{rows, cols}
	switch {
	case rows == 1:
		shape = coord.Shape{cols}
	case cols == 1:
		shape = coord.Shape{rows}
	}

	return NewDense(shape, data)
}

// LoadFile opens path and parses it with LoadText.
func LoadFile(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := LoadText(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}
