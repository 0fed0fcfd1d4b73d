package distance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// WriteReport emits the matrix as a labeled square table: one header
// row of sequence labels, then one row per sequence with its label and
// distances. The format round-trips through ParseReport
func (m *Matrix) WriteReport(w io.Writer) error {
	width := 10
	for _, label := range m.labels {
		if len(label) > width {
			width = len(label)
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width))
	for _, label := range m.labels {
		fmt.Fprintf(&sb, " %*s", width, label)
	}
	sb.WriteByte('\n')

	n := m.Dim()
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "%-*s", width, m.labels[i])
		for j := 0; j < n; j++ {
			fmt.Fprintf(&sb, " %*.6f", width, m.At(i, j))
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// ParseReport reads a table written by WriteReport back into a Matrix,
// preserving label order
func ParseReport(r io.Reader) (*Matrix, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("distance report: empty input")
	}
	labels := strings.Fields(scanner.Text())
	n := len(labels)
	if n == 0 {
		return nil, fmt.Errorf("distance report: no labels in header")
	}

	dist := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("distance report: expected %d rows, found %d", n, i)
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) != n+1 {
			return nil, fmt.Errorf("distance report: row %d: expected %d fields, found %d", i+1, n+1, len(fields))
		}
		if fields[0] != labels[i] {
			return nil, fmt.Errorf("distance report: row %d is labeled %q, header says %q", i+1, fields[0], labels[i])
		}
		for j := i; j < n; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("distance report: row %d: %v", i+1, err)
			}
			dist.SetSym(i, j, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Matrix{labels: labels, dist: dist}, nil
}
