// Package fasta is for reading and writing PB sequences in
// fasta format
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Width is the default line width when writing sequences
const Width = 60

// Record is one fasta entry: a header and its sequence
type Record struct {
	ID  string
	Seq string
}

// Read parses all records from a fasta file
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ReadAll reads several fasta files into one record list, in
// the order the files are given
func ReadAll(paths []string) ([]Record, error) {
	var records []Record
	for _, path := range paths {
		recs, err := Read(path)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// Parse reads fasta records from a reader. Blank lines are skipped,
// sequence lines between headers are joined
func Parse(r io.Reader) ([]Record, error) {
	var (
		records []Record
		header  string
		seq     strings.Builder
		started bool
	)

	flush := func() {
		if started && seq.Len() > 0 {
			records = append(records, Record{ID: header, Seq: seq.String()})
		}
		seq.Reset()
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			header = strings.TrimSpace(line[1:])
			started = true
			continue
		}
		if !started {
			return nil, fmt.Errorf("fasta: sequence data before any header: %q", line)
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()

	return records, nil
}

// Write formats records as fasta, wrapping sequences at width columns
func Write(w io.Writer, records []Record, width int) error {
	if width <= 0 {
		width = Width
	}
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s\n", rec.ID); err != nil {
			return err
		}
		for start := 0; start < len(rec.Seq); start += width {
			end := start + width
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			if _, err := fmt.Fprintln(w, rec.Seq[start:end]); err != nil {
				return err
			}
		}
	}
	return nil
}
