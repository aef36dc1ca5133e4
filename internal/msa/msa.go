// Package msa parses a multiple sequence alignment out of multi-record
// FASTA text, the way grailbio's encoding/fasta package parses unindexed
// FASTA: a bufio.Scanner over lines, accumulating one sequence per
// '>'-header. Row order follows record order; this package does not
// validate alphabet membership beyond refusing the two symbols the index
// reserves for its own use.
package msa

import (
	"bufio"
	"io"
	"strings"

	"github.com/xiles84/pancol/internal/panerr"
)

// MSA is an ordered set of equal-width rows over Σ ∪ {'-'}.
type MSA struct {
	Names []string
	Rows  []string
	Width int
}

const (
	rowSeparator   = '$'
	globalSentinel = '#'
)

// Load reads multi-record FASTA from r. Every record becomes one row, in
// file order. All records must have equal length; rows may not contain the
// reserved bytes '$' or '#', and must be ASCII.
func Load(r io.Reader) (*MSA, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var names []string
	var rows []string
	var name string
	var build strings.Builder
	haveRecord := false

	flush := func() error {
		if !haveRecord {
			return nil
		}
		row := build.String()
		if err := validateRow(row); err != nil {
			return err
		}
		names = append(names, name)
		rows = append(rows, row)
		build.Reset()
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return nil, err
			}
			haveRecord = true
			name = strings.Fields(line[1:])[0]
			continue
		}
		if !haveRecord {
			return nil, panerr.Format("FASTA data before first header")
		}
		build.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, panerr.Format("reading MSA: %v", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, panerr.EmptyCorpus("MSA has zero rows")
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, panerr.Format("row %d (%s) has width %d, want %d", i, names[i], len(row), width)
		}
	}
	if width == 0 {
		return nil, panerr.EmptyCorpus("MSA rows are all zero-width")
	}

	return &MSA{Names: names, Rows: rows, Width: width}, nil
}

func validateRow(row string) error {
	for i := 0; i < len(row); i++ {
		c := row[i]
		if c > 127 {
			return panerr.Format("non-ASCII byte 0x%x at offset %d", c, i)
		}
		if c == rowSeparator || c == globalSentinel {
			return panerr.Format("reserved symbol %q appears inside a row", c)
		}
	}
	return nil
}
