// Package panerr collects the error taxonomy shared by the index-construction
// and query pipeline: malformed input fails construction fast, expected
// query-time conditions resolve to empty results, and the one path that the
// design proof calls unreachable is fatal rather than silently wrong.
package panerr

import "github.com/pkg/errors"

// ErrInputFormat marks malformed MSA input: rows of unequal length,
// non-ASCII bytes, or a reserved symbol ($ or #) inside a row.
var ErrInputFormat = errors.New("panerr: malformed MSA input")

// ErrEmptyCorpus marks an MSA with zero rows, or rows that are all
// zero-width.
var ErrEmptyCorpus = errors.New("panerr: empty MSA corpus")

// ErrNoMatch marks a query pattern with no occurrence anywhere in T. Callers
// in internal/index treat this as an empty result, not a propagated error.
var ErrNoMatch = errors.New("panerr: pattern not found")

// Format wraps err with a message under the ErrInputFormat taxonomy,
// keeping a stack trace the way github.com/pkg/errors wraps scanner
// failures in grailbio's fasta reader.
func Format(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInputFormat, format, args...)
}

// EmptyCorpus wraps a message under the ErrEmptyCorpus taxonomy.
func EmptyCorpus(msg string) error {
	return errors.Wrap(ErrEmptyCorpus, msg)
}

// Invariant panics with an InternalInvariant diagnostic. §7 of the design
// classifies a fall-through of BoundarySearch's decision table as a bug the
// correctness proof considers unreachable; it must never silently corrupt
// output, so it is fatal.
func Invariant(where string, detail string) {
	panic(errors.Errorf("panerr: internal invariant violated in %s: %s", where, detail))
}
