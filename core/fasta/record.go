// core/fasta/record.go
package fasta

import (
	"fmt"
	"strings"
)

// Record is one parsed FASTA entry. Length and the composition tallies count
// non-whitespace symbols only; Seq is populated only when Options.KeepSeq is
// set, so a streaming pass stays O(1) in file size.
type Record struct {
	ID          string
	Description string
	Line        int // line number of the header

	Length    int
	GC        int // G/C, case-insensitive
	N         int // literal N only; the N-content report counts these
	Ambiguous int // non-N IUPAC ambiguity codes (R, Y, S, W, ...)
	Other     int

	Seq []byte
}

// Issue is one non-fatal finding, tied to the input line it was seen on.
type Issue struct {
	Line int
	Msg  string
}

func (i Issue) String() string { return fmt.Sprintf("line %d: %s", i.Line, i.Msg) }

// FormatError is a fatal structural error; parsing does not continue past it.
type FormatError struct {
	Line int
	Msg  string
}

func (e *FormatError) Error() string { return fmt.Sprintf("line %d: %s", e.Line, e.Msg) }

// splitHeader splits the text after '>' into the id (first whitespace-run
// delimited token) and the remaining description.
func splitHeader(s string) (id, desc string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// observe counts the symbols of one sequence line into the record. Whitespace
// is skipped entirely; every other byte lands in exactly one tally.
func (r *Record) observe(line string, keepSeq bool) {
	for i := 0; i < len(line); i++ {
		c := line[i]
		if isSpace(c) {
			continue
		}
		r.Length++
		switch classOf(c) {
		case classGC:
			r.GC++
		case classN:
			r.N++
		case classAmbiguous:
			r.Ambiguous++
		default:
			r.Other++
		}
		if keepSeq {
			r.Seq = append(r.Seq, c)
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

type symClass int

const (
	classOther symClass = iota
	classGC
	classN
	classAmbiguous
)

func classOf(c byte) symClass {
	switch c {
	case 'G', 'g', 'C', 'c':
		return classGC
	case 'N', 'n':
		return classN
	case 'R', 'r', 'Y', 'y', 'S', 's', 'W', 'w', 'K', 'k',
		'M', 'm', 'B', 'b', 'D', 'd', 'H', 'h', 'V', 'v', 'X', 'x':
		return classAmbiguous
	}
	return classOther
}
