// core/fasta/parser.go
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Options controls parsing and validation policy.
type Options struct {
	// KeepSeq retains the assembled sequence text on emitted records.
	// Off by default so a full pass holds only the current record's tallies.
	KeepSeq bool

	// StrictEmpty promotes empty-sequence records from warnings to errors.
	StrictEmpty bool
	// StrictDuplicates promotes duplicate record ids from warnings to errors.
	StrictDuplicates bool

	// Warn, when non-nil, receives non-fatal findings (empty sequences,
	// duplicate ids) as they are discovered during ForEach. Duplicate
	// detection keeps a set of seen ids, so it only runs when Warn is set.
	Warn func(Issue)
}

// allow very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

// ForEach scans FASTA from r and calls emit once per assembled record, in
// input order. The underlying stream is consumed exactly once and cannot be
// restarted. Structural problems abort the scan with a *FormatError; emit
// returning a non-nil error (or ctx being done) also stops the scan early.
func ForEach(ctx context.Context, r io.Reader, opt Options, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		cur    Record
		open   bool
		lineNo int
		seen   map[string]struct{}
	)
	if opt.Warn != nil {
		seen = make(map[string]struct{})
	}

	flush := func() error {
		if !open {
			return nil
		}
		if cur.Length == 0 && opt.Warn != nil {
			opt.Warn(Issue{Line: cur.Line, Msg: fmt.Sprintf("record %q has an empty sequence", cur.ID)})
		}
		rec := cur
		cur = Record{}
		open = false
		return emit(rec)
	}

	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Text()
		if isBlank(line) {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			id, desc := splitHeader(line[1:])
			if id == "" {
				return &FormatError{Line: lineNo, Msg: "header has no sequence id"}
			}
			if seen != nil {
				if _, dup := seen[id]; dup {
					opt.Warn(Issue{Line: lineNo, Msg: fmt.Sprintf("duplicate sequence id %q", id)})
				}
				seen[id] = struct{}{}
			}
			cur = Record{ID: id, Description: desc, Line: lineNo}
			open = true
			continue
		}
		if !open {
			return &FormatError{Line: lineNo, Msg: "sequence data before first header"}
		}
		cur.observe(line, opt.KeepSeq)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// Stream is the channel wrapper around ForEach. The records channel is closed
// when the input is exhausted or the scan stops; the error channel then
// delivers the scan result. Abandoning the channel without draining it leaks
// the goroutine only until ctx is canceled.
func Stream(ctx context.Context, r io.Reader, opt Options) (<-chan Record, <-chan error) {
	out := make(chan Record, 8)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		errc <- ForEach(ctx, r, opt, func(rec Record) error {
			select {
			case out <- rec:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()
	return out, errc
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}
