// core/fasta/validate.go
package fasta

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// ValidationResult is the full report of one validation pass.
// Valid is true iff no errors were recorded; warnings never affect it.
type ValidationResult struct {
	Valid       bool
	Errors      []Issue
	Warnings    []Issue
	RecordCount int
}

// Validate runs the parser to completion, collecting every finding without
// materializing sequence content beyond per-record tallies. Record-level
// problems (bad header, empty sequence, duplicate id) are collected and the
// scan continues; sequence data before the first header is fatal and stops
// the scan at that line. The returned error reports I/O or context failures
// only; format problems land in the result.
func Validate(ctx context.Context, r io.Reader, opt Options) (ValidationResult, error) {
	res := ValidationResult{Valid: true}

	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		lineNo  int
		open    bool
		curID   string
		curLine int
		curLen  int
		seen    = make(map[string]struct{})
	)

	errf := func(line int, format string, a ...any) {
		res.Errors = append(res.Errors, Issue{Line: line, Msg: fmt.Sprintf(format, a...)})
		res.Valid = false
	}
	warnf := func(line int, format string, a ...any) {
		res.Warnings = append(res.Warnings, Issue{Line: line, Msg: fmt.Sprintf(format, a...)})
	}
	closeRecord := func() {
		if !open {
			return
		}
		if curLen == 0 {
			if opt.StrictEmpty {
				errf(curLine, "record %q has an empty sequence", curID)
			} else {
				warnf(curLine, "record %q has an empty sequence", curID)
			}
		}
		open = false
	}

	for sc.Scan() {
		lineNo++
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		line := sc.Text()
		if isBlank(line) {
			continue
		}
		if line[0] == '>' {
			closeRecord()
			res.RecordCount++
			id, _ := splitHeader(line[1:])
			if id == "" {
				errf(lineNo, "header has no sequence id")
			} else {
				if _, dup := seen[id]; dup {
					if opt.StrictDuplicates {
						errf(lineNo, "duplicate sequence id %q", id)
					} else {
						warnf(lineNo, "duplicate sequence id %q", id)
					}
				}
				seen[id] = struct{}{}
			}
			open = true
			curID, curLine, curLen = id, lineNo, 0
			continue
		}
		if !open {
			errf(lineNo, "sequence data before first header")
			return res, nil
		}
		for i := 0; i < len(line); i++ {
			if !isSpace(line[i]) {
				curLen++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("fasta scan: %w", err)
	}
	closeRecord()
	return res, nil
}
