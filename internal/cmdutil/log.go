// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"fastacheck-core/fasta"
)

// Warnf writes one warning line unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WarnIssue reports one parser finding on stderr.
func WarnIssue(dst io.Writer, quiet bool, i fasta.Issue) {
	Warnf(dst, quiet, "%s", i.String())
}
