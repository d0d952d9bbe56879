// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	"fastacheck-core/assembly"
)

// Output formats for analyze.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ValidateOptions holds the flags of the validate subcommand.
type ValidateOptions struct {
	File             string
	Quiet            bool
	StrictEmpty      bool
	StrictDuplicates bool
	Format           string // text | json
}

func (o *ValidateOptions) Check() error {
	if o.File == "" {
		return errors.New("a FASTA file (or '-' for stdin) is required")
	}
	switch o.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	return nil
}

// AnalyzeOptions holds the flags of the analyze subcommand.
type AnalyzeOptions struct {
	File      string
	Detailed  bool
	Assembly  bool
	GeneSet   bool
	Outliers  string // "", "iqr", "zscore"
	Threshold float64
	Format    string
	Output    string // file path; empty writes the report to stdout only
	Quiet     bool
}

func (o *AnalyzeOptions) Check() error {
	if o.File == "" {
		return errors.New("a FASTA file (or '-' for stdin) is required")
	}
	switch o.Format {
	case FormatText, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	switch o.Outliers {
	case "", string(assembly.MethodIQR), string(assembly.MethodZScore):
	default:
		return fmt.Errorf("invalid --outliers %q", o.Outliers)
	}
	if o.Threshold <= 0 {
		return errors.New("--threshold must be > 0")
	}
	return nil
}
