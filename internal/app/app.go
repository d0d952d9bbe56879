// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fastacheck-core/assembly"
	"fastacheck-core/fasta"
	"fastacheck-core/stats"
	"fastacheck/internal/cli"
	"fastacheck/internal/cmdutil"
	"fastacheck/internal/fastaio"
	"fastacheck/internal/output"
	"fastacheck/internal/version"
)

// exitError carries a process exit code through cobra. A nil wrapped error
// means the report on stdout already says everything.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

var errInvalid = &exitError{code: 1}

// RunContext executes the CLI against argv and returns the process exit
// code: 0 success, 1 invalid input, 2 usage or I/O error, 3 write failure.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintln(stderr, "error:", ee.err)
			}
			return ee.code
		}
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fastacheck",
		Short:         "Validate and analyze FASTA files",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newAnalyzeCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	var opt cli.ValidateOptions
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate FASTA file format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.File = args[0]
			if err := opt.Check(); err != nil {
				return err
			}
			rc, err := fastaio.Open(opt.File)
			if err != nil {
				return err
			}
			defer rc.Close()

			res, err := fasta.Validate(cmd.Context(), rc, fasta.Options{
				StrictEmpty:      opt.StrictEmpty,
				StrictDuplicates: opt.StrictDuplicates,
			})
			if err != nil {
				return err
			}
			v := output.ToValidationV1(res)
			var werr error
			if opt.Format == cli.FormatJSON {
				werr = output.WriteValidationJSON(cmd.OutOrStdout(), v)
			} else {
				werr = output.WriteValidationText(cmd.OutOrStdout(), v, opt.Quiet)
			}
			if werr != nil {
				return writeFailure(werr)
			}
			if !res.Valid {
				return errInvalid
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&opt.Quiet, "quiet", false, "only print the verdict (VALID/INVALID)")
	fs.BoolVar(&opt.StrictEmpty, "strict-empty", false, "treat empty sequences as errors")
	fs.BoolVar(&opt.StrictDuplicates, "strict-duplicates", false, "treat duplicate ids as errors")
	fs.StringVar(&opt.Format, "format", cli.FormatText, "report format: text | json")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	opt := cli.AnalyzeOptions{Threshold: assembly.DefaultThreshold}
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a FASTA file and report statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opt.File = args[0]
			if err := opt.Check(); err != nil {
				return err
			}
			return analyze(cmd, opt)
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&opt.Detailed, "detailed", false, "include detailed length, GC and N statistics")
	fs.BoolVar(&opt.Assembly, "assembly", false, "include genome assembly metrics (Nx/Lx, auN)")
	fs.BoolVar(&opt.GeneSet, "gene-set", false, "include gene/protein set metrics")
	fs.StringVar(&opt.Outliers, "outliers", "", "detect length outliers: iqr | zscore")
	fs.Float64Var(&opt.Threshold, "threshold", assembly.DefaultThreshold, "outlier threshold (IQR multiplier or z-score cutoff)")
	fs.StringVar(&opt.Format, "format", cli.FormatText, "report format: text | json | csv")
	fs.StringVar(&opt.Output, "output", "", "write the report to a file instead of stdout")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr")
	return cmd
}

func analyze(cmd *cobra.Command, opt cli.AnalyzeOptions) error {
	rc, err := fastaio.Open(opt.File)
	if err != nil {
		return err
	}
	defer rc.Close()

	stderr := cmd.ErrOrStderr()
	acc := stats.NewAccumulator()
	perr := fasta.ForEach(cmd.Context(), rc, fasta.Options{
		Warn: func(i fasta.Issue) { cmdutil.WarnIssue(stderr, opt.Quiet, i) },
	}, func(rec fasta.Record) error {
		acc.Add(rec)
		return nil
	})
	if perr != nil {
		var fe *fasta.FormatError
		if errors.As(perr, &fe) {
			return &exitError{code: 1, err: fmt.Errorf("invalid FASTA file: %w", fe)}
		}
		return perr
	}

	summary, err := buildSummary(acc, opt)
	if err != nil {
		return err
	}

	v := output.ToSummaryV1(summary)
	dst := cmd.OutOrStdout()
	if opt.Output != "" {
		f, err := os.Create(opt.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		dst = f
	}
	if werr := output.Write(dst, opt.Format, v); werr != nil {
		return writeFailure(werr)
	}
	return nil
}

// buildSummary runs the post-stream analyses the flags asked for and merges
// them. The length set is handed to the distribution engine by value, once.
func buildSummary(acc *stats.Accumulator, opt cli.AnalyzeOptions) (stats.Summary, error) {
	var (
		lengthStats *stats.LengthStats
		nStats      *stats.NStats
		asm         *assembly.Metrics
		genes       *assembly.GeneMetrics
		outliers    *assembly.OutlierReport
	)
	lengths := acc.Lengths()
	if opt.Detailed {
		ls := acc.LengthStats()
		ns := acc.NStats()
		lengthStats, nStats = &ls, &ns
	}
	if opt.Assembly {
		m := assembly.Compute(assembly.Config{}, lengths)
		asm = &m
	}
	if opt.GeneSet {
		g := assembly.ComputeGenes(lengths)
		genes = &g
	}
	if opt.Outliers != "" {
		rep, err := assembly.Detect(assembly.Method(opt.Outliers), opt.Threshold, lengths)
		if err != nil {
			return stats.Summary{}, err
		}
		outliers = &rep
	}
	return stats.Assemble(acc.Basic(), acc.GCStats(), lengthStats, nStats, asm, genes, outliers), nil
}

func writeFailure(err error) error {
	if output.IsBrokenPipe(err) {
		return nil
	}
	return &exitError{code: 3, err: err}
}
