package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"fastacheck/pkg/api"

	"fastacheck-core/assembly"
	"fastacheck-core/fasta"
	"fastacheck-core/stats"
)

func summarize(t *testing.T, lengths []int, withAssembly bool) api.SummaryV1 {
	t.Helper()
	acc := stats.NewAccumulator()
	for _, l := range lengths {
		acc.Add(fasta.Record{ID: "s", Length: l})
	}
	var asm *assembly.Metrics
	if withAssembly {
		m := assembly.Compute(assembly.Config{}, acc.Lengths())
		asm = &m
	}
	return ToSummaryV1(stats.Assemble(acc.Basic(), acc.GCStats(), nil, nil, asm, nil, nil))
}

func TestWriteTextUndefinedMarkers(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, summarize(t, nil, false)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Sequences: 0") {
		t.Fatalf("missing count: %s", out)
	}
	if !strings.Contains(out, "Average length: undefined") {
		t.Fatalf("undefined mean must not render as 0: %s", out)
	}
	if strings.Contains(out, "Average length: 0") {
		t.Fatalf("undefined mean coerced to zero: %s", out)
	}
}

func TestWriteTextBasic(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, summarize(t, []int{10, 20, 30}, true)); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Sequences: 3",
		"Total length: 60 bp",
		"Average length: 20.0 bp",
		"N50: 30 bp (L50: 1)",
		"auN: 23.3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

type failWriter struct{ err error }

func (f failWriter) Write(p []byte) (int, error) { return 0, f.err }

func TestWriteTextReturnsWriteError(t *testing.T) {
	werr := errors.New("device full")
	if err := WriteText(failWriter{err: werr}, summarize(t, []int{10, 20, 30}, true)); !errors.Is(err, werr) {
		t.Fatalf("WriteText error = %v, want %v", err, werr)
	}
	if err := WriteValidationText(failWriter{err: werr}, api.ValidationV1{Valid: true}, false); !errors.Is(err, werr) {
		t.Fatalf("WriteValidationText error = %v, want %v", err, werr)
	}
	if err := WriteValidationText(failWriter{err: werr}, api.ValidationV1{Valid: true}, true); !errors.Is(err, werr) {
		t.Fatalf("quiet WriteValidationText error = %v, want %v", err, werr)
	}
}

func TestWriteJSONStableKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, summarize(t, []int{10, 20, 30}, true)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	basic, ok := doc["basic"].(map[string]any)
	if !ok {
		t.Fatalf("missing basic block: %v", doc)
	}
	if basic["sequence_count"].(float64) != 3 {
		t.Fatalf("basic.sequence_count = %v", basic["sequence_count"])
	}
	asm, ok := doc["assembly_stats"].(map[string]any)
	if !ok {
		t.Fatalf("missing assembly_stats block: %v", doc)
	}
	if asm["n50"].(float64) != 30 || asm["l50"].(float64) != 1 {
		t.Fatalf("n50/l50 = %v/%v", asm["n50"], asm["l50"])
	}
}

func TestWriteJSONUndefinedKeysAbsent(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, summarize(t, nil, true)); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	basic := doc["basic"].(map[string]any)
	if _, present := basic["mean_length"]; present {
		t.Fatalf("undefined mean must be absent, got %v", basic["mean_length"])
	}
	// The requested assembly block is present even for empty input.
	asm := doc["assembly_stats"].(map[string]any)
	if _, present := asm["n50"]; present {
		t.Fatalf("undefined n50 must be absent, got %v", asm["n50"])
	}
	if _, present := asm["size_distribution"]; !present {
		t.Fatal("size_distribution must be present")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, summarize(t, []int{10, 20, 30}, true)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "metric,value" {
		t.Fatalf("header = %q", lines[0])
	}
	joined := buf.String()
	for _, want := range []string{"sequence_count,3", "total_length,60", "n50,30", "l50,1"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("missing %q in:\n%s", want, joined)
		}
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, "yaml", api.SummaryV1{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestToValidationV1(t *testing.T) {
	res := fasta.ValidationResult{
		Valid:       false,
		RecordCount: 2,
		Errors:      []fasta.Issue{{Line: 3, Msg: "boom"}},
	}
	v := ToValidationV1(res)
	if v.Valid || v.RecordCount != 2 {
		t.Fatalf("conversion lost fields: %+v", v)
	}
	if len(v.Errors) != 1 || v.Errors[0].Line != 3 {
		t.Fatalf("errors = %+v", v.Errors)
	}
	if v.Warnings == nil {
		t.Fatal("warnings must encode as [], not null")
	}
}

func TestWriteValidationTextQuiet(t *testing.T) {
	var buf bytes.Buffer
	_ = WriteValidationText(&buf, api.ValidationV1{Valid: true, RecordCount: 1}, true)
	if got := strings.TrimSpace(buf.String()); got != "VALID" {
		t.Fatalf("quiet output = %q", got)
	}
	buf.Reset()
	_ = WriteValidationText(&buf, api.ValidationV1{}, true)
	if got := strings.TrimSpace(buf.String()); got != "INVALID" {
		t.Fatalf("quiet output = %q", got)
	}
}
