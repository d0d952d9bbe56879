// pkg/api/validation_v1.go
package api

// ValidationV1 is the stable JSON schema for a validation run.
type ValidationV1 struct {
	Valid       bool      `json:"is_valid"`
	RecordCount int       `json:"record_count"`
	Errors      []IssueV1 `json:"errors"`
	Warnings    []IssueV1 `json:"warnings"`
}

type IssueV1 struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}
