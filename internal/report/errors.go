package report

import "errors"

var (
	// ErrNoCandidateFiles indicates the input directory has no polar files.
	ErrNoCandidateFiles = errors.New("report: no candidate files")

	// ErrNoRecords indicates every candidate file failed to parse.
	ErrNoRecords = errors.New("report: no parsable polar files")
)

// Skipped is a candidate file left out of the report.
type Skipped struct {
	Path string
	Err  error
}
