package core

import "github.com/wiggin77/merror"

// ScanResult partitions the .json files of one scan. Each name appears in
// exactly one list, in directory-listing order.
type ScanResult struct {
	Valid      []string
	Invalid    []string
	Unreadable []string

	failures []error
}

func newScanResult() *ScanResult {
	return &ScanResult{
		Valid:   []string{},
		Invalid: []string{},
	}
}

// Err folds every per-file failure into a single error, or nil when all files are valid.
func (r *ScanResult) Err() error {
	merr := merror.New()
	for _, err := range r.failures {
		merr.Append(err)
	}
	return merr.ErrorOrNil()
}
