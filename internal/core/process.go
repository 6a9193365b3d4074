package core

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/jakebark/jsoncheck/internal/inputs"
)

type Processor struct {
	userInput inputs.UserInput
	logger    *log.Logger
	style     reportStyle
}

// NewProcessor returns a Processor that writes its diagnostics to w.
func NewProcessor(userInput inputs.UserInput, w io.Writer) *Processor {
	return &Processor{
		userInput: userInput,
		logger:    log.New(w, "", 0),
		style:     newReportStyle(userInput.Color),
	}
}

// Scan checks every .json file in the target directory and prints the report.
// A file that cannot be read stops the scan unless KeepGoing is set; the
// partial result is returned alongside the error and no report is printed.
func (p *Processor) Scan() (*ScanResult, error) {
	files, err := FindJSONFiles(p.userInput.Target)
	if err != nil {
		return nil, err
	}

	result := newScanResult()
	for _, name := range files {
		p.logger.Printf("Checking %s...", name)

		err := ValidateFile(filepath.Join(p.userInput.Target, name))
		if err == nil {
			result.Valid = append(result.Valid, name)
			continue
		}

		var accessErr *AccessError
		if errors.As(err, &accessErr) {
			if !p.userInput.KeepGoing {
				return result, fmt.Errorf("checking %s: %w", name, err)
			}
			result.Unreadable = append(result.Unreadable, name)
		} else {
			result.Invalid = append(result.Invalid, name)
		}
		result.failures = append(result.failures, err)
		p.reportFileError(name, err)
	}

	p.reportResults(result)
	return result, nil
}
