package core

import "fmt"

// ParseError reports a file whose content is not a single well-formed JSON document.
type ParseError struct {
	Path   string
	Line   int
	Column int
	Offset int
	Err    error
}

func (e *ParseError) Reason() string {
	return fmt.Sprintf("%v: line %d column %d (char %d)", e.Err, e.Line, e.Column, e.Offset)
}

func (e *ParseError) Error() string {
	return e.Path + ": " + e.Reason()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AccessError reports a file that could not be opened or read.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Reason() string {
	return e.Err.Error()
}

func (e *AccessError) Error() string {
	return e.Path + ": " + e.Reason()
}

func (e *AccessError) Unwrap() error {
	return e.Err
}
