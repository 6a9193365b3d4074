package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

const unexpectedEnd = "unexpected end of JSON input"

// ValidateFile reports whether the file at path holds exactly one JSON value.
// It returns a *ParseError for malformed content and an *AccessError when the
// file cannot be read.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &AccessError{Path: path, Err: err}
	}
	return validateJSON(path, data)
}

func validateJSON(path string, data []byte) error {
	if pos := invalidUTF8(data); pos >= 0 {
		return newParseError(path, data, pos, fmt.Errorf("invalid UTF-8 byte 0x%02x", data[pos]))
	}

	var value any
	err := json.Unmarshal(data, &value)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return newParseError(path, data, 0, err)
	}

	// Offset counts bytes consumed, including the offending one.
	pos := int(syntaxErr.Offset) - 1
	if syntaxErr.Error() == unexpectedEnd {
		pos = len(data)
	}
	return newParseError(path, data, pos, err)
}

func newParseError(path string, data []byte, pos int, err error) *ParseError {
	pos = max(0, min(pos, len(data)))
	lineStart := bytes.LastIndexByte(data[:pos], '\n') + 1
	return &ParseError{
		Path:   path,
		Line:   bytes.Count(data[:pos], []byte{'\n'}) + 1,
		Column: utf8.RuneCount(data[lineStart:pos]) + 1,
		Offset: pos,
		Err:    err,
	}
}

// invalidUTF8 returns the offset of the first byte that is not valid UTF-8, or -1.
func invalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
