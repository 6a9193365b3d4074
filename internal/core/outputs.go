package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/jakebark/jsoncheck/internal/config"
)

type reportStyle struct {
	header *color.Color
	valid  *color.Color
	failed *color.Color
}

func newReportStyle(enabled bool) reportStyle {
	style := reportStyle{
		header: color.New(color.Bold),
		valid:  color.New(color.FgGreen, color.Bold),
		failed: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{style.header, style.valid, style.failed} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return style
}

func (p *Processor) reportFileError(name string, err error) {
	var reasoner interface{ Reason() string }
	reason := err.Error()
	if errors.As(err, &reasoner) {
		reason = reasoner.Reason()
	}
	p.logger.Print(p.style.failed.Sprintf("Error at %s: %s", name, reason))
}

func (p *Processor) reportResults(result *ScanResult) {
	p.reportList(p.style.valid, config.ValidHeader, result.Valid)
	p.reportList(p.style.header, config.InvalidHeader, result.Invalid)
	if len(result.Unreadable) > 0 {
		p.reportList(p.style.failed, config.UnreadableHeader, result.Unreadable)
	}

	// with --keep-going every failure is repeated with its full path
	if !p.userInput.KeepGoing {
		return
	}
	if err := result.Err(); err != nil {
		p.logger.Print("")
		p.logger.Print(p.style.failed.Sprint(err))
	}
}

func (p *Processor) reportList(style *color.Color, header string, names []string) {
	p.logger.Print("")
	p.logger.Print(style.Sprint(header))
	p.logger.Print(formatList(names))
}

// formatList renders names as a bracketed list of quoted strings, one per
// line once the single-line form is wider than config.ReportWidth.
func formatList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteName(name)
	}

	oneLine := "[" + strings.Join(quoted, ", ") + "]"
	if utf8.RuneCountInString(oneLine) <= config.ReportWidth {
		return oneLine
	}
	return "[" + strings.Join(quoted, ",\n ") + "]"
}

// quoteName prefers single quotes, switching to double quotes only when that
// avoids escaping.
func quoteName(name string) string {
	quote := '\''
	if strings.ContainsRune(name, '\'') && !strings.ContainsRune(name, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range name {
		switch {
		case r == quote || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}
