package config

const (
	// DefaultTarget is the directory scanned when no argument is given
	DefaultTarget = "."

	// JSONSuffix selects candidate files (case-sensitive)
	JSONSuffix = ".json"

	// ValidHeader precedes the list of files that parsed
	ValidHeader = "VALID JSON FILES:"

	// InvalidHeader precedes the list of files that failed to parse
	InvalidHeader = "INVALID JSON FILES:"

	// UnreadableHeader precedes the list of files that could not be read (--keep-going only)
	UnreadableHeader = "UNREADABLE JSON FILES:"

	// ReportWidth is the column limit before a list is broken one element per line
	ReportWidth = 80
)
