package report

import (
	"fmt"
	"strings"
	"time"

	"tasnim.dev/aws-iam-audit/internal/constants"
	"tasnim.dev/aws-iam-audit/internal/utils"
)

// Format selects where the report goes.
type Format string

const (
	FormatStdout Format = "stdout"
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
)

var Formats = []Format{FormatStdout, FormatCSV, FormatJSON}

// ParseFormat accepts exactly one of the known formats.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", fmt.Errorf("invalid output type %q, must be one of: %s", s, strings.Join(names, ", "))
}

// IsFile reports whether the format writes a file rather than printing.
func (f Format) IsFile() bool {
	return f == FormatCSV || f == FormatJSON
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain"
	}
}

// FileName returns the report file name for a run started at t,
// e.g. 05_Mar_2024_14_07_09_aws_iam_permissions.csv.
func FileName(t time.Time, f Format) string {
	return fmt.Sprintf("%s_%s.%s", utils.Stamp(t), constants.ReportSuffix, f)
}
