package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"tasnim.dev/aws-iam-audit/internal/audit"
	"tasnim.dev/aws-iam-audit/internal/ui"
)

const indent = "    "

var csvHeader = []string{"username", "policyArn", "permissions"}

// Writer emits a finished report to the console or to a file.
type Writer struct {
	fs        afero.Fs
	dir       string
	stdout    io.Writer
	highlight bool
	status    *ui.Status
	logger    *zap.Logger
}

// NewWriter returns a Writer that creates files under dir on fs and prints to
// stdout. JSON printed to a terminal is syntax highlighted.
func NewWriter(fs afero.Fs, dir string, stdout io.Writer, status *ui.Status, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		fs:        fs,
		dir:       dir,
		stdout:    stdout,
		highlight: isTerminal(stdout),
		status:    status,
		logger:    logger,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Console prints the report as indented JSON.
func (w *Writer) Console(rep *audit.Report) error {
	data, err := json.MarshalIndent(rep, "", indent)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	text := string(data)
	if w.highlight {
		text = highlight(text)
	}
	_, err = fmt.Fprintln(w.stdout, text)
	return err
}

// WriteFile writes the report in format f and returns the absolute path.
// On failure the report is printed to the console instead and ok is false.
func (w *Writer) WriteFile(rep *audit.Report, f Format, startedAt time.Time) (string, bool) {
	path := filepath.Join(w.dir, FileName(startedAt, f))
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if err := w.writeFile(rep, f, path); err != nil {
		w.logger.Error("report write failed", zap.String("path", path), zap.Error(err))
		w.status.Error("Error writing to file. Outputting to stdout instead")
		if cerr := w.Console(rep); cerr != nil {
			w.logger.Error("console fallback failed", zap.Error(cerr))
		}
		return "", false
	}

	w.logger.Info("report written", zap.String("path", path))
	w.status.Success("Complete. Data outputted to %s", path)
	return path, true
}

// Open returns a reader over a written report file.
func (w *Writer) Open(path string) (afero.File, error) {
	return w.fs.Open(path)
}

func (w *Writer) writeFile(rep *audit.Report, f Format, path string) error {
	var buf bytes.Buffer
	var err error
	switch f {
	case FormatJSON:
		err = encodeJSON(&buf, rep)
	case FormatCSV:
		err = encodeCSV(&buf, rep)
	default:
		err = fmt.Errorf("format %q does not write a file", f)
	}
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}

	if err := w.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	if err := afero.WriteFile(w.fs, path, buf.Bytes(), 0644); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}

func encodeJSON(out io.Writer, rep *audit.Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", indent)
	return enc.Encode(rep)
}

// encodeCSV writes one row per permission entry. The statements cell holds
// the compact JSON of the statement list.
func encodeCSV(out io.Writer, rep *audit.Report) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, user := range rep.Users() {
		rec, _ := rep.Record(user)
		for _, p := range rec.Permissions {
			cell, err := json.Marshal(p.Permissions)
			if err != nil {
				return fmt.Errorf("encoding statements of %s: %w", p.Policy, err)
			}
			if err := cw.Write([]string{user, p.Policy, string(cell)}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// highlight applies JSON syntax highlighting using chroma.
func highlight(text string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		return text
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return text
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return text
	}
	return buf.String()
}
