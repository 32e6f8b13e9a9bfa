package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := NewStatus(&buf)

	s.Info("Running audit...")
	s.Success("Complete. Data outputted to %s", "/tmp/report.csv")

	assert.Equal(t, "Running audit...\nComplete. Data outputted to /tmp/report.csv\n", buf.String())
}

func TestStatus_EachLevelWritesOneLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewStatus(&buf)

	s.Detail("account %s", "123456789012")
	s.Warn("upload skipped")
	s.Error("boom")

	assert.Equal(t, "account 123456789012\nupload skipped\nboom\n", buf.String())
}

func TestStyles_RenderText(t *testing.T) {
	for _, style := range []struct {
		name string
		out  string
	}{
		{"info", InfoStyle.Render("x")},
		{"success", SuccessStyle.Render("x")},
		{"warning", WarningStyle.Render("x")},
		{"error", ErrorStyle.Render("x")},
	} {
		assert.Contains(t, style.out, "x", style.name)
	}
}
