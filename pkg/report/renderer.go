// Package report renders daily work report artifacts. Rendering is strictly
// read-only with respect to HR records: the renderer receives a flat,
// pre-computed snapshot and produces a file.
package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
)

// DailyReport is the flat record handed to a renderer. All values are
// resolved by the caller; the renderer does no lookups of its own.
type DailyReport struct {
	EmployeeID int64
	Name       string
	Email      string
	Department string
	Date       string  // "2006-01-02"
	StartTime  string  // "15:04"
	EndTime    string  // "15:04"
	Hours      float64 // computed duration, fractional hours
}

// Number returns the human-facing report number, stable per employee+date.
func (r DailyReport) Number() string {
	return fmt.Sprintf("RPT-%d-%s", r.EmployeeID, r.Date)
}

// Renderer produces a report artifact and returns a handle (file path) to it.
type Renderer interface {
	Render(ctx context.Context, rep DailyReport) (string, error)
}

// HTMLRenderer writes daily reports as standalone HTML files: the report is
// composed as markdown and converted with goldmark. The markdown source
// doubles as the plain-text form of the report in logs and tests.
type HTMLRenderer struct {
	dir string
}

// NewHTMLRenderer creates a renderer writing artifacts under dir.
func NewHTMLRenderer(dir string) *HTMLRenderer {
	return &HTMLRenderer{dir: dir}
}

// Markdown composes the markdown source of the report.
func (h *HTMLRenderer) Markdown(rep DailyReport) string {
	var sb strings.Builder

	sb.WriteString("# Daily Report\n\n")
	sb.WriteString("Employee Report\n\n")

	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Employee name | %s |\n", rep.Name)
	fmt.Fprintf(&sb, "| Employee ID | %d |\n", rep.EmployeeID)
	fmt.Fprintf(&sb, "| Report no. | %s |\n", rep.Number())
	fmt.Fprintf(&sb, "| Date | %s |\n\n", rep.Date)

	sb.WriteString("| Work | Description | Approved by |\n|---|---|---|\n")
	fmt.Fprintf(&sb, "| Daily attendance | Worked from %s to %s (%.2f hours) | System |\n\n",
		rep.StartTime, rep.EndTime, rep.Hours)

	sb.WriteString("**Additional notes**\n\n")
	sb.WriteString("This report is system-generated based on employee attendance data.\n\n")
	fmt.Fprintf(&sb, "*Generated on: %s - HR Management System*\n",
		time.Now().Format("2006-01-02 15:04:05"))

	return sb.String()
}

// Render writes the report artifact and returns its path. The artifact name
// carries a uuid suffix so re-generated reports never clobber earlier ones.
func (h *HTMLRenderer) Render(ctx context.Context, rep DailyReport) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	md := h.Markdown(rep)

	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("convert report markdown: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=%q>\n<title>%s</title>\n</head>\n<body>\n",
		"utf-8", rep.Number())
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	name := fmt.Sprintf("daily_report_%d_%s_%s.html",
		rep.EmployeeID, rep.Date, uuid.NewString()[:8])
	path := filepath.Join(h.dir, name)

	if err := os.WriteFile(path, page.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}
