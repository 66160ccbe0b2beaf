package output

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const sectionWidth = 61 // inner width between │ and line end

// Section is a box-drawn block of per-badge result lines closed by a total.
type Section struct {
	w      io.Writer
	color  bool
	start  time.Time
	ok     int
	failed int
}

// NewSection writes the header for name and starts the section clock.
func NewSection(w io.Writer, name string, color bool) *Section {
	label := "── " + name + " "
	fill := sectionWidth + 4 - len(label)
	if fill < 2 {
		fill = 2
	}
	header := label + strings.Repeat("─", fill)
	if color {
		header = "\033[2;36m" + header + colorReset
	}
	fmt.Fprintf(w, "\n    %s\n", header)
	return &Section{w: w, color: color, start: time.Now()}
}

// Row writes a content line inside the section frame.
func (s *Section) Row(format string, args ...any) {
	fmt.Fprintf(s.w, "    │ %s\n", fmt.Sprintf(format, args...))
}

// Result writes one badge line and counts it. Any status other than
// "success" counts as a failure.
func (s *Section) Result(name, status, detail string) {
	if status == "success" {
		s.ok++
	} else {
		s.failed++
	}
	s.Row("%s %-16s%s", StatusIcon(status, s.color), name, Dimmed(detail, s.color))
}

// Failed returns the number of failed results so far.
func (s *Section) Failed() int { return s.failed }

// Close writes the total line and the footer.
func (s *Section) Close() {
	status := "success"
	if s.failed > 0 {
		status = "failed"
	}
	total := fmt.Sprintf("%d ok", s.ok)
	if s.failed > 0 {
		total += fmt.Sprintf(", %d failed", s.failed)
	}
	s.Row("%s %-16s%s", StatusIcon(status, s.color), "total", total+"  "+Dimmed(formatElapsed(time.Since(s.start)), s.color))
	fmt.Fprintf(s.w, "    └%s\n", strings.Repeat("─", sectionWidth))
}

// StatusIcon returns a status icon, colored when color is set.
func StatusIcon(status string, color bool) string {
	switch status {
	case "success":
		return paint("✓", colorGreen, color)
	case "failed":
		return paint("✗", colorRed, color)
	default:
		return paint("⊘", colorYellow, color)
	}
}

func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return "<1ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	return fmt.Sprintf("%dm%.1fs", int(d.Minutes()), (d % time.Minute).Seconds())
}
