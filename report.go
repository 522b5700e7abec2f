package cssprune

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles for consistent output formatting.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file locations and section headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleYellow is used for warnings.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for success messages.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for hints and secondary detail.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// ShouldUseColors determines if colors should be enabled: an explicit
// request wins, then CI conventions, then TTY detection.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}
	return false
}

// Reporter formats run results for the terminal.
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{w: w, useColors: useColors}
}

// PrintUnused lists unused rules, one per line, in file:offset: form,
// sorted by file then offset.
func (r *Reporter) PrintUnused(rules []UnusedRule) {
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].File != rules[j].File {
			return rules[i].File < rules[j].File
		}
		return rules[i].Offset < rules[j].Offset
	})

	for _, rule := range rules {
		location := fmt.Sprintf("%s:%d:", rule.File, rule.Offset)
		fmt.Fprintf(r.w, "%s unused rule %q\n",
			RenderStyle(StyleCyan, location, r.useColors), rule.Selector)
	}
}

// PrintSummary outputs index and file statistics plus any warnings.
func (r *Reporter) PrintSummary(result *Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Summary", r.useColors))
	fmt.Fprintf(r.w, "Index size:         %dB\n", result.IndexSize)
	fmt.Fprintf(r.w, "Distinct tokens:    %d\n", result.TokenCount)
	fmt.Fprintf(r.w, "Search files:       %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Stylesheet files:   %d\n", result.FilesParsed)
	fmt.Fprintf(r.w, "Rules examined:     %d\n", result.RulesSeen)
	fmt.Fprintf(r.w, "Unused rules:       %d\n", len(result.Unused))

	if len(result.Warnings) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
		for _, warning := range result.Warnings {
			fmt.Fprintf(r.w, "  %s\n", warning)
		}
	}

	if len(result.Unused) == 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "No unused rules found", r.useColors))
	}
}
