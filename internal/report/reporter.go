package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pmezard/go-difflib/difflib"
)

// Reporter writes human-readable rewrite output
type Reporter struct {
	w         io.Writer
	useColors bool
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer, useColors bool) *Reporter {
	return &Reporter{
		w:         w,
		useColors: useColors,
	}
}

// ShouldUseColors determines if colors should be enabled for output sent to w
func ShouldUseColors(w io.Writer, force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// Auto-detect TTY; buffers and pipes get plain text
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RuleRow is one line of a rule listing
type RuleRow struct {
	Group       string
	Kind        string
	Match       string
	Replacement string
}

// PrintStatus prints the single result line
func (r *Reporter) PrintStatus(modified, dryRun bool) {
	status := fmt.Sprintf("%t", modified)
	if modified {
		status = RenderStyle(StyleGreen, status, r.useColors)
	}

	if dryRun {
		fmt.Fprintf(r.w, "Dry run. Text would be modified: %s\n", status)
		return
	}
	fmt.Fprintf(r.w, "Done. Text was modified: %s\n", status)
}

// PrintDiff prints a unified diff between two versions of the file at path.
// Nothing is printed when the versions are equal.
func (r *Reporter) PrintDiff(path, original, final string) error {
	text, err := UnifiedDiff(path, original, final)
	if err != nil {
		return err
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprint(r.w, r.colorizeDiffLine(line))
	}
	return nil
}

// colorizeDiffLine styles one line of unified diff output, keeping its newline
func (r *Reporter) colorizeDiffLine(line string) string {
	if !r.useColors {
		return line
	}

	body := strings.TrimSuffix(line, "\n")
	nl := line[len(body):]

	switch {
	case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "@@"):
		return StyleCyan.Render(body) + nl
	case strings.HasPrefix(body, "-"):
		return StyleRed.Render(body) + nl
	case strings.HasPrefix(body, "+"):
		return StyleGreen.Render(body) + nl
	default:
		return line
	}
}

// UnifiedDiff renders a plain unified diff with three lines of context.
func UnifiedDiff(path, original, final string) (string, error) {
	if original == final {
		return "", nil
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(final),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("rendering diff: %w", err)
	}
	return text, nil
}

// PrintRules lists rules in application order, with a header per group
func (r *Reporter) PrintRules(rows []RuleRow) {
	width := len(fmt.Sprintf("%d", len(rows)))

	group := ""
	for i, row := range rows {
		if row.Group != group || i == 0 {
			if i > 0 {
				fmt.Fprintln(r.w, "")
			}
			fmt.Fprintln(r.w, RenderStyle(StyleCyan, row.Group, r.useColors))
			group = row.Group
		}

		index := fmt.Sprintf("%*d.", width, i+1)
		fmt.Fprintf(r.w, "  %s %-7s %q -> %q\n",
			RenderStyle(StyleGray, index, r.useColors),
			row.Kind,
			row.Match,
			row.Replacement)
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, pluralizeCount(len(rows), "rule", "rules"))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
