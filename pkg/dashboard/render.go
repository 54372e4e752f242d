package dashboard

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md     = goldmark.New(goldmark.WithExtensions(extension.Table))
	policy = bluemonday.UGCPolicy()
)

var cellEscaper = strings.NewReplacer(
	`\`, `\\`,
	"|", `\|`,
	"\r\n", " ",
	"\n", " ",
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"<", "&lt;",
	">", "&gt;",
)

func cell(s string) string { return cellEscaper.Replace(s) }

// Markdown renders the summary as a Markdown document.
func Markdown(s Summary) string {
	var b strings.Builder
	b.WriteString("## Dashboard\n\n")
	fmt.Fprintf(&b, "- Tasks due today: %d\n", s.DueToday)
	fmt.Fprintf(&b, "- Upcoming tasks: %d\n", s.Upcoming)
	fmt.Fprintf(&b, "- Tasks completed in last %d days: %d\n", s.WindowDays, s.CompletedInRange)

	b.WriteString("\n### Most Popular Task Categories\n\n")
	if len(s.Categories) == 0 {
		b.WriteString("No tasks yet.\n")
	} else {
		b.WriteString("| Category | Tasks |\n| --- | ---: |\n")
		for _, c := range s.Categories {
			fmt.Fprintf(&b, "| %s | %d |\n", cell(c.Category), c.Count)
		}
	}

	fmt.Fprintf(&b, "\n### Tasks Completed in Last %d Days\n\n", s.WindowDays)
	if len(s.Completed) == 0 {
		b.WriteString("Nothing completed.\n")
	} else {
		b.WriteString("| Task | Count |\n| --- | ---: |\n")
		for _, bar := range s.Completed {
			fmt.Fprintf(&b, "| %s | %d |\n", cell(bar.Name), bar.Value)
		}
	}
	return b.String()
}

// HTML renders the summary as sanitized HTML.
func HTML(s Summary) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(s)), &buf); err != nil {
		return "", fmt.Errorf("render dashboard: %w", err)
	}
	return policy.Sanitize(buf.String()), nil
}
