package services

import (
	"fmt"
	"html"
	"strings"

	"github.com/lifestory-app/lifestory-backend/internal/models"
)

const exportStylesheet = `
    body {
      font-family: 'Georgia', serif;
      line-height: 1.6;
      color: #333;
      max-width: 800px;
      margin: 0 auto;
      padding: 40px 20px;
    }
    .header {
      text-align: center;
      margin-bottom: 60px;
      border-bottom: 2px solid #10b981;
      padding-bottom: 20px;
    }
    .title { font-size: 36px; color: #10b981; margin-bottom: 10px; }
    .subtitle { font-size: 18px; color: #666; }
    .entry { margin-bottom: 40px; page-break-inside: avoid; }
    .entry-date { font-size: 14px; color: #10b981; font-weight: bold; margin-bottom: 10px; }
    .entry-title { font-size: 24px; color: #333; margin-bottom: 15px; }
    .entry-content { font-size: 16px; line-height: 1.8; }
    .chapter { page-break-before: always; margin-top: 60px; }
    .chapter-title {
      font-size: 28px;
      color: #10b981;
      text-align: center;
      margin-bottom: 40px;
      border-bottom: 1px solid #ddd;
      padding-bottom: 20px;
    }
`

// ExportTitle is the document title returned alongside the rendered HTML.
func ExportTitle(title string, year int) string {
	if strings.TrimSpace(title) != "" {
		return title
	}
	return fmt.Sprintf("My Life Story - %d", year)
}

// ComposeExport renders a year's entries (ordered ascending by creation
// date) into a printable HTML document. A new chapter opens whenever an
// entry's calendar month differs from the previous entry's month. Actual
// PDF rendering is left to the client; this is a pure string builder.
func ComposeExport(entries []models.Entry, year int, title string) string {
	headerTitle := strings.TrimSpace(title)
	if headerTitle == "" {
		headerTitle = "My Life Story"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(ExportTitle(title, year)))
	b.WriteString("<style>" + exportStylesheet + "</style>\n</head>\n<body>\n")
	b.WriteString("<div class=\"header\">\n")
	fmt.Fprintf(&b, "  <h1 class=\"title\">%s</h1>\n", html.EscapeString(headerTitle))
	fmt.Fprintf(&b, "  <p class=\"subtitle\">A year of reflections and growth • %d</p>\n", year)
	b.WriteString("</div>\n")

	for i, entry := range entries {
		newMonth := i == 0 || entries[i-1].CreatedAt.Month() != entry.CreatedAt.Month()
		if newMonth {
			fmt.Fprintf(&b, "<div class=\"chapter\"><h2 class=\"chapter-title\">%s %d</h2></div>\n",
				entry.CreatedAt.Month().String(), year)
		}

		content := html.EscapeString(entry.Content)
		content = strings.ReplaceAll(content, "\n", "<br>")

		b.WriteString("<div class=\"entry\">\n")
		fmt.Fprintf(&b, "  <div class=\"entry-date\">%s</div>\n", entry.CreatedAt.Format("Monday, January 2, 2006"))
		fmt.Fprintf(&b, "  <h3 class=\"entry-title\">%s</h3>\n", html.EscapeString(entry.Title))
		fmt.Fprintf(&b, "  <div class=\"entry-content\">%s</div>\n", content)
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
