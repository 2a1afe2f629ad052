// Package htmltext converts question bodies from HTML to plain terminal text.
package htmltext

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/muesli/reflow/wordwrap"
)

var (
	strict = bluemonday.StrictPolicy()

	// blockBreaks turns block-level tags into line breaks before tags are stripped.
	blockBreaks = strings.NewReplacer(
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
		"</p>", "\n\n",
		"</pre>", "\n\n",
		"</blockquote>", "\n\n",
		"</h1>", "\n\n",
		"</h2>", "\n\n",
		"</h3>", "\n\n",
		"<li>", "- ",
		"</li>", "\n",
		"</ul>", "\n",
		"</ol>", "\n",
	)

	blankLines = regexp.MustCompile(`\n{3,}`)
)

// ToText strips all markup from body and returns readable plain text.
// If width is positive the text is word-wrapped to that width.
func ToText(body string, width int) string {
	text := blockBreaks.Replace(body)
	text = strict.Sanitize(text)
	text = html.UnescapeString(text)
	text = blankLines.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	return text
}
