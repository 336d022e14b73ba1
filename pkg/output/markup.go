package output

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/savesync/pkg/output/styles"
)

var openTag = regexp.MustCompile(`<([A-Z][A-Za-z]*)>`)

// ExpandTags replaces each <Style>text</Style> span with text rendered in
// that style. With plain set the tags are dropped and the text kept. Tags
// do not nest; an opening tag without its closing tag is left as is.
func ExpandTags(s string, plain bool) string {
	var b strings.Builder
	for {
		loc := openTag.FindStringSubmatchIndex(s)
		if loc == nil {
			b.WriteString(s)
			return b.String()
		}

		name := s[loc[2]:loc[3]]
		closing := "</" + name + ">"
		end := strings.Index(s[loc[1]:], closing)
		if end < 0 {
			b.WriteString(s[:loc[1]])
			s = s[loc[1]:]
			continue
		}

		b.WriteString(s[:loc[0]])
		inner := s[loc[1] : loc[1]+end]
		if plain {
			b.WriteString(inner)
		} else {
			b.WriteString(styles.GetStyle(name).Render(inner))
		}
		s = s[loc[1]+end+len(closing):]
	}
}
