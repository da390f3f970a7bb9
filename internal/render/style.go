package render

import "strings"

// DefaultProseClass is the prose class applied when a page has no style table.
const DefaultProseClass = "prose prose-sm sm:prose-base dark:prose-invert"

// proseSlots is the fixed catalog of recognized style slots. The order is
// significant: it determines token order in the built class string.
var proseSlots = [...]string{
	"headings",
	"lead",
	"h1",
	"h2",
	"h3",
	"h4",
	"p",
	"a",
	"blockquote",
	"figure",
	"figcaption",
	"strong",
	"em",
	"code",
	"pre",
	"ol",
	"ul",
	"li",
	"table",
	"thead",
	"tr",
	"th",
	"td",
	"img",
	"video",
	"hr",
}

// BuildProseClass builds a prose utility-class string from a style table.
// For each slot present with a string value, only the first space-separated
// token is applied; trailing tokens are discarded. Non-string values and
// unknown slots are skipped.
func BuildProseClass(style map[string]any) string {
	var b strings.Builder
	b.WriteString(DefaultProseClass)
	for _, slot := range proseSlots {
		v, ok := style[slot].(string)
		if !ok {
			continue
		}
		tokens := strings.Split(v, " ")
		b.WriteString(" prose-" + slot + ":" + tokens[0])
	}
	return b.String()
}
