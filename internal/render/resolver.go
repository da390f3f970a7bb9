package render

import "strings"

// Variant identifies the renderer outcome for a page.
type Variant string

const (
	VariantCenterMarkdown Variant = "center"
	VariantCardList       Variant = "cards"
	VariantNotFound       Variant = "not-found"
	VariantParseFailed    Variant = "parse-failed"
)

// MarkdownVariant selects the renderer for markdown pages via the template
// table's "using" key.
type MarkdownVariant string

// MarkdownCenter is the default (and currently only) markdown variant.
const MarkdownCenter MarkdownVariant = "center"

// CardVariant selects the renderer for JSON pages.
type CardVariant string

// CardList is the default (and currently only) JSON variant.
const CardList CardVariant = "cards"

// Result is the resolved render payload handed to the presentation layer.
// Exactly one variant's fields are populated.
type Result struct {
	Variant Variant

	// VariantCenterMarkdown.
	HTML       string
	ProseClass string
	HideNavbar bool
	HideFooter bool

	// VariantCardList.
	Groups *CardGroups

	// VariantParseFailed.
	ErrTitle  string
	ErrDetail string
}

// Resolve picks the renderer for a page from its name's suffix and its
// template-config table. A nil table behaves like {using: ""}. Unknown
// suffixes resolve to the not-found outcome, which is a valid terminal
// rendering, not an error.
func Resolve(name, content string, tmpl map[string]any) Result {
	suffix := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		suffix = name[i+1:]
	}

	using := ""
	if tmpl != nil {
		using, _ = tmpl["using"].(string)
	}

	switch suffix {
	case "md":
		if using == "" {
			using = string(MarkdownCenter)
		}
		switch MarkdownVariant(using) {
		case MarkdownCenter:
			return centerMarkdown(content, tmpl)
		default:
			// Unrecognized variants behave like the default.
			return centerMarkdown(content, tmpl)
		}
	case "json":
		if using == "" {
			using = string(CardList)
		}
		switch CardVariant(using) {
		case CardList:
			return cardList(content)
		default:
			return cardList(content)
		}
	default:
		return Result{Variant: VariantNotFound}
	}
}

// centerMarkdown renders the centered markdown variant: converted HTML, a
// prose class from the style table (or the fixed default), and the chrome
// visibility flags.
func centerMarkdown(content string, tmpl map[string]any) Result {
	htmlOut, err := MarkdownToHTML(content)
	if err != nil {
		return Result{
			Variant:   VariantParseFailed,
			ErrTitle:  "Markdown parse failed",
			ErrDetail: err.Error(),
		}
	}

	class := DefaultProseClass
	if style, ok := tmpl["style"].(map[string]any); ok {
		class = BuildProseClass(style)
	}

	hideNavbar, _ := tmpl["hide-navbar"].(bool)
	hideFooter, _ := tmpl["hide-footer"].(bool)

	return Result{
		Variant:    VariantCenterMarkdown,
		HTML:       htmlOut,
		ProseClass: class,
		HideNavbar: hideNavbar,
		HideFooter: hideFooter,
	}
}

// cardList renders the card list variant. A deserialization failure is
// surfaced as a distinct outcome carrying the error detail, unlike the
// loader's silently dropped fetch failures.
func cardList(content string) Result {
	groups, err := ParseCardGroups(content)
	if err != nil {
		return Result{
			Variant:   VariantParseFailed,
			ErrTitle:  "JSON Parse failed",
			ErrDetail: err.Error(),
		}
	}
	return Result{Variant: VariantCardList, Groups: groups}
}
