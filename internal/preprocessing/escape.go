package preprocessing

import (
	"regexp"
	"strings"
)

// typstEscaper neutralizes characters Typst would interpret as markup. The
// markdown control characters (*, [, ], parentheses) are left alone so the
// markdown pass below can still see them.
var typstEscaper = strings.NewReplacer(
	`\`, `\\`,
	`#`, `\#`,
	`$`, `\$`,
	`%`, `\%`,
	`&`, `\&`,
	`_`, `\_`,
	`@`, `\@`,
	`~`, `\~`,
	"`", "\\`",
	`"`, `\"`,
	`<`, `\<`,
	`>`, `\>`,
)

var (
	markdownLinkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldItalicPattern     = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldPattern           = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern         = regexp.MustCompile(`\*([^*]+)\*`)
	escapedAsteriskHolder = "\x00ast\x00"
)

// EscapeTypst escapes Typst special characters in user text.
func EscapeTypst(text string) string {
	return typstEscaper.Replace(text)
}

// MarkdownToTypst converts the supported markdown subset (links, bold,
// italic) into Typst markup. Input is expected to be already escaped.
func MarkdownToTypst(text string) string {
	text = strings.ReplaceAll(text, `\*`, escapedAsteriskHolder)
	text = markdownLinkPattern.ReplaceAllString(text, `#link("$2")[$1]`)
	text = boldItalicPattern.ReplaceAllString(text, `#strong[#emph[$1]]`)
	text = boldPattern.ReplaceAllString(text, `#strong[$1]`)
	text = italicPattern.ReplaceAllString(text, `#emph[$1]`)
	return strings.ReplaceAll(text, escapedAsteriskHolder, `\*`)
}

// ToTypst runs the full user-text conversion for the Typst target.
func ToTypst(text string) string {
	return MarkdownToTypst(EscapeTypst(text))
}
