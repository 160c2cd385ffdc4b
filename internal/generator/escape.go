package generator

import "strings"

// escaper rewrites text so it can sit between the quotes of a double-quoted
// Go string literal. Backslash must be listed first: the Replacer tries the
// pairs in argument order at each position, so backslashes introduced by the
// quote and newline rules are never re-escaped.
var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
)

// unescaper reverses escaper. The `\\` pair must come first so an escaped
// backslash followed by a literal 'n' is not misread as an escaped newline.
var unescaper = strings.NewReplacer(
	`\\`, `\`,
	`\"`, `"`,
	`\n`, "\n",
)

// Escape makes raw template text safe to embed inside a double-quoted string
// literal in the generated source.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape. Unescape(Escape(s)) == s for any s.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
