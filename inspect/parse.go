package inspect

import "strings"

// Command is one parsed inspector input.
type Command struct {
	Verb string
	// Rest is the raw text after the verb.
	Rest string
}

var verbAliases = map[string]string{
	// Listing
	"ls": "list",
	"l":  "list",

	// Showing a line
	"x":     "show",
	"cat":   "show",
	"print": "show",

	// Reading a typed value
	"g":  "get",
	"as": "get",

	// Editing
	"put":    "set",
	"rm":     "del",
	"delete": "del",
	"unset":  "del",

	// Validation
	"validate": "check",
	"lint":     "check",

	// Miscellaneous
	"?":      "help",
	"export": "json",
}

// Parse splits an input into its verb and the remaining text. Verbs are
// case-insensitive and aliases are expanded.
func Parse(input string) Command {
	input = strings.TrimSpace(input)
	if input == "" {
		return Command{}
	}

	verb, rest, _ := strings.Cut(input, " ")
	verb = strings.ToLower(verb)
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}
	return Command{Verb: verb, Rest: strings.TrimSpace(rest)}
}

// splitArgs splits s into at most n whitespace separated fields. The last
// field keeps the remaining text, inner spaces included.
func splitArgs(s string, n int) []string {
	var out []string
	s = strings.TrimSpace(s)
	for len(out) < n-1 && s != "" {
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			break
		}
		out = append(out, s[:i])
		s = strings.TrimSpace(s[i+1:])
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}
