package types

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// typeExpr is a C++ type spelling with optional template arguments,
// e.g. "std::vector<dto::Item>" or "unsigned int".
type typeExpr struct {
	Name     []string      `parser:"@(Scope | Ident | Number | Other)+"`
	Template *templateArgs `parser:"@@?"`
	Suffix   []string      `parser:"@(Scope | Ident | Number | Other)*"`
}

// templateArgs is an argument list, possibly empty as in "std::less<>"
type templateArgs struct {
	Open string      `parser:"@'<'"`
	Args []*typeExpr `parser:"( @@ ( ',' @@ )* )? '>'"`
}

var typeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Scope", Pattern: `::`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Angle", Pattern: `[<>,]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `[^<>,\s\w]`},
})

func newTypeParser() *participle.Parser[typeExpr] {
	return participle.MustBuild[typeExpr](
		participle.Lexer(typeLexer),
		participle.Elide("Whitespace"),
	)
}

var wordToken = regexp.MustCompile(`^\w+$`)

// joinTokens rebuilds a spelling, keeping a single space between words only
func joinTokens(tokens []string) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && wordToken.MatchString(tokens[i-1]) && wordToken.MatchString(tok) {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// name returns the normalized spelling before any template arguments
func (t *typeExpr) name() string {
	return joinTokens(t.Name)
}

// args returns the template arguments; nil when there is no argument list
func (t *typeExpr) args() []*typeExpr {
	if t.Template == nil {
		return nil
	}
	return t.Template.Args
}

// plain reports whether the expression has no argument list or trailing tokens
func (t *typeExpr) plain() bool {
	return t.Template == nil && len(t.Suffix) == 0
}
