package shorthand

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	fontLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"|'(?:\\.|[^'])*'`},
		{Name: "Length", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)px`},
		{Name: "Number", Pattern: `\d+(?:\.\d*)?|\.\d+`},
		{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_-]*`},
		{Name: "Punct", Pattern: `[,/]`},
	})

	fontParser = participle.MustBuild[fontAST](
		participle.Lexer(fontLexer),
		participle.Elide("Whitespace"),
	)
)

// fontAST is the parse tree of one shorthand. A leading number before the
// size is a numeric weight, which the grammar cannot tell apart from a
// size without lookahead, so both land in Sizes.
type fontAST struct {
	Pos        lexer.Position `parser:""`
	Weight     string         `parser:"@( 'normal' | 'bold' )?"`
	Sizes      []string       `parser:"@( Length | Number ) @( Length | Number )?"`
	LineHeight string         `parser:"( '/' @( Length | Number | 'normal' ) )?"`
	Families   []*familyAST   `parser:"@@ ( ',' @@ )*"`
}

type familyAST struct {
	Quoted string   `parser:"  @String"`
	Words  []string `parser:"| @Ident+"`
}
