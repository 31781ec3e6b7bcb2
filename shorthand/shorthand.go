package shorthand

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/gogpu/fontinfo"
)

// Parse parses a font shorthand into a Descriptor.
// Errors are *SyntaxError; rejected weights and sizes also match
// fontinfo.ErrInvalidWeight and fontinfo.ErrInvalidSize with errors.Is.
func Parse(s string) (fontinfo.Descriptor, error) {
	ast, err := fontParser.ParseString("", s)
	if err != nil {
		se := &SyntaxError{Input: s, Msg: err.Error()}
		var perr participle.Error
		if errors.As(err, &perr) {
			se.Offset = perr.Position().Offset
			se.Msg = perr.Message()
		}
		return fontinfo.Descriptor{}, se
	}
	return build(s, ast)
}

// MustParse is like Parse but panics on error. It is intended for
// constants in tests and defaults.
func MustParse(s string) fontinfo.Descriptor {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func build(input string, ast *fontAST) (fontinfo.Descriptor, error) {
	weight := ast.Weight
	sizeTok := ast.Sizes[len(ast.Sizes)-1]
	if len(ast.Sizes) == 2 {
		if weight != "" {
			return fontinfo.Descriptor{}, &SyntaxError{Input: input, Msg: "weight given twice"}
		}
		weight = ast.Sizes[0]
	}
	weight, err := fontinfo.ParseWeight(weight)
	if err != nil {
		return fontinfo.Descriptor{}, &SyntaxError{Input: input, Msg: "bad weight", Err: err}
	}

	size, ok := parseLength(sizeTok)
	if !ok || size <= 0 {
		return fontinfo.Descriptor{}, &SyntaxError{
			Input:  input,
			Offset: strings.Index(input, sizeTok),
			Msg:    "bad size " + sizeTok,
			Err:    fontinfo.ErrInvalidSize,
		}
	}

	var lineHeight float64
	switch lh := ast.LineHeight; {
	case lh == "" || lh == "normal":
	case strings.HasSuffix(lh, "px"):
		lineHeight, _ = parseLength(lh)
	default:
		mult, _ := parseLength(lh)
		lineHeight = mult * size
	}

	families := make([]string, 0, len(ast.Families))
	for _, f := range ast.Families {
		if f.Quoted != "" {
			families = append(families, f.Quoted)
			continue
		}
		families = append(families, strings.Join(f.Words, " "))
	}

	return fontinfo.NewDescriptor(strings.Join(families, ", "), weight, size, lineHeight), nil
}

func parseLength(tok string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(tok, "px"), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// Format renders d as a shorthand that Parse accepts. A normal weight and
// a zero line height are omitted.
func Format(d fontinfo.Descriptor) string {
	var b strings.Builder
	if d.Weight != "" && d.Weight != "normal" {
		b.WriteString(d.Weight)
		b.WriteByte(' ')
	}
	b.WriteString(formatPx(d.Size))
	if d.LineHeight > 0 {
		b.WriteByte('/')
		b.WriteString(formatPx(d.LineHeight))
	}
	b.WriteByte(' ')
	b.WriteString(d.Family)
	return b.String()
}

func formatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
