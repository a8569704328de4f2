package format

import (
	"fmt"
	"strings"
)

// DefaultDelimiter joins the items of an array tag written without a
// delimiter argument.
const DefaultDelimiter = ", "

// Segment is one piece of a compiled pattern: a Literal, a SimpleTag or an
// ArrayTag.
type Segment interface {
	segment()
}

type Literal struct {
	Text string
}

type SimpleTag struct {
	Kind   TagKind
	Prefix string
	Suffix string
}

type ArrayTag struct {
	Kind      TagKind
	Prefix    string
	Suffix    string
	Delimiter string
}

func (Literal) segment()   {}
func (SimpleTag) segment() {}
func (ArrayTag) segment()  {}

// Compile parses a pattern into segments.
//
// A pattern is literal text with tags in braces. A tag is a kind character,
// optionally followed by a prefix and a suffix and, for array tags, a
// delimiter, all separated by commas: "{n}", "{m,,\" \"}", "{p,(,),\", \"}".
// Arguments are taken verbatim; double quotes allow commas and braces inside
// an argument, with \" and \\ as escapes.
func Compile(pattern string) ([]Segment, error) {
	c := &compiler{src: pattern}
	if err := c.run(); err != nil {
		return nil, err
	}
	return c.segs, nil
}

type compiler struct {
	src  string
	pos  int
	lit  strings.Builder
	segs []Segment
}

func (c *compiler) errorf(offset int, format string, args ...any) error {
	return &CompileError{Pattern: c.src, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func (c *compiler) run() error {
	for c.pos < len(c.src) {
		switch ch := c.src[c.pos]; ch {
		case '{':
			c.flush()
			seg, err := c.tag()
			if err != nil {
				return err
			}
			c.segs = append(c.segs, seg)
		case '}':
			return c.errorf(c.pos, "unmatched '}'")
		default:
			c.lit.WriteByte(ch)
			c.pos++
		}
	}
	c.flush()
	return nil
}

func (c *compiler) flush() {
	if c.lit.Len() == 0 {
		return
	}
	c.segs = append(c.segs, Literal{Text: c.lit.String()})
	c.lit.Reset()
}

// tag reads a tag starting at the opening brace.
func (c *compiler) tag() (Segment, error) {
	start := c.pos
	c.pos++

	var args []string
	for {
		arg, err := c.arg(start, len(args) == 0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		term := c.src[c.pos]
		c.pos++
		if term == '}' {
			break
		}
	}

	name := strings.TrimSpace(args[0])
	if name == "" {
		return nil, c.errorf(start, "empty tag")
	}
	kind := TagKind(name[0])
	if len(name) != 1 || !kind.valid() {
		return nil, c.errorf(start+1, "unknown tag kind %q", name)
	}

	params := args[1:]
	if kind.IsArray() {
		seg := ArrayTag{Kind: kind, Delimiter: DefaultDelimiter}
		switch len(params) {
		case 0:
		case 3:
			seg.Delimiter = params[2]
			fallthrough
		case 2:
			seg.Prefix, seg.Suffix = params[0], params[1]
		default:
			return nil, c.errorf(start, "tag %s takes 0, 2 or 3 arguments, got %d", kind, len(params))
		}
		return seg, nil
	}

	seg := SimpleTag{Kind: kind}
	switch len(params) {
	case 0:
	case 2:
		seg.Prefix, seg.Suffix = params[0], params[1]
	default:
		return nil, c.errorf(start, "tag %s takes 0 or 2 arguments, got %d", kind, len(params))
	}
	return seg, nil
}

// arg reads one tag argument and leaves the position on the ',' or '}'
// that ends it. The kind, read as the first argument, cannot be quoted.
func (c *compiler) arg(tagStart int, kind bool) (string, error) {
	i := c.pos
	for i < len(c.src) && isSpace(c.src[i]) {
		i++
	}
	if i < len(c.src) && c.src[i] == '"' {
		if kind {
			return "", c.errorf(i, "quoted tag kind")
		}
		c.pos = i
		return c.quoted(tagStart)
	}

	var sb strings.Builder
	for c.pos < len(c.src) {
		switch ch := c.src[c.pos]; ch {
		case ',', '}':
			return sb.String(), nil
		case '{':
			return "", c.errorf(c.pos, "'{' inside tag")
		case '"':
			return "", c.errorf(c.pos, "quote inside unquoted argument")
		default:
			sb.WriteByte(ch)
			c.pos++
		}
	}
	return "", c.errorf(tagStart, "unterminated tag")
}

func (c *compiler) quoted(tagStart int) (string, error) {
	open := c.pos
	c.pos++

	var sb strings.Builder
	for {
		if c.pos >= len(c.src) {
			return "", c.errorf(open, "unterminated quote")
		}
		ch := c.src[c.pos]
		c.pos++
		if ch == '"' {
			break
		}
		if ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		if c.pos >= len(c.src) {
			return "", c.errorf(open, "unterminated quote")
		}
		switch esc := c.src[c.pos]; esc {
		case '"', '\\':
			sb.WriteByte(esc)
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		default:
			return "", c.errorf(c.pos-1, "unknown escape \\%c", esc)
		}
		c.pos++
	}

	for c.pos < len(c.src) && isSpace(c.src[c.pos]) {
		c.pos++
	}
	if c.pos >= len(c.src) {
		return "", c.errorf(tagStart, "unterminated tag")
	}
	if ch := c.src[c.pos]; ch != ',' && ch != '}' {
		return "", c.errorf(c.pos, "text after closing quote")
	}
	return sb.String(), nil
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
