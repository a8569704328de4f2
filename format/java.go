package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/elfmt/java"
)

// JavaEncoder writes a class as a Java skeleton: declarations only, with
// empty bodies.
type JavaEncoder struct {
	w        io.Writer
	patterns Patterns
	class    *java.Class
}

func NewJavaEncoder(w io.Writer, patterns Patterns) *JavaEncoder {
	return &JavaEncoder{w: w, patterns: patterns}
}

func (e *JavaEncoder) Encode(class *java.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JavaEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	c := e.class

	if pkg := c.PackageName(); pkg != "" && c.Outer == nil {
		sb.WriteString("package ")
		sb.WriteString(pkg)
		sb.WriteString(";\n\n")
	}

	if err := e.writeClass(&sb, c, ""); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func (e *JavaEncoder) writeClass(sb *strings.Builder, c *java.Class, indent string) error {
	header, err := e.patterns.Format(c)
	if err != nil {
		return fmt.Errorf("class %s: %w", c.FullName(), err)
	}
	sb.WriteString(indent)
	sb.WriteString(header)
	sb.WriteString(" {\n")

	inner := indent + "    "
	prev := java.ElementKind("")
	for _, el := range c.Members() {
		if prev != "" && !(prev == java.ElementField && el.Kind() == java.ElementField) {
			sb.WriteString("\n")
		}
		prev = el.Kind()

		if nested, ok := el.(*java.Class); ok {
			if err := e.writeClass(sb, nested, inner); err != nil {
				return err
			}
			continue
		}
		if err := e.writeMember(sb, c, el, inner); err != nil {
			return err
		}
	}

	sb.WriteString(indent)
	sb.WriteString("}\n")
	return nil
}

func (e *JavaEncoder) writeMember(sb *strings.Builder, c *java.Class, el java.Element, indent string) error {
	text, err := e.patterns.Format(el)
	if err != nil {
		return fmt.Errorf("%s in %s: %w", el.Kind(), c.FullName(), err)
	}
	sb.WriteString(indent)
	sb.WriteString(text)

	switch m := el.(type) {
	case *java.Field:
		sb.WriteString(";\n")
	case *java.Initializer:
		if text != "" {
			sb.WriteString(" ")
		}
		sb.WriteString("{ }\n")
	case *java.Method:
		if hasBody(c, m) {
			sb.WriteString(" { }\n")
		} else {
			sb.WriteString(";\n")
		}
	default:
		sb.WriteString(" { }\n")
	}
	return nil
}

func hasBody(c *java.Class, m *java.Method) bool {
	mods := m.Modifiers
	if mods.Has(java.ModAbstract) || mods.Has(java.ModNative) {
		return false
	}
	if c.IsInterface() {
		return mods.Has(java.ModDefault) || mods.Has(java.ModStatic) || mods.Has(java.ModPrivate)
	}
	return true
}
