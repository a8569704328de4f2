package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/elfmt/java"
)

// LineEncoder writes one tab separated line per element of a class:
// element kind, qualified name and formatted declaration.
type LineEncoder struct {
	w        io.Writer
	patterns Patterns
	class    *java.Class
}

func NewLineEncoder(w io.Writer, patterns Patterns) *LineEncoder {
	return &LineEncoder{w: w, patterns: patterns}
}

func (e *LineEncoder) Encode(class *java.Class) error {
	e.class = class
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	err := e.class.Walk(func(el java.Element) error {
		text, err := e.patterns.Format(el)
		if err != nil {
			return fmt.Errorf("%s %s: %w", el.Kind(), QualifiedName(el), err)
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\n", el.Kind(), QualifiedName(el), text)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

// QualifiedName names any element. Initializers are named after their class
// with a "<clinit>" or "<init>" suffix.
func QualifiedName(el java.Element) string {
	switch e := el.(type) {
	case java.Named:
		return e.FullName()
	case *java.Initializer:
		if e.Class == nil {
			return "-"
		}
		if e.IsStatic {
			return e.Class.FullName() + ".<clinit>"
		}
		return e.Class.FullName() + ".<init>"
	}
	return "-"
}
