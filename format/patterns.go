package format

import (
	"fmt"

	"github.com/dhamidi/elfmt/java"
)

const (
	DefaultClassPattern       = `{m,," "}class {n}{s, extends ,}{i, implements ,}`
	DefaultInterfacePattern   = `{m,," "}interface {n}{i, extends ,}`
	DefaultEnumPattern        = `{m,," "}enum {n}{i, implements ,}`
	DefaultAnnotationPattern  = `{m,," "}@interface {n}`
	DefaultRecordPattern      = `{m,," "}record {n}{i, implements ,}`
	DefaultFieldPattern       = `{m,," "}{t} {n}`
	DefaultMethodPattern      = `{m,," "}{r} {n}({a}){e, throws ,}`
	DefaultConstructorPattern = `{m,," "}{n}({a}){e, throws ,}`
	DefaultInitializerPattern = `{c}`
)

// Patterns holds the formatter used for each kind of declaration.
type Patterns struct {
	Class       *Formatter
	Interface   *Formatter
	Enum        *Formatter
	Annotation  *Formatter
	Record      *Formatter
	Field       *Formatter
	Method      *Formatter
	Constructor *Formatter
	Initializer *Formatter
}

func DefaultPatterns() Patterns {
	return Patterns{
		Class:       MustNew(DefaultClassPattern),
		Interface:   MustNew(DefaultInterfacePattern),
		Enum:        MustNew(DefaultEnumPattern),
		Annotation:  MustNew(DefaultAnnotationPattern),
		Record:      MustNew(DefaultRecordPattern),
		Field:       MustNew(DefaultFieldPattern),
		Method:      MustNew(DefaultMethodPattern),
		Constructor: MustNew(DefaultConstructorPattern),
		Initializer: MustNew(DefaultInitializerPattern),
	}
}

// For returns the formatter for el, falling back to the default pattern
// when the corresponding field is nil.
func (p Patterns) For(el java.Element) (*Formatter, error) {
	var f *Formatter
	var def string
	switch e := element(el).(type) {
	case *java.Class:
		switch e.ClassKind {
		case java.ClassKindInterface:
			f, def = p.Interface, DefaultInterfacePattern
		case java.ClassKindEnum:
			f, def = p.Enum, DefaultEnumPattern
		case java.ClassKindAnnotation:
			f, def = p.Annotation, DefaultAnnotationPattern
		case java.ClassKindRecord:
			f, def = p.Record, DefaultRecordPattern
		default:
			f, def = p.Class, DefaultClassPattern
		}
	case *java.Field:
		f, def = p.Field, DefaultFieldPattern
	case *java.Method:
		f, def = p.Method, DefaultMethodPattern
	case *java.Constructor:
		f, def = p.Constructor, DefaultConstructorPattern
	case *java.Initializer:
		f, def = p.Initializer, DefaultInitializerPattern
	default:
		return nil, fmt.Errorf("no pattern for %T", el)
	}
	if f == nil {
		f = MustNew(def)
	}
	return f, nil
}

// Format renders el with the formatter For selects.
func (p Patterns) Format(el java.Element) (string, error) {
	f, err := p.For(el)
	if err != nil {
		return "", err
	}
	return f.Format(el)
}
