// Package format renders Java declarations from element patterns such as
// "{m,,\" \"}class {n}{s, extends ,}". A Formatter is compiled once and can
// then format any number of elements.
package format

import (
	"strings"

	"github.com/dhamidi/elfmt/java"
)

// Formatter is a compiled element pattern. It is immutable and safe for
// concurrent use.
type Formatter struct {
	pattern string
	segs    []Segment
}

// New compiles pattern. The error is a *CompileError.
func New(pattern string) (*Formatter, error) {
	segs, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Formatter{pattern: pattern, segs: segs}, nil
}

// MustNew is like New but panics if the pattern is malformed.
func MustNew(pattern string) *Formatter {
	f, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Formatter) Pattern() string { return f.pattern }

func (f *Formatter) String() string { return f.pattern }

// Segments returns a copy of the compiled pattern.
func (f *Formatter) Segments() []Segment {
	return append([]Segment(nil), f.segs...)
}

// Format renders el. A tag whose property el does not have yields a
// *FormatError, as does any tag applied to a nil element.
func (f *Formatter) Format(el java.Element) (string, error) {
	el = element(el)
	var sb strings.Builder
	for _, seg := range f.segs {
		var err error
		switch s := seg.(type) {
		case Literal:
			sb.WriteString(s.Text)
		case SimpleTag:
			err = renderSimple(&sb, s, el)
		case ArrayTag:
			err = renderArray(&sb, s, el)
		}
		if err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// Supports reports whether el has every property the pattern reads, i.e.
// whether Format can succeed.
func (f *Formatter) Supports(el java.Element) bool {
	el = element(el)
	for _, seg := range f.segs {
		var kind TagKind
		switch s := seg.(type) {
		case SimpleTag:
			kind = s.Kind
		case ArrayTag:
			kind = s.Kind
		default:
			continue
		}
		if !supports(kind, el) {
			return false
		}
	}
	return true
}

// DependsOnProperty reports whether the output of Format may change when
// the named element property changes.
func (f *Formatter) DependsOnProperty(name string) bool {
	for _, p := range f.Properties() {
		if string(p) == name {
			return true
		}
	}
	return false
}

// Properties lists the element properties the pattern reads, in pattern
// order and without duplicates.
func (f *Formatter) Properties() []java.Property {
	var props []java.Property
	seen := map[java.Property]bool{}
	for _, seg := range f.segs {
		var p java.Property
		switch s := seg.(type) {
		case SimpleTag:
			p = s.Kind.Property()
		case ArrayTag:
			p = s.Kind.Property()
		default:
			continue
		}
		if !seen[p] {
			seen[p] = true
			props = append(props, p)
		}
	}
	return props
}

// element turns a typed nil pointer into a nil Element.
func element(el java.Element) java.Element {
	switch e := el.(type) {
	case *java.Class:
		if e == nil {
			return nil
		}
	case *java.Field:
		if e == nil {
			return nil
		}
	case *java.Method:
		if e == nil {
			return nil
		}
	case *java.Constructor:
		if e == nil {
			return nil
		}
	case *java.Initializer:
		if e == nil {
			return nil
		}
	}
	return el
}
