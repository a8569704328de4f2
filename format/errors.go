package format

import (
	"errors"
	"fmt"

	"github.com/dhamidi/elfmt/java"
)

// ErrIncompatible is wrapped by every FormatError.
var ErrIncompatible = errors.New("tag not supported by element")

// CompileError reports a malformed pattern.
type CompileError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("malformed pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

// FormatError reports a tag applied to an element that lacks the property
// the tag reads, e.g. {r} on a field.
type FormatError struct {
	Tag     TagKind
	Element java.ElementKind
}

func (e *FormatError) Error() string {
	el := string(e.Element)
	if el == "" {
		el = "nil element"
	}
	return fmt.Sprintf("tag %s needs %s, which %s does not have", e.Tag, tags[e.Tag].needs, el)
}

func (e *FormatError) Unwrap() error {
	return ErrIncompatible
}

func incompatible(tag TagKind, el java.Element) error {
	fe := &FormatError{Tag: tag}
	if el != nil {
		fe.Element = el.Kind()
	}
	return fe
}
