package format

import (
	"strings"

	"github.com/dhamidi/elfmt/java"
)

func renderSimple(sb *strings.Builder, tag SimpleTag, el java.Element) error {
	value, ok := simpleValue(tag.Kind, el)
	if !ok {
		return incompatible(tag.Kind, el)
	}
	if value == "" {
		return nil
	}
	sb.WriteString(tag.Prefix)
	sb.WriteString(value)
	sb.WriteString(tag.Suffix)
	return nil
}

func renderArray(sb *strings.Builder, tag ArrayTag, el java.Element) error {
	items, ok := arrayValues(tag.Kind, el)
	if !ok {
		return incompatible(tag.Kind, el)
	}
	if len(items) == 0 {
		return nil
	}
	sb.WriteString(tag.Prefix)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(tag.Delimiter)
		}
		sb.WriteString(item)
	}
	sb.WriteString(tag.Suffix)
	return nil
}

// simpleValue reads the property behind a simple tag. ok is false when el
// does not have it.
func simpleValue(kind TagKind, el java.Element) (value string, ok bool) {
	switch kind {
	case TagModifiers:
		if e, ok := el.(java.HasModifiers); ok {
			return e.DeclaredModifiers().String(), true
		}
	case TagName:
		if e, ok := el.(java.Named); ok {
			return e.SimpleName(), true
		}
	case TagFullName:
		if e, ok := el.(java.Named); ok {
			return e.FullName(), true
		}
	case TagClassName:
		if e, ok := el.(java.Nested); ok {
			return e.ClassName(), true
		}
	case TagType:
		if e, ok := el.(java.HasType); ok {
			return e.DeclaredType().String(), true
		}
	case TagReturn:
		if e, ok := el.(java.HasReturnType); ok {
			return e.DeclaredReturnType().String(), true
		}
	case TagSuperclass:
		if e, ok := el.(java.HasSuperclass); ok {
			return e.DeclaredSuperclass(), true
		}
	case TagStatic:
		if e, ok := el.(java.HasStatic); ok {
			if e.DeclaredStatic() {
				return "static", true
			}
			return "", true
		}
	}
	return "", false
}

// arrayValues renders the items behind an array tag.
func arrayValues(kind TagKind, el java.Element) (items []string, ok bool) {
	switch kind {
	case TagParameterTypes, TagParameters:
		e, ok := el.(java.HasParameters)
		if !ok {
			return nil, false
		}
		params := e.DeclaredParameters()
		items = make([]string, len(params))
		for i, p := range params {
			if kind == TagParameterTypes {
				items[i] = p.TypeString()
			} else {
				items[i] = p.String()
			}
		}
		return items, true
	case TagInterfaces:
		if e, ok := el.(java.HasInterfaces); ok {
			return e.DeclaredInterfaces(), true
		}
	case TagExceptions:
		if e, ok := el.(java.HasExceptions); ok {
			return e.DeclaredExceptions(), true
		}
	}
	return nil, false
}

func supports(kind TagKind, el java.Element) bool {
	if kind.IsArray() {
		_, ok := arrayValues(kind, el)
		return ok
	}
	_, ok := simpleValue(kind, el)
	return ok
}
