package classfile

import (
	"fmt"
	"strings"
)

// FieldType is a decoded type descriptor. Name is a primitive keyword or
// a class name in source form.
type FieldType struct {
	Name       string
	ArrayDepth int
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
	'V': "void",
}

// ParseFieldDescriptor decodes a field descriptor such as "[Ljava/lang/String;".
func ParseFieldDescriptor(desc string) (FieldType, error) {
	ft, n, err := parseFieldType(desc, 0)
	if err != nil {
		return FieldType{}, err
	}
	if n != len(desc) {
		return FieldType{}, fmt.Errorf("descriptor %q: trailing characters", desc)
	}
	return ft, nil
}

// ParseMethodDescriptor decodes a method descriptor such as "(I[C)V" into
// its parameter types and return type. A void return is named "void".
func ParseMethodDescriptor(desc string) (params []FieldType, ret FieldType, err error) {
	if !strings.HasPrefix(desc, "(") {
		return nil, FieldType{}, fmt.Errorf("descriptor %q: missing '('", desc)
	}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		ft, next, err := parseFieldType(desc, i)
		if err != nil {
			return nil, FieldType{}, err
		}
		params = append(params, ft)
		i = next
	}
	if i >= len(desc) {
		return nil, FieldType{}, fmt.Errorf("descriptor %q: missing ')'", desc)
	}
	ret, err = ParseFieldDescriptor(desc[i+1:])
	if err != nil {
		return nil, FieldType{}, err
	}
	return params, ret, nil
}

func parseFieldType(desc string, i int) (FieldType, int, error) {
	var ft FieldType
	for i < len(desc) && desc[i] == '[' {
		ft.ArrayDepth++
		i++
	}
	if i >= len(desc) {
		return FieldType{}, 0, fmt.Errorf("descriptor %q: unexpected end", desc)
	}
	if desc[i] == 'L' {
		end := strings.IndexByte(desc[i:], ';')
		if end < 0 {
			return FieldType{}, 0, fmt.Errorf("descriptor %q: unterminated class name", desc)
		}
		ft.Name = SourceName(desc[i+1 : i+end])
		return ft, i + end + 1, nil
	}
	name, ok := baseTypes[desc[i]]
	if !ok {
		return FieldType{}, 0, fmt.Errorf("descriptor %q: unknown type %q", desc, desc[i])
	}
	ft.Name = name
	return ft, i + 1, nil
}
