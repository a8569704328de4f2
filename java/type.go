package java

import "strings"

// Type is a type reference as written in a declaration. Name keeps any type
// arguments, e.g. "java.util.List<String>".
type Type struct {
	Name       string
	ArrayDepth int
}

// ParseType splits trailing array brackets off a written type.
func ParseType(text string) Type {
	t := Type{Name: strings.TrimSpace(text)}
	for {
		trimmed := strings.TrimSpace(strings.TrimSuffix(t.Name, "[]"))
		if trimmed == t.Name || trimmed == "" {
			break
		}
		t.Name = trimmed
		t.ArrayDepth++
	}
	return t
}

func (t Type) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (t Type) IsZero() bool {
	return t.Name == ""
}

func (t Type) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	switch t.Name {
	case "boolean", "byte", "char", "short", "int", "long", "float", "double":
		return true
	}
	return false
}

func (t Type) IsArray() bool {
	return t.ArrayDepth > 0
}

func (t Type) IsVoid() bool {
	return t.Name == "void" && t.ArrayDepth == 0
}

func (t Type) ElementType() Type {
	if t.ArrayDepth == 0 {
		return t
	}
	return Type{Name: t.Name, ArrayDepth: t.ArrayDepth - 1}
}
