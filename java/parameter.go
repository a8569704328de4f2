package java

import "strings"

type Parameter struct {
	Name      string
	Type      Type
	IsFinal   bool
	IsVarargs bool
}

// TypeString renders the parameter type, using "..." for a varargs parameter.
func (p Parameter) TypeString() string {
	if p.IsVarargs {
		return p.Type.ElementType().String() + "..."
	}
	return p.Type.String()
}

func (p Parameter) String() string {
	var sb strings.Builder
	if p.IsFinal {
		sb.WriteString("final ")
	}
	sb.WriteString(p.TypeString())
	if p.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(p.Name)
	}
	return sb.String()
}
