// Package classfile reads the declaration-level parts of JVM class files:
// the class header, fields, methods and the attributes that carry names
// and thrown exceptions. Bytecode and annotations are skipped.
package classfile

import (
	"errors"
	"strings"
)

const Magic = 0xCAFEBABE

var ErrNotClassFile = errors.New("not a class file")

type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSynchronized AccessFlags = 0x0020
	AccVolatile     AccessFlags = 0x0040
	AccBridge       AccessFlags = 0x0040
	AccTransient    AccessFlags = 0x0080
	AccVarargs      AccessFlags = 0x0080
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccStrict       AccessFlags = 0x0800
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccMandated     AccessFlags = 0x8000
	AccModule       AccessFlags = 0x8000
)

func (f AccessFlags) Has(flag AccessFlags) bool { return f&flag != 0 }

// ClassFile holds a parsed class with every constant pool reference
// already resolved to its string value. Class names are in internal form,
// e.g. "java/util/Map$Entry".
type ClassFile struct {
	MajorVersion uint16
	MinorVersion uint16
	Access       AccessFlags
	Name         string
	Super        string
	Interfaces   []string
	Fields       []Member
	Methods      []Member
	InnerClasses []InnerClass
	IsRecord     bool
}

// Member is a field or a method.
type Member struct {
	Access     AccessFlags
	Name       string
	Descriptor string
	// Exceptions lists the declared thrown types of a method.
	Exceptions []string
	// Parameters is only present when the class was compiled with
	// -parameters or the method is synthesized with mandated parameters.
	Parameters []MethodParameter
}

type MethodParameter struct {
	Name   string
	Access AccessFlags
}

// InnerClass is one entry of the InnerClasses attribute. Outer and Name
// are empty for local and anonymous classes.
type InnerClass struct {
	Inner  string
	Outer  string
	Name   string
	Access AccessFlags
}

// Enclosing returns the InnerClasses entry describing this class itself,
// if the class is nested.
func (cf *ClassFile) Enclosing() (InnerClass, bool) {
	for _, ic := range cf.InnerClasses {
		if ic.Inner == cf.Name {
			return ic, true
		}
	}
	return InnerClass{}, false
}

// SourceName converts an internal name to its dotted source form. Nested
// class separators are kept: "java/util/Map$Entry" becomes "java.util.Map$Entry".
func SourceName(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}
