// Package java models the declarations of Java source code: classes and
// their fields, methods, constructors and initializers.
//
// Elements are plain data. Formatting code reads them through the small
// capability interfaces declared here, so that each element variant only
// answers for the properties it actually has.
package java

type ElementKind string

const (
	ElementClass       ElementKind = "class"
	ElementMethod      ElementKind = "method"
	ElementConstructor ElementKind = "constructor"
	ElementField       ElementKind = "field"
	ElementInitializer ElementKind = "initializer"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

func (k ClassKind) valid() bool {
	switch k {
	case ClassKindClass, ClassKindInterface, ClassKindEnum, ClassKindAnnotation, ClassKindRecord:
		return true
	}
	return false
}

// Property names an element property. Formatters report which properties
// their output depends on using these names.
type Property string

const (
	PropName       Property = "name"
	PropModifiers  Property = "modifiers"
	PropType       Property = "type"
	PropReturn     Property = "return"
	PropSuperclass Property = "superclass"
	PropParameters Property = "parameters"
	PropInterfaces Property = "interfaces"
	PropExceptions Property = "exceptions"
	PropStatic     Property = "static"
)

type Element interface {
	Kind() ElementKind
}

type Named interface {
	Element
	SimpleName() string
	FullName() string
}

// Nested is implemented by elements that know the name of their class
// including enclosing classes, e.g. "Map.Entry".
type Nested interface {
	Element
	ClassName() string
}

type HasModifiers interface {
	Element
	DeclaredModifiers() Modifiers
}

type HasType interface {
	Element
	DeclaredType() Type
}

type HasReturnType interface {
	Element
	DeclaredReturnType() Type
}

type HasSuperclass interface {
	Element
	DeclaredSuperclass() string
}

type HasInterfaces interface {
	Element
	DeclaredInterfaces() []string
}

type HasParameters interface {
	Element
	DeclaredParameters() []Parameter
}

type HasExceptions interface {
	Element
	DeclaredExceptions() []string
}

type HasStatic interface {
	Element
	DeclaredStatic() bool
}
