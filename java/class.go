package java

import "strings"

type Class struct {
	Name         string
	Package      string
	ClassKind    ClassKind
	Modifiers    Modifiers
	Superclass   string
	Interfaces   []string
	Javadoc      string
	Outer        *Class
	Fields       []*Field
	Methods      []*Method
	Constructors []*Constructor
	Initializers []*Initializer
	Classes      []*Class
}

func (c *Class) Kind() ElementKind { return ElementClass }

func (c *Class) SimpleName() string { return c.Name }

// ClassName returns the name qualified by enclosing classes but not by the
// package, e.g. "Outer.Inner".
func (c *Class) ClassName() string {
	if c.Outer == nil {
		return c.Name
	}
	return c.Outer.ClassName() + "." + c.Name
}

func (c *Class) FullName() string {
	pkg := c.PackageName()
	if pkg == "" {
		return c.ClassName()
	}
	return pkg + "." + c.ClassName()
}

// PackageName returns the package of the outermost class.
func (c *Class) PackageName() string {
	for c.Outer != nil {
		c = c.Outer
	}
	return c.Package
}

func (c *Class) DeclaredModifiers() Modifiers { return c.Modifiers }
func (c *Class) DeclaredSuperclass() string   { return c.Superclass }
func (c *Class) DeclaredInterfaces() []string { return c.Interfaces }

func (c *Class) IsInterface() bool {
	return c.ClassKind == ClassKindInterface || c.ClassKind == ClassKindAnnotation
}

func (c *Class) AddField(f *Field) {
	f.Class = c
	c.Fields = append(c.Fields, f)
}

func (c *Class) AddMethod(m *Method) {
	m.Class = c
	c.Methods = append(c.Methods, m)
}

func (c *Class) AddConstructor(ctor *Constructor) {
	ctor.Class = c
	c.Constructors = append(c.Constructors, ctor)
}

func (c *Class) AddInitializer(init *Initializer) {
	init.Class = c
	c.Initializers = append(c.Initializers, init)
}

func (c *Class) AddClass(inner *Class) {
	inner.Outer = c
	c.Classes = append(c.Classes, inner)
}

// RemoveField detaches the named field. It reports whether a field was removed.
func (c *Class) RemoveField(name string) bool {
	for i, f := range c.Fields {
		if f.Name == name {
			f.Class = nil
			c.Fields = append(c.Fields[:i:i], c.Fields[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Class) RemoveMethod(m *Method) bool {
	for i, candidate := range c.Methods {
		if candidate == m {
			m.Class = nil
			c.Methods = append(c.Methods[:i:i], c.Methods[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Class) Field(name string) *Field {
	for _, f := range c.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Method finds a method by name and parameter types. With no parameter
// types given, the first method of that name is returned.
func (c *Class) Method(name string, paramTypes ...string) *Method {
	for _, m := range c.Methods {
		if m.Name != name {
			continue
		}
		if len(paramTypes) == 0 || sameParameterTypes(m.Parameters, paramTypes) {
			return m
		}
	}
	return nil
}

func (c *Class) Constructor(paramTypes ...string) *Constructor {
	for _, ctor := range c.Constructors {
		if sameParameterTypes(ctor.Parameters, paramTypes) {
			return ctor
		}
	}
	return nil
}

// Class finds a member class by simple name.
func (c *Class) Class(name string) *Class {
	for _, inner := range c.Classes {
		if inner.Name == name {
			return inner
		}
	}
	return nil
}

// Members returns the direct members of c: fields, initializers,
// constructors, methods and member classes, in that order.
func (c *Class) Members() []Element {
	members := make([]Element, 0, len(c.Fields)+len(c.Initializers)+len(c.Constructors)+len(c.Methods)+len(c.Classes))
	for _, f := range c.Fields {
		members = append(members, f)
	}
	for _, init := range c.Initializers {
		members = append(members, init)
	}
	for _, ctor := range c.Constructors {
		members = append(members, ctor)
	}
	for _, m := range c.Methods {
		members = append(members, m)
	}
	for _, inner := range c.Classes {
		members = append(members, inner)
	}
	return members
}

// Walk calls fn for c and then for every element declared inside it,
// depth first. Walking stops at the first error.
func (c *Class) Walk(fn func(Element) error) error {
	if err := fn(c); err != nil {
		return err
	}
	for _, el := range c.Members() {
		if inner, ok := el.(*Class); ok {
			if err := inner.Walk(fn); err != nil {
				return err
			}
			continue
		}
		if err := fn(el); err != nil {
			return err
		}
	}
	return nil
}

func sameParameterTypes(params []Parameter, types []string) bool {
	if len(params) != len(types) {
		return false
	}
	for i, p := range params {
		want := strings.ReplaceAll(types[i], " ", "")
		if strings.ReplaceAll(p.Type.String(), " ", "") != want &&
			strings.ReplaceAll(p.TypeString(), " ", "") != want {
			return false
		}
	}
	return true
}

func memberFullName(c *Class, name string) string {
	if c == nil {
		return name
	}
	return c.FullName() + "." + name
}

func memberClassName(c *Class) string {
	if c == nil {
		return ""
	}
	return c.ClassName()
}
