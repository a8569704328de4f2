package java

type Field struct {
	Name      string
	Modifiers Modifiers
	Type      Type
	Javadoc   string
	Class     *Class
}

func (f *Field) Kind() ElementKind            { return ElementField }
func (f *Field) SimpleName() string           { return f.Name }
func (f *Field) FullName() string             { return memberFullName(f.Class, f.Name) }
func (f *Field) ClassName() string            { return memberClassName(f.Class) }
func (f *Field) DeclaredModifiers() Modifiers { return f.Modifiers }
func (f *Field) DeclaredType() Type           { return f.Type }

// Initializer is a static or instance initializer block. Only its
// staticness is modelled; the body is not.
type Initializer struct {
	IsStatic bool
	Class    *Class
}

func (i *Initializer) Kind() ElementKind    { return ElementInitializer }
func (i *Initializer) ClassName() string    { return memberClassName(i.Class) }
func (i *Initializer) DeclaredStatic() bool { return i.IsStatic }
