package java

type Method struct {
	Name       string
	Modifiers  Modifiers
	ReturnType Type
	Parameters []Parameter
	Exceptions []string
	Javadoc    string
	Class      *Class
}

func (m *Method) Kind() ElementKind               { return ElementMethod }
func (m *Method) SimpleName() string              { return m.Name }
func (m *Method) FullName() string                { return memberFullName(m.Class, m.Name) }
func (m *Method) ClassName() string               { return memberClassName(m.Class) }
func (m *Method) DeclaredModifiers() Modifiers    { return m.Modifiers }
func (m *Method) DeclaredReturnType() Type        { return m.ReturnType }
func (m *Method) DeclaredParameters() []Parameter { return m.Parameters }
func (m *Method) DeclaredExceptions() []string    { return m.Exceptions }

func (m *Method) IsVarargs() bool {
	n := len(m.Parameters)
	return n > 0 && m.Parameters[n-1].IsVarargs
}

// Constructor has no name of its own; it is named after its class.
type Constructor struct {
	Modifiers  Modifiers
	Parameters []Parameter
	Exceptions []string
	Javadoc    string
	Class      *Class
}

func (c *Constructor) Kind() ElementKind { return ElementConstructor }

func (c *Constructor) SimpleName() string {
	if c.Class == nil {
		return ""
	}
	return c.Class.Name
}

func (c *Constructor) FullName() string {
	if c.Class == nil {
		return ""
	}
	return c.Class.FullName()
}

func (c *Constructor) ClassName() string               { return memberClassName(c.Class) }
func (c *Constructor) DeclaredModifiers() Modifiers    { return c.Modifiers }
func (c *Constructor) DeclaredParameters() []Parameter { return c.Parameters }
func (c *Constructor) DeclaredExceptions() []string    { return c.Exceptions }
