package java

import (
	"fmt"
	"strings"

	"github.com/dhamidi/elfmt/classfile"
)

const (
	classMods  = ModPublic | ModProtected | ModPrivate | ModStatic | ModFinal | ModAbstract
	fieldMods  = ModPublic | ModProtected | ModPrivate | ModStatic | ModFinal | ModVolatile | ModTransient
	methodMods = ModPublic | ModProtected | ModPrivate | ModStatic | ModFinal | ModSynchronized |
		ModNative | ModAbstract | ModStrict
)

// ClassesFromClassfile loads the declarations of a compiled class. Local,
// anonymous and synthetic classes yield no class. Member classes are named
// by their binary name, e.g. "Map$Entry", until NestClasses places them
// inside their outer class.
func ClassesFromClassfile(data []byte) ([]*Class, error) {
	cf, err := classfile.Parse(data)
	if err != nil {
		return nil, err
	}
	if cf.Access.Has(classfile.AccSynthetic) || cf.Access.Has(classfile.AccModule) {
		return nil, nil
	}

	binary := classfile.SourceName(cf.Name)
	c := &Class{ClassKind: classKindOf(cf), Modifiers: Modifiers(cf.Access) & classMods}
	c.Package, c.Name = splitBinaryName(binary)

	if ic, ok := cf.Enclosing(); ok {
		if ic.Outer == "" || ic.Name == "" {
			return nil, nil
		}
		c.Modifiers = Modifiers(ic.Access) & classMods
		// Member interfaces, enums, records and annotations are implicitly static.
		if c.ClassKind != ClassKindClass {
			c.Modifiers &^= ModStatic
		}
	}
	if c.ClassKind == ClassKindInterface || c.ClassKind == ClassKindAnnotation {
		c.Modifiers &^= ModAbstract
	}
	if c.ClassKind == ClassKindEnum || c.ClassKind == ClassKindRecord {
		c.Modifiers &^= ModFinal
	}

	switch cf.Super {
	case "", "java/lang/Object", "java/lang/Enum", "java/lang/Record":
	default:
		c.Superclass = sourceTypeName(cf.Super)
	}
	for _, iface := range cf.Interfaces {
		if iface == "java/lang/annotation/Annotation" && c.ClassKind == ClassKindAnnotation {
			continue
		}
		c.Interfaces = append(c.Interfaces, sourceTypeName(iface))
	}

	for _, f := range cf.Fields {
		if f.Access.Has(classfile.AccSynthetic) {
			continue
		}
		ft, err := classfile.ParseFieldDescriptor(f.Descriptor)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", binary, f.Name, err)
		}
		mods := Modifiers(f.Access) & fieldMods
		if c.IsInterface() {
			// Interface fields are implicitly public static final.
			mods &^= ModPublic | ModStatic | ModFinal
		}
		c.AddField(&Field{Name: f.Name, Modifiers: mods, Type: typeOf(ft)})
	}

	for _, m := range cf.Methods {
		if m.Access.Has(classfile.AccSynthetic) || m.Access.Has(classfile.AccBridge) {
			continue
		}
		if err := addMember(c, m); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", binary, m.Name, err)
		}
	}
	return []*Class{c}, nil
}

func addMember(c *Class, m classfile.Member) error {
	if m.Name == "<clinit>" {
		c.AddInitializer(&Initializer{IsStatic: true})
		return nil
	}

	paramTypes, ret, err := classfile.ParseMethodDescriptor(m.Descriptor)
	if err != nil {
		return err
	}
	params := parametersOf(m, paramTypes)
	var throws []string
	for _, e := range m.Exceptions {
		throws = append(throws, sourceTypeName(e))
	}
	mods := Modifiers(m.Access) & methodMods

	if m.Name == "<init>" {
		c.AddConstructor(&Constructor{Modifiers: mods, Parameters: params, Exceptions: throws})
		return nil
	}

	if c.ClassKind == ClassKindInterface || c.ClassKind == ClassKindAnnotation {
		// Interface methods are implicitly public, and abstract unless they
		// have a body.
		switch {
		case mods&ModAbstract != 0:
			mods &^= ModPublic | ModAbstract
		case mods&(ModStatic|ModPrivate) == 0:
			mods = mods&^ModPublic | ModDefault
		default:
			mods &^= ModPublic
		}
	}
	c.AddMethod(&Method{
		Name:       m.Name,
		Modifiers:  mods,
		ReturnType: typeOf(ret),
		Parameters: params,
		Exceptions: throws,
	})
	return nil
}

// parametersOf pairs descriptor types with the names from the
// MethodParameters attribute, dropping compiler-generated parameters such
// as the outer instance of an inner class constructor.
func parametersOf(m classfile.Member, types []classfile.FieldType) []Parameter {
	var params []Parameter
	named := len(m.Parameters) == len(types)
	for i, ft := range types {
		p := Parameter{Type: typeOf(ft)}
		if named {
			mp := m.Parameters[i]
			if mp.Access.Has(classfile.AccSynthetic) || mp.Access.Has(classfile.AccMandated) {
				continue
			}
			p.Name = mp.Name
			p.IsFinal = mp.Access.Has(classfile.AccFinal)
		}
		params = append(params, p)
	}
	if len(params) > 0 && m.Access.Has(classfile.AccVarargs) {
		params[len(params)-1].IsVarargs = true
	}
	return params
}

func classKindOf(cf *classfile.ClassFile) ClassKind {
	switch {
	case cf.Access.Has(classfile.AccAnnotation):
		return ClassKindAnnotation
	case cf.Access.Has(classfile.AccInterface):
		return ClassKindInterface
	case cf.Access.Has(classfile.AccEnum):
		return ClassKindEnum
	case cf.IsRecord:
		return ClassKindRecord
	}
	return ClassKindClass
}

func typeOf(ft classfile.FieldType) Type {
	return Type{Name: strings.ReplaceAll(ft.Name, "$", "."), ArrayDepth: ft.ArrayDepth}
}

func sourceTypeName(internal string) string {
	return strings.ReplaceAll(classfile.SourceName(internal), "$", ".")
}

func splitBinaryName(name string) (pkg, simple string) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

// NestClasses moves classes named by a binary name such as "Outer$Inner"
// into their outer class when it is among classes, renaming them to their
// simple name. Members of an interface lose their implicit public and
// static modifiers. The remaining top-level classes are returned in order.
func NestClasses(classes []*Class) []*Class {
	byBinary := make(map[string]*Class, len(classes))
	for _, c := range classes {
		byBinary[c.Package+"."+c.Name] = c
	}

	var top []*Class
	for _, c := range classes {
		if outer, i := outerOf(c, byBinary); outer != nil {
			c.Name = c.Name[i+1:]
			if outer.IsInterface() {
				c.Modifiers &^= ModPublic | ModStatic
			}
			outer.AddClass(c)
			continue
		}
		top = append(top, c)
	}
	return top
}

// outerOf finds the outer class of c and the index of the '$' separating
// the outer name from the simple name.
func outerOf(c *Class, byBinary map[string]*Class) (*Class, int) {
	if c.Outer != nil {
		return nil, 0
	}
	i := strings.LastIndexByte(c.Name, '$')
	if i <= 0 || i == len(c.Name)-1 {
		return nil, 0
	}
	outer := byBinary[c.Package+"."+c.Name[:i]]
	if outer == c {
		return nil, 0
	}
	return outer, i
}
