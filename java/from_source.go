package java

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"
)

type sourceConfig struct {
	file string
}

type SourceOption func(*sourceConfig)

// WithFile names the file being parsed in error messages.
func WithFile(path string) SourceOption {
	return func(c *sourceConfig) { c.file = path }
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// ClassesFromSource parses a Java compilation unit and returns its top level
// classes. Nested classes hang off their enclosing class.
func ClassesFromSource(source []byte, opts ...SourceOption) ([]*Class, error) {
	return ClassesFromSourceCtx(context.Background(), source, opts...)
}

func ClassesFromSourceCtx(ctx context.Context, source []byte, opts ...SourceOption) ([]*Class, error) {
	cfg := sourceConfig{file: "<source>"}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := sitter.NewParser()
	defer p.Close()
	p.SetLanguage(tsjava.GetLanguage())

	tree, err := p.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("%s: parse: %w", cfg.file, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if pos, ok := firstError(root); ok {
			return nil, fmt.Errorf("%s:%d:%d: syntax error", cfg.file, pos.Row+1, pos.Column+1)
		}
		return nil, fmt.Errorf("%s: syntax error", cfg.file)
	}

	b := &sourceBuilder{src: source}
	var classes []*Class
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "package_declaration":
			b.pkg = b.packageName(child)
		default:
			if c := b.classFromDecl(child); c != nil {
				c.Package = b.pkg
				classes = append(classes, c)
			}
		}
	}
	return classes, nil
}

func firstError(n *sitter.Node) (sitter.Point, bool) {
	if n.IsError() || n.IsMissing() {
		return n.StartPoint(), true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child.HasError() || child.IsMissing() {
			if pos, ok := firstError(child); ok {
				return pos, true
			}
		}
	}
	return sitter.Point{}, false
}

type sourceBuilder struct {
	src []byte
	pkg string
}

func (b *sourceBuilder) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return whitespaceRe.ReplaceAllString(n.Content(b.src), " ")
}

func (b *sourceBuilder) packageName(n *sitter.Node) string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			return b.text(child)
		}
	}
	return ""
}

var classKinds = map[string]ClassKind{
	"class_declaration":           ClassKindClass,
	"interface_declaration":       ClassKindInterface,
	"enum_declaration":            ClassKindEnum,
	"annotation_type_declaration": ClassKindAnnotation,
	"record_declaration":          ClassKindRecord,
}

func (b *sourceBuilder) classFromDecl(n *sitter.Node) *Class {
	kind, ok := classKinds[n.Type()]
	if !ok {
		return nil
	}
	c := &Class{
		Name:      b.text(n.ChildByFieldName("name")),
		ClassKind: kind,
		Modifiers: b.modifiers(n),
		Javadoc:   b.javadoc(n),
	}
	if super := n.ChildByFieldName("superclass"); super != nil && super.NamedChildCount() > 0 {
		c.Superclass = b.text(super.NamedChild(0))
	}
	if ifaces := n.ChildByFieldName("interfaces"); ifaces != nil {
		c.Interfaces = b.typeList(ifaces)
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "extends_interfaces" {
			c.Interfaces = b.typeList(child)
		}
	}
	if body := n.ChildByFieldName("body"); body != nil {
		b.members(c, body)
	}
	return c
}

// typeList collects the types of a super_interfaces or extends_interfaces
// clause.
func (b *sourceBuilder) typeList(n *sitter.Node) []string {
	var types []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "type_list" {
			types = append(types, b.typeList(child)...)
			continue
		}
		types = append(types, b.text(child))
	}
	return types
}

func (b *sourceBuilder) members(c *Class, body *sitter.Node) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		switch child.Type() {
		case "field_declaration", "constant_declaration":
			for _, f := range b.fields(child) {
				c.AddField(f)
			}
		case "method_declaration", "annotation_type_element_declaration":
			c.AddMethod(b.method(child))
		case "constructor_declaration":
			c.AddConstructor(&Constructor{
				Modifiers:  b.modifiers(child),
				Parameters: b.parameters(child.ChildByFieldName("parameters")),
				Exceptions: b.throws(child),
				Javadoc:    b.javadoc(child),
			})
		case "static_initializer":
			c.AddInitializer(&Initializer{IsStatic: true})
		case "block":
			c.AddInitializer(&Initializer{})
		case "enum_body_declarations":
			b.members(c, child)
		default:
			if inner := b.classFromDecl(child); inner != nil {
				c.AddClass(inner)
			}
		}
	}
}

func (b *sourceBuilder) fields(n *sitter.Node) []*Field {
	mods := b.modifiers(n)
	doc := b.javadoc(n)
	base := ParseType(b.text(n.ChildByFieldName("type")))

	var fields []*Field
	for i := 0; i < int(n.NamedChildCount()); i++ {
		decl := n.NamedChild(i)
		if decl.Type() != "variable_declarator" {
			continue
		}
		t := base
		t.ArrayDepth += dimensions(decl.ChildByFieldName("dimensions"), b.src)
		fields = append(fields, &Field{
			Name:      b.text(decl.ChildByFieldName("name")),
			Modifiers: mods,
			Type:      t,
			Javadoc:   doc,
		})
	}
	return fields
}

func (b *sourceBuilder) method(n *sitter.Node) *Method {
	ret := ParseType(b.text(n.ChildByFieldName("type")))
	ret.ArrayDepth += dimensions(n.ChildByFieldName("dimensions"), b.src)
	return &Method{
		Name:       b.text(n.ChildByFieldName("name")),
		Modifiers:  b.modifiers(n),
		ReturnType: ret,
		Parameters: b.parameters(n.ChildByFieldName("parameters")),
		Exceptions: b.throws(n),
		Javadoc:    b.javadoc(n),
	}
}

func (b *sourceBuilder) parameters(n *sitter.Node) []Parameter {
	if n == nil {
		return nil
	}
	var params []Parameter
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "formal_parameter":
			t := ParseType(b.text(child.ChildByFieldName("type")))
			t.ArrayDepth += dimensions(child.ChildByFieldName("dimensions"), b.src)
			params = append(params, Parameter{
				Name:    b.text(child.ChildByFieldName("name")),
				Type:    t,
				IsFinal: b.modifiers(child).IsFinal(),
			})
		case "spread_parameter":
			params = append(params, b.spreadParameter(child))
		}
	}
	return params
}

// spreadParameter reads a varargs parameter. Its type has no field name in
// the grammar, so it is the first named child that is neither the modifiers
// nor the declarator.
func (b *sourceBuilder) spreadParameter(n *sitter.Node) Parameter {
	p := Parameter{IsVarargs: true, IsFinal: b.modifiers(n).IsFinal()}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "modifiers", "marker_annotation", "annotation":
		case "variable_declarator":
			p.Name = b.text(child.ChildByFieldName("name"))
		default:
			if p.Type.IsZero() {
				p.Type = ParseType(b.text(child))
			}
		}
	}
	p.Type.ArrayDepth++
	return p
}

func (b *sourceBuilder) throws(n *sitter.Node) []string {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "throws" {
			continue
		}
		var exceptions []string
		for j := 0; j < int(child.NamedChildCount()); j++ {
			exceptions = append(exceptions, b.text(child.NamedChild(j)))
		}
		return exceptions
	}
	return nil
}

// modifiers reads the modifier keywords of a declaration, skipping
// annotations.
func (b *sourceBuilder) modifiers(n *sitter.Node) Modifiers {
	var mods Modifiers
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			if mod, ok := ParseModifier(child.Child(j).Content(b.src)); ok {
				mods |= mod
			}
		}
	}
	return mods
}

// javadoc returns the doc comment directly preceding a declaration.
func (b *sourceBuilder) javadoc(n *sitter.Node) string {
	prev := n.PrevNamedSibling()
	if prev == nil {
		return ""
	}
	switch prev.Type() {
	case "block_comment", "comment":
	default:
		return ""
	}
	text := prev.Content(b.src)
	if !strings.HasPrefix(text, "/**") {
		return ""
	}
	return text
}

func dimensions(n *sitter.Node, src []byte) int {
	if n == nil {
		return 0
	}
	return strings.Count(n.Content(src), "[")
}
