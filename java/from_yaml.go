package java

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// A descriptor document describes classes without Java source. JSON
// documents are accepted as well, being valid YAML.
//
//	package: com.example
//	classes:
//	  - name: Greeter
//	    modifiers: [public]
//	    implements: [java.lang.Runnable]
//	    methods:
//	      - name: greet
//	        returns: String
//	        parameters: [{name: who, type: String}]
type descriptorFile struct {
	Package string            `yaml:"package"`
	Classes []classDescriptor `yaml:"classes"`
}

type classDescriptor struct {
	Name         string                  `yaml:"name"`
	Kind         string                  `yaml:"kind"`
	Modifiers    []string                `yaml:"modifiers"`
	Extends      string                  `yaml:"extends"`
	Implements   []string                `yaml:"implements"`
	Javadoc      string                  `yaml:"javadoc"`
	Fields       []fieldDescriptor       `yaml:"fields"`
	Methods      []methodDescriptor      `yaml:"methods"`
	Constructors []methodDescriptor      `yaml:"constructors"`
	Initializers []initializerDescriptor `yaml:"initializers"`
	Classes      []classDescriptor       `yaml:"classes"`
}

type fieldDescriptor struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Modifiers []string `yaml:"modifiers"`
	Javadoc   string   `yaml:"javadoc"`
}

type methodDescriptor struct {
	Name       string                `yaml:"name"`
	Returns    string                `yaml:"returns"`
	Modifiers  []string              `yaml:"modifiers"`
	Parameters []parameterDescriptor `yaml:"parameters"`
	Throws     []string              `yaml:"throws"`
	Javadoc    string                `yaml:"javadoc"`
}

type parameterDescriptor struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Final   bool   `yaml:"final"`
	Varargs bool   `yaml:"varargs"`
}

type initializerDescriptor struct {
	Static bool `yaml:"static"`
}

// ClassesFromYAML decodes one or more descriptor documents.
func ClassesFromYAML(data []byte) ([]*Class, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var classes []*Class
	for {
		var doc descriptorFile
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode descriptor: %w", err)
		}
		for _, cd := range doc.Classes {
			c, err := cd.build(doc.Package)
			if err != nil {
				return nil, err
			}
			classes = append(classes, c)
		}
	}
	return classes, nil
}

func (cd classDescriptor) build(pkg string) (*Class, error) {
	if cd.Name == "" {
		return nil, fmt.Errorf("class without a name")
	}
	kind := ClassKindClass
	if cd.Kind != "" {
		kind = ClassKind(cd.Kind)
		if !kind.valid() {
			return nil, fmt.Errorf("class %s: unknown kind %q", cd.Name, cd.Kind)
		}
	}
	mods, err := ParseModifiers(cd.Modifiers)
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", cd.Name, err)
	}
	c := &Class{
		Name:       cd.Name,
		Package:    pkg,
		ClassKind:  kind,
		Modifiers:  mods,
		Superclass: cd.Extends,
		Interfaces: cd.Implements,
		Javadoc:    cd.Javadoc,
	}

	for _, fd := range cd.Fields {
		mods, err := ParseModifiers(fd.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", cd.Name, fd.Name, err)
		}
		c.AddField(&Field{Name: fd.Name, Type: ParseType(fd.Type), Modifiers: mods, Javadoc: fd.Javadoc})
	}
	for _, id := range cd.Initializers {
		c.AddInitializer(&Initializer{IsStatic: id.Static})
	}
	for _, md := range cd.Constructors {
		mods, err := ParseModifiers(md.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("constructor of %s: %w", cd.Name, err)
		}
		c.AddConstructor(&Constructor{
			Modifiers:  mods,
			Parameters: buildParameters(md.Parameters),
			Exceptions: md.Throws,
			Javadoc:    md.Javadoc,
		})
	}
	for _, md := range cd.Methods {
		mods, err := ParseModifiers(md.Modifiers)
		if err != nil {
			return nil, fmt.Errorf("method %s.%s: %w", cd.Name, md.Name, err)
		}
		returns := md.Returns
		if returns == "" {
			returns = "void"
		}
		c.AddMethod(&Method{
			Name:       md.Name,
			Modifiers:  mods,
			ReturnType: ParseType(returns),
			Parameters: buildParameters(md.Parameters),
			Exceptions: md.Throws,
			Javadoc:    md.Javadoc,
		})
	}
	for _, inner := range cd.Classes {
		ic, err := inner.build("")
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", cd.Name, err)
		}
		c.AddClass(ic)
	}
	return c, nil
}

func buildParameters(pds []parameterDescriptor) []Parameter {
	if len(pds) == 0 {
		return nil
	}
	params := make([]Parameter, len(pds))
	for i, pd := range pds {
		written, varargs := strings.CutSuffix(strings.TrimSpace(pd.Type), "...")
		varargs = varargs || pd.Varargs
		t := ParseType(written)
		if varargs {
			t.ArrayDepth++
		}
		params[i] = Parameter{Name: pd.Name, Type: t, IsFinal: pd.Final, IsVarargs: varargs}
	}
	return params
}
