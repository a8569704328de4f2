package format

import (
	"errors"
	"testing"

	"github.com/dhamidi/elfmt/java"
)

func fixture() (*java.Class, *java.Method, *java.Field) {
	outer := &java.Class{Name: "Outer", Package: "demo", Modifiers: java.ModPublic}
	foo := &java.Class{
		Name:       "Foo",
		Modifiers:  java.ModPublic | java.ModStatic,
		Superclass: "Base",
		Interfaces: []string{"Runnable", "java.io.Closeable"},
	}
	outer.AddClass(foo)

	compute := &java.Method{
		Name:       "compute",
		Modifiers:  java.ModProtected | java.ModFinal,
		ReturnType: java.Type{Name: "long", ArrayDepth: 1},
		Parameters: []java.Parameter{
			{Name: "x", Type: java.Type{Name: "int"}, IsFinal: true},
			{Name: "c", Type: java.Type{Name: "char"}},
		},
		Exceptions: []string{"java.io.IOException", "InterruptedException"},
	}
	foo.AddMethod(compute)

	count := &java.Field{Name: "count", Type: java.Type{Name: "int"}}
	foo.AddField(count)
	return foo, compute, count
}

func mustFormat(t *testing.T, pattern string, el java.Element) string {
	t.Helper()
	f, err := New(pattern)
	if err != nil {
		t.Fatalf("New(%q) error: %v", pattern, err)
	}
	got, err := f.Format(el)
	if err != nil {
		t.Fatalf("Format(%q) error: %v", pattern, err)
	}
	return got
}

func TestFormatLiteralPattern(t *testing.T) {
	foo, compute, count := fixture()
	for _, pattern := range []string{"", "class", "  a, b; c \"quoted\" "} {
		for _, el := range []java.Element{foo, compute, count, nil} {
			if got := mustFormat(t, pattern, el); got != pattern {
				t.Errorf("Format(%q) = %q, want the pattern itself", pattern, got)
			}
		}
	}
}

func TestFormatPublicClass(t *testing.T) {
	c := &java.Class{Name: "Foo", Modifiers: java.ModPublic}
	if got := mustFormat(t, "{m,,\" \"}class {n}", c); got != "public class Foo" {
		t.Errorf("got %q, want %q", got, "public class Foo")
	}
}

func TestFormatEmptyValueSuppressesAffixes(t *testing.T) {
	c := &java.Class{Name: "Foo"}
	if got := mustFormat(t, "{m,,\" \"}class {n}", c); got != "class Foo" {
		t.Errorf("got %q, want %q", got, "class Foo")
	}
	if got := mustFormat(t, "{s, extends ,}{n}", c); got != "Foo" {
		t.Errorf("got %q, want %q", got, "Foo")
	}
}

func TestFormatParameterTypes(t *testing.T) {
	_, compute, _ := fixture()
	if got := mustFormat(t, "{p,(,),\", \"}", compute); got != "(int, char)" {
		t.Errorf("got %q, want %q", got, "(int, char)")
	}
}

func TestFormatNoExceptions(t *testing.T) {
	m := &java.Method{Name: "run", ReturnType: java.Type{Name: "void"}}
	if got := mustFormat(t, "{e,throws ,}", m); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	_, compute, _ := fixture()
	f := MustNew(DefaultMethodPattern)
	first, err := f.Format(compute)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	second, err := f.Format(compute)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if first != second {
		t.Errorf("second Format() = %q, first = %q", second, first)
	}
}

func TestFormatTags(t *testing.T) {
	foo, compute, count := fixture()
	ctor := &java.Constructor{Modifiers: java.ModPrivate}
	foo.AddConstructor(ctor)
	static := &java.Initializer{IsStatic: true}
	instance := &java.Initializer{}
	foo.AddInitializer(static)
	foo.AddInitializer(instance)

	tests := []struct {
		name    string
		pattern string
		el      java.Element
		want    string
	}{
		{"class modifiers", "{m}", foo, "public static"},
		{"class name", "{n}", foo, "Foo"},
		{"class full name", "{f}", foo, "demo.Outer.Foo"},
		{"class outer name", "{C}", foo, "Outer.Foo"},
		{"superclass", "{s, extends ,}", foo, " extends Base"},
		{"interfaces", "{i, implements ,}", foo, " implements Runnable, java.io.Closeable"},
		{"interfaces delimiter", "{i,<,>,|}", foo, "<Runnable|java.io.Closeable>"},
		{"method modifiers", "{m,[,]}", compute, "[protected final]"},
		{"return type", "{r}", compute, "long[]"},
		{"method full name", "{f}", compute, "demo.Outer.Foo.compute"},
		{"method class name", "{C}", compute, "Outer.Foo"},
		{"parameters", "{a,(,)}", compute, "(final int x, char c)"},
		{"exceptions", "{e, throws ,}", compute, " throws java.io.IOException, InterruptedException"},
		{"field", "{m,,\" \"}{t} {n}", count, "int count"},
		{"constructor", "{m,,\" \"}{n}({a})", ctor, "private Foo()"},
		{"constructor full name", "{f}", ctor, "demo.Outer.Foo"},
		{"static initializer", "{c,,\" \"}block", static, "static block"},
		{"instance initializer", "{c,,\" \"}block", instance, "block"},
		{"initializer class", "{C}", instance, "Outer.Foo"},
		{"default method", DefaultMethodPattern, compute, "protected final long[] compute(final int x, char c) throws java.io.IOException, InterruptedException"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustFormat(t, tt.pattern, tt.el); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestFormatIncompatibleElement(t *testing.T) {
	foo, compute, count := fixture()
	tests := []struct {
		name    string
		pattern string
		el      java.Element
		tag     TagKind
		kind    java.ElementKind
	}{
		{"return type on field", "{r}", count, TagReturn, java.ElementField},
		{"type on method", "{t}", compute, TagType, java.ElementMethod},
		{"superclass on method", "x{s}", compute, TagSuperclass, java.ElementMethod},
		{"parameters on class", "{p}", foo, TagParameterTypes, java.ElementClass},
		{"interfaces on field", "{i}", count, TagInterfaces, java.ElementField},
		{"exceptions on field", "{e}", count, TagExceptions, java.ElementField},
		{"static on class", "{c}", foo, TagStatic, java.ElementClass},
		{"name on initializer", "{n}", &java.Initializer{}, TagName, java.ElementInitializer},
		{"modifiers on initializer", "{m}", &java.Initializer{}, TagModifiers, java.ElementInitializer},
		{"nil element", "{n}", nil, TagName, ""},
		{"nil method", "{r}", (*java.Method)(nil), TagReturn, ""},
		{"nil class", "{m}", (*java.Class)(nil), TagModifiers, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := MustNew(tt.pattern)
			got, err := f.Format(tt.el)
			if err == nil {
				t.Fatalf("Format() = %q, want error", got)
			}
			if !errors.Is(err, ErrIncompatible) {
				t.Errorf("error %v does not wrap ErrIncompatible", err)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a *FormatError", err)
			}
			if fe.Tag != tt.tag || fe.Element != tt.kind {
				t.Errorf("FormatError = {%s %q}, want {%s %q}", fe.Tag, fe.Element, tt.tag, tt.kind)
			}
			if f.Supports(tt.el) {
				t.Error("Supports() = true, want false")
			}
		})
	}
}

func TestDependsOnProperty(t *testing.T) {
	f := MustNew(DefaultMethodPattern)
	for _, prop := range []string{"modifiers", "return", "name", "parameters", "exceptions"} {
		if !f.DependsOnProperty(prop) {
			t.Errorf("DependsOnProperty(%q) = false, want true", prop)
		}
	}
	for _, prop := range []string{"type", "superclass", "interfaces", "static", "", "bogus"} {
		if f.DependsOnProperty(prop) {
			t.Errorf("DependsOnProperty(%q) = true, want false", prop)
		}
	}

	t.Run("full name reads the name", func(t *testing.T) {
		if !MustNew("{f}").DependsOnProperty(string(java.PropName)) {
			t.Error("expected {f} to depend on name")
		}
	})

	t.Run("literal only", func(t *testing.T) {
		if MustNew("class").DependsOnProperty("name") {
			t.Error("literal pattern depends on nothing")
		}
	})
}

func TestProperties(t *testing.T) {
	got := MustNew("{n}{p}{f}{a}{m}").Properties()
	want := []java.Property{java.PropName, java.PropParameters, java.PropModifiers}
	if len(got) != len(want) {
		t.Fatalf("Properties() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Properties()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSegmentsReturnsCopy(t *testing.T) {
	f := MustNew("{n}")
	segs := f.Segments()
	segs[0] = Literal{Text: "changed"}
	if got := mustFormat(t, f.Pattern(), &java.Field{Name: "x"}); got != "x" {
		t.Errorf("got %q", got)
	}
	if _, ok := f.Segments()[0].(SimpleTag); !ok {
		t.Error("formatter segments were modified through the copy")
	}
}
