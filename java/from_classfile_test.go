package java

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/elfmt/classfile"
	"github.com/dhamidi/elfmt/classfile/classfiletest"
)

func loadClassfile(t *testing.T, data []byte) *Class {
	t.Helper()
	classes, err := ClassesFromClassfile(data)
	if err != nil {
		t.Fatalf("ClassesFromClassfile() error: %v", err)
	}
	if len(classes) != 1 {
		t.Fatalf("got %d classes, want 1", len(classes))
	}
	return classes[0]
}

func TestClassesFromClassfile(t *testing.T) {
	data := classfiletest.New(classfile.AccPublic|classfile.AccAbstract, "com/example/Shape", "com/example/Base").
		Implements("java/lang/Comparable", "java/util/Map$Entry").
		Field(classfile.AccProtected|classfile.AccVolatile, "x", "I").
		Field(classfile.AccPrivate|classfile.AccStatic|classfile.AccSynthetic, "$assertions", "Z").
		Method(classfile.AccStatic, "<clinit>", "()V", nil).
		Method(classfile.AccPublic, "<init>", "(I[I)V", nil, "x", "bounds").
		Method(classfile.AccPublic|classfile.AccVarargs, "printAll", "([Ljava/lang/String;)V", []string{"java/io/IOException"}).
		Method(classfile.AccPublic|classfile.AccAbstract, "area", "()D", nil).
		Method(classfile.AccPublic|classfile.AccBridge|classfile.AccSynthetic, "compareTo", "(Ljava/lang/Object;)I", nil).
		Bytes()

	c := loadClassfile(t, data)

	if c.FullName() != "com.example.Shape" {
		t.Errorf("got name %q, want com.example.Shape", c.FullName())
	}
	if c.ClassKind != ClassKindClass || c.Modifiers.String() != "public abstract" {
		t.Errorf("got %s %q, want public abstract class", c.ClassKind, c.Modifiers)
	}
	if c.Superclass != "com.example.Base" {
		t.Errorf("got superclass %q", c.Superclass)
	}
	if diff := cmp.Diff([]string{"java.lang.Comparable", "java.util.Map.Entry"}, c.Interfaces); diff != "" {
		t.Errorf("interfaces mismatch (-want +got):\n%s", diff)
	}

	if len(c.Fields) != 1 || c.Fields[0].Name != "x" || c.Fields[0].Modifiers.String() != "protected volatile" {
		t.Errorf("got fields %+v, want only protected volatile x", c.Fields)
	}
	if len(c.Initializers) != 1 || !c.Initializers[0].IsStatic {
		t.Errorf("got initializers %+v, want one static initializer", c.Initializers)
	}

	ctor := c.Constructor("int", "int[]")
	if ctor == nil {
		t.Fatal("constructor (int, int[]) not found")
	}
	if ctor.Parameters[1].String() != "int[] bounds" {
		t.Errorf("got parameter %q, want \"int[] bounds\"", ctor.Parameters[1].String())
	}

	printAll := c.Method("printAll")
	if printAll == nil {
		t.Fatal("printAll not found")
	}
	if !printAll.IsVarargs() || printAll.Parameters[0].TypeString() != "java.lang.String..." {
		t.Errorf("got parameter %q, want varargs java.lang.String...", printAll.Parameters[0].TypeString())
	}
	if diff := cmp.Diff([]string{"java.io.IOException"}, printAll.Exceptions); diff != "" {
		t.Errorf("exceptions mismatch (-want +got):\n%s", diff)
	}
	if printAll.ReturnType.String() != "void" {
		t.Errorf("got return %q, want void", printAll.ReturnType)
	}

	if c.Method("area").ReturnType.Name != "double" {
		t.Errorf("area returns %q, want double", c.Method("area").ReturnType)
	}
	if len(c.Methods) != 2 {
		t.Errorf("got %d methods, want bridge method skipped", len(c.Methods))
	}
}

func TestClassesFromClassfileInterface(t *testing.T) {
	data := classfiletest.New(classfile.AccPublic|classfile.AccInterface|classfile.AccAbstract, "demo/Op", "java/lang/Object").
		Method(classfile.AccPublic|classfile.AccAbstract, "apply", "(I)I", nil).
		Method(classfile.AccPublic, "andThen", "(Ldemo/Op;)Ldemo/Op;", nil).
		Method(classfile.AccPublic|classfile.AccStatic, "identity", "()Ldemo/Op;", nil).
		Bytes()

	c := loadClassfile(t, data)
	if c.ClassKind != ClassKindInterface || c.Modifiers.String() != "public" {
		t.Errorf("got %s %q, want public interface", c.ClassKind, c.Modifiers)
	}

	want := map[string]string{"apply": "", "andThen": "default", "identity": "static"}
	for name, mods := range want {
		if got := c.Method(name).Modifiers.String(); got != mods {
			t.Errorf("%s: got modifiers %q, want %q", name, got, mods)
		}
	}
}

func TestClassesFromClassfileKinds(t *testing.T) {
	tests := []struct {
		name   string
		access classfile.AccessFlags
		super  string
		record bool
		want   ClassKind
	}{
		{"enum", classfile.AccPublic | classfile.AccFinal | classfile.AccEnum, "java/lang/Enum", false, ClassKindEnum},
		{"record", classfile.AccPublic | classfile.AccFinal, "java/lang/Record", true, ClassKindRecord},
		{"annotation", classfile.AccPublic | classfile.AccInterface | classfile.AccAbstract | classfile.AccAnnotation, "java/lang/Object", false, ClassKindAnnotation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := classfiletest.New(tt.access, "demo/T", tt.super)
			if tt.record {
				b.Record()
			}
			c := loadClassfile(t, b.Bytes())
			if c.ClassKind != tt.want {
				t.Errorf("got kind %s, want %s", c.ClassKind, tt.want)
			}
			if c.Superclass != "" {
				t.Errorf("got superclass %q, want none", c.Superclass)
			}
			if c.Modifiers.String() != "public" {
				t.Errorf("got modifiers %q, want public", c.Modifiers)
			}
		})
	}
}

func TestNestClasses(t *testing.T) {
	outer := classfiletest.New(classfile.AccPublic, "demo/Map", "java/lang/Object").
		Inner("demo/Map$Entry", "demo/Map", "Entry", classfile.AccPublic|classfile.AccStatic).
		Bytes()
	entry := classfiletest.New(classfile.AccPublic, "demo/Map$Entry", "java/lang/Object").
		Inner("demo/Map$Entry", "demo/Map", "Entry", classfile.AccPublic|classfile.AccStatic).
		Inner("demo/Map$Entry$Key", "demo/Map$Entry", "Key", classfile.AccPrivate).
		Method(0, "<init>", "(Ldemo/Map;I)V", nil, "this$0", "hash").
		MandatedParameter(0).
		Bytes()
	key := classfiletest.New(0, "demo/Map$Entry$Key", "java/lang/Object").
		Inner("demo/Map$Entry$Key", "demo/Map$Entry", "Key", classfile.AccPrivate).
		Bytes()
	anonymous := classfiletest.New(0, "demo/Map$1", "java/lang/Object").
		Inner("demo/Map$1", "", "", 0).
		Bytes()

	var classes []*Class
	for _, data := range [][]byte{key, entry, anonymous, outer} {
		loaded, err := ClassesFromClassfile(data)
		if err != nil {
			t.Fatalf("ClassesFromClassfile() error: %v", err)
		}
		classes = append(classes, loaded...)
	}
	if len(classes) != 3 {
		t.Fatalf("got %d classes, want anonymous class skipped", len(classes))
	}

	top := NestClasses(classes)
	if len(top) != 1 || top[0].Name != "Map" {
		t.Fatalf("got %d top-level classes, want only Map", len(top))
	}
	k := top[0].Class("Entry").Class("Key")
	if k == nil {
		t.Fatal("Map.Entry.Key not nested")
	}
	if k.FullName() != "demo.Map.Entry.Key" || k.Modifiers.String() != "private" {
		t.Errorf("got %s %q, want private demo.Map.Entry.Key", k.FullName(), k.Modifiers)
	}

	ctor := top[0].Class("Entry").Constructors[0]
	if len(ctor.Parameters) != 1 || ctor.Parameters[0].Name != "hash" {
		t.Errorf("got parameters %+v, want only hash", ctor.Parameters)
	}
}

func TestClassesFromClassfileImplicitModifiers(t *testing.T) {
	op := classfiletest.New(classfile.AccInterface|classfile.AccAbstract, "demo/Op", "java/lang/Object").
		Field(classfile.AccPublic|classfile.AccStatic|classfile.AccFinal, "X", "I").
		Bytes()
	compiled := loadClassfile(t, op)

	sources, err := ClassesFromSource([]byte("interface Op { int X = 1; }"))
	if err != nil {
		t.Fatalf("ClassesFromSource() error: %v", err)
	}
	got, want := compiled.Field("X").Modifiers.String(), sources[0].Field("X").Modifiers.String()
	if got != want {
		t.Errorf("interface field modifiers: got %q from class file, %q from source", got, want)
	}

	mode := classfiletest.New(classfile.AccFinal|classfile.AccEnum, "demo/Op$Mode", "java/lang/Enum").
		Inner("demo/Op$Mode", "demo/Op", "Mode", classfile.AccPublic|classfile.AccStatic|classfile.AccFinal|classfile.AccEnum).
		Bytes()
	helper := classfiletest.New(0, "demo/Op$Helper", "java/lang/Object").
		Inner("demo/Op$Helper", "demo/Op", "Helper", classfile.AccPublic|classfile.AccStatic).
		Bytes()
	modeClass := loadClassfile(t, mode)
	if modeClass.Modifiers.String() != "public" {
		t.Errorf("member enum modifiers = %q, want public", modeClass.Modifiers)
	}

	top := NestClasses([]*Class{compiled, modeClass, loadClassfile(t, helper)})
	if len(top) != 1 {
		t.Fatalf("got %d top-level classes, want 1", len(top))
	}
	if m := top[0].Class("Mode").Modifiers.String(); m != "" {
		t.Errorf("enum in interface modifiers = %q, want none", m)
	}
	if m := top[0].Class("Helper").Modifiers.String(); m != "" {
		t.Errorf("class in interface modifiers = %q, want none", m)
	}
}
