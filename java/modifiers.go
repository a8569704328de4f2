package java

import (
	"fmt"
	"strings"
)

// Modifiers is a set of declaration modifiers. The low bits share their
// values with the JVM access flags.
type Modifiers uint32

const (
	ModPublic       Modifiers = 0x0001
	ModPrivate      Modifiers = 0x0002
	ModProtected    Modifiers = 0x0004
	ModStatic       Modifiers = 0x0008
	ModFinal        Modifiers = 0x0010
	ModSynchronized Modifiers = 0x0020
	ModVolatile     Modifiers = 0x0040
	ModTransient    Modifiers = 0x0080
	ModNative       Modifiers = 0x0100
	ModAbstract     Modifiers = 0x0400
	ModStrict       Modifiers = 0x0800
	ModDefault      Modifiers = 0x10000
	ModSealed       Modifiers = 0x20000
	ModNonSealed    Modifiers = 0x40000
)

// modifierOrder is the order in which modifiers are written.
var modifierOrder = []struct {
	mod  Modifiers
	word string
}{
	{ModPublic, "public"},
	{ModProtected, "protected"},
	{ModPrivate, "private"},
	{ModAbstract, "abstract"},
	{ModDefault, "default"},
	{ModStatic, "static"},
	{ModSealed, "sealed"},
	{ModNonSealed, "non-sealed"},
	{ModFinal, "final"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
	{ModSynchronized, "synchronized"},
	{ModNative, "native"},
	{ModStrict, "strictfp"},
}

func (m Modifiers) Has(mod Modifiers) bool { return m&mod == mod }

func (m Modifiers) IsPublic() bool    { return m.Has(ModPublic) }
func (m Modifiers) IsPrivate() bool   { return m.Has(ModPrivate) }
func (m Modifiers) IsProtected() bool { return m.Has(ModProtected) }
func (m Modifiers) IsStatic() bool    { return m.Has(ModStatic) }
func (m Modifiers) IsFinal() bool     { return m.Has(ModFinal) }
func (m Modifiers) IsAbstract() bool  { return m.Has(ModAbstract) }

func (m Modifiers) Visibility() string {
	switch {
	case m.IsPublic():
		return "public"
	case m.IsProtected():
		return "protected"
	case m.IsPrivate():
		return "private"
	}
	return "package"
}

// Words returns the modifier keywords in declaration order.
func (m Modifiers) Words() []string {
	var words []string
	for _, o := range modifierOrder {
		if m&o.mod != 0 {
			words = append(words, o.word)
		}
	}
	return words
}

func (m Modifiers) String() string {
	return strings.Join(m.Words(), " ")
}

// ParseModifier maps a Java modifier keyword to its flag.
func ParseModifier(word string) (Modifiers, bool) {
	for _, o := range modifierOrder {
		if o.word == word {
			return o.mod, true
		}
	}
	return 0, false
}

// ParseModifiers combines a list of keywords into a set.
func ParseModifiers(words []string) (Modifiers, error) {
	var m Modifiers
	for _, w := range words {
		mod, ok := ParseModifier(w)
		if !ok {
			return 0, fmt.Errorf("unknown modifier %q", w)
		}
		m |= mod
	}
	return m, nil
}
