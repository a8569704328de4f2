package format

import "github.com/dhamidi/elfmt/java"

// TagKind is the character naming a tag, as in "{n}".
type TagKind byte

const (
	TagModifiers      TagKind = 'm'
	TagName           TagKind = 'n'
	TagFullName       TagKind = 'f'
	TagClassName      TagKind = 'C'
	TagType           TagKind = 't'
	TagReturn         TagKind = 'r'
	TagSuperclass     TagKind = 's'
	TagStatic         TagKind = 'c'
	TagParameterTypes TagKind = 'p'
	TagParameters     TagKind = 'a'
	TagInterfaces     TagKind = 'i'
	TagExceptions     TagKind = 'e'
)

type tagInfo struct {
	array    bool
	property java.Property
	// needs describes the capability the element must have, for errors.
	needs string
}

var tags = map[TagKind]tagInfo{
	TagModifiers:      {property: java.PropModifiers, needs: "modifiers"},
	TagName:           {property: java.PropName, needs: "a name"},
	TagFullName:       {property: java.PropName, needs: "a name"},
	TagClassName:      {property: java.PropName, needs: "a declaring class"},
	TagType:           {property: java.PropType, needs: "a type"},
	TagReturn:         {property: java.PropReturn, needs: "a return type"},
	TagSuperclass:     {property: java.PropSuperclass, needs: "a superclass"},
	TagStatic:         {property: java.PropStatic, needs: "a static flag"},
	TagParameterTypes: {array: true, property: java.PropParameters, needs: "parameters"},
	TagParameters:     {array: true, property: java.PropParameters, needs: "parameters"},
	TagInterfaces:     {array: true, property: java.PropInterfaces, needs: "interfaces"},
	TagExceptions:     {array: true, property: java.PropExceptions, needs: "exceptions"},
}

func (k TagKind) valid() bool {
	_, ok := tags[k]
	return ok
}

// IsArray reports whether the tag renders a sequence of values.
func (k TagKind) IsArray() bool { return tags[k].array }

// Property returns the element property the tag reads.
func (k TagKind) Property() java.Property { return tags[k].property }

func (k TagKind) String() string { return "{" + string(rune(k)) + "}" }
