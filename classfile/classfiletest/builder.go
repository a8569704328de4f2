// Package classfiletest assembles small class files for tests.
package classfiletest

import (
	"bytes"
	"encoding/binary"

	"github.com/dhamidi/elfmt/classfile"
)

type member struct {
	access     classfile.AccessFlags
	name, desc uint16
	exceptions []uint16
	params     []param
	hasParams  bool
}

type param struct {
	name   uint16
	access classfile.AccessFlags
}

type inner struct {
	inner, outer, name uint16
	access             classfile.AccessFlags
}

// Class builds a class file. Names are in internal form ("a/b/C").
type Class struct {
	pool  bytes.Buffer
	next  uint16
	utf8  map[string]uint16
	class map[string]uint16

	access     classfile.AccessFlags
	this, sup  uint16
	interfaces []uint16
	fields     []member
	methods    []member
	inners     []inner
	record     bool
}

func New(access classfile.AccessFlags, name, super string) *Class {
	c := &Class{next: 1, utf8: map[string]uint16{}, class: map[string]uint16{}, access: access}
	c.this = c.classRef(name)
	if super != "" {
		c.sup = c.classRef(super)
	}
	return c
}

func (c *Class) str(s string) uint16 {
	if idx, ok := c.utf8[s]; ok {
		return idx
	}
	c.pool.WriteByte(1)
	binary.Write(&c.pool, binary.BigEndian, uint16(len(s)))
	c.pool.WriteString(s)
	c.utf8[s] = c.next
	c.next++
	return c.utf8[s]
}

func (c *Class) classRef(name string) uint16 {
	if name == "" {
		return 0
	}
	if idx, ok := c.class[name]; ok {
		return idx
	}
	nameIdx := c.str(name)
	c.pool.WriteByte(7)
	binary.Write(&c.pool, binary.BigEndian, nameIdx)
	c.class[name] = c.next
	c.next++
	return c.class[name]
}

// Long adds a long constant, which occupies two constant pool slots.
func (c *Class) Long(v int64) *Class {
	c.pool.WriteByte(5)
	binary.Write(&c.pool, binary.BigEndian, v)
	c.next += 2
	return c
}

func (c *Class) Implements(names ...string) *Class {
	for _, n := range names {
		c.interfaces = append(c.interfaces, c.classRef(n))
	}
	return c
}

func (c *Class) Field(access classfile.AccessFlags, name, desc string) *Class {
	c.fields = append(c.fields, member{access: access, name: c.str(name), desc: c.str(desc)})
	return c
}

// Method adds a method. Parameter names are written as a MethodParameters
// attribute when given.
func (c *Class) Method(access classfile.AccessFlags, name, desc string, throws []string, params ...string) *Class {
	m := member{access: access, name: c.str(name), desc: c.str(desc)}
	for _, t := range throws {
		m.exceptions = append(m.exceptions, c.classRef(t))
	}
	for _, p := range params {
		m.params = append(m.params, param{name: c.str(p)})
	}
	m.hasParams = len(params) > 0
	c.methods = append(c.methods, m)
	return c
}

// MandatedParameter marks parameter i of the last added method as
// compiler-generated.
func (c *Class) MandatedParameter(i int) *Class {
	m := &c.methods[len(c.methods)-1]
	m.params[i].access |= classfile.AccMandated
	return c
}

func (c *Class) Inner(innerName, outerName, simpleName string, access classfile.AccessFlags) *Class {
	ic := inner{inner: c.classRef(innerName), outer: c.classRef(outerName), access: access}
	if simpleName != "" {
		ic.name = c.str(simpleName)
	}
	c.inners = append(c.inners, ic)
	return c
}

func (c *Class) Record() *Class {
	c.record = true
	return c
}

func (c *Class) Bytes() []byte {
	// Attribute names must be in the pool before it is written.
	exceptionsAttr, paramsAttr := c.str("Exceptions"), c.str("MethodParameters")
	innerAttr, recordAttr := c.str("InnerClasses"), c.str("Record")

	var b bytes.Buffer
	w := func(v any) { binary.Write(&b, binary.BigEndian, v) }

	w(uint32(classfile.Magic))
	w(uint16(0))
	w(uint16(61))
	w(c.next)
	b.Write(c.pool.Bytes())
	w(uint16(c.access))
	w(c.this)
	w(c.sup)
	w(uint16(len(c.interfaces)))
	for _, i := range c.interfaces {
		w(i)
	}

	writeMembers := func(members []member) {
		w(uint16(len(members)))
		for _, m := range members {
			w(uint16(m.access))
			w(m.name)
			w(m.desc)
			var attrs uint16
			if len(m.exceptions) > 0 {
				attrs++
			}
			if m.hasParams {
				attrs++
			}
			w(attrs)
			if len(m.exceptions) > 0 {
				w(exceptionsAttr)
				w(uint32(2 + 2*len(m.exceptions)))
				w(uint16(len(m.exceptions)))
				for _, e := range m.exceptions {
					w(e)
				}
			}
			if m.hasParams {
				w(paramsAttr)
				w(uint32(1 + 4*len(m.params)))
				w(uint8(len(m.params)))
				for _, p := range m.params {
					w(p.name)
					w(uint16(p.access))
				}
			}
		}
	}
	writeMembers(c.fields)
	writeMembers(c.methods)

	var attrs uint16
	if len(c.inners) > 0 {
		attrs++
	}
	if c.record {
		attrs++
	}
	w(attrs)
	if len(c.inners) > 0 {
		w(innerAttr)
		w(uint32(2 + 8*len(c.inners)))
		w(uint16(len(c.inners)))
		for _, ic := range c.inners {
			w(ic.inner)
			w(ic.outer)
			w(ic.name)
			w(uint16(ic.access))
		}
	}
	if c.record {
		// An empty component list is enough to mark the class as a record.
		w(recordAttr)
		w(uint32(2))
		w(uint16(0))
	}
	return b.Bytes()
}
