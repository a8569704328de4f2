package classfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// reader consumes a class file from a byte slice. The first failure is
// kept in err and turns every later read into a no-op.
type reader struct {
	data []byte
	pos  int
	err  error
}

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.pos+n > len(r.data) {
		r.err = fmt.Errorf("truncated at offset %d: %w", r.pos, io.ErrUnexpectedEOF)
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *reader) u1() uint8 {
	if b := r.bytes(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) u2() uint16 {
	if b := r.bytes(2); b != nil {
		return binary.BigEndian.Uint16(b)
	}
	return 0
}

func (r *reader) u4() uint32 {
	if b := r.bytes(4); b != nil {
		return binary.BigEndian.Uint32(b)
	}
	return 0
}

type constantPool struct {
	utf8    map[uint16]string
	classes map[uint16]uint16
}

func (cp *constantPool) str(idx uint16) string { return cp.utf8[idx] }

func (cp *constantPool) class(idx uint16) string {
	if idx == 0 {
		return ""
	}
	return cp.utf8[cp.classes[idx]]
}

// Parse reads a class file.
func Parse(data []byte) (*ClassFile, error) {
	r := &reader{data: data}
	if r.u4() != Magic || r.err != nil {
		return nil, ErrNotClassFile
	}

	cf := &ClassFile{MinorVersion: r.u2(), MajorVersion: r.u2()}
	cp, err := readConstantPool(r)
	if err != nil {
		return nil, fmt.Errorf("constant pool: %w", err)
	}

	cf.Access = AccessFlags(r.u2())
	cf.Name = cp.class(r.u2())
	cf.Super = cp.class(r.u2())
	for n := r.u2(); n > 0 && r.err == nil; n-- {
		cf.Interfaces = append(cf.Interfaces, cp.class(r.u2()))
	}

	if cf.Fields, err = readMembers(r, cp); err != nil {
		return nil, fmt.Errorf("fields: %w", err)
	}
	if cf.Methods, err = readMembers(r, cp); err != nil {
		return nil, fmt.Errorf("methods: %w", err)
	}

	err = readAttributes(r, cp, func(name string, info *reader) {
		switch name {
		case "InnerClasses":
			for n := info.u2(); n > 0 && info.err == nil; n-- {
				cf.InnerClasses = append(cf.InnerClasses, InnerClass{
					Inner:  cp.class(info.u2()),
					Outer:  cp.class(info.u2()),
					Name:   cp.str(info.u2()),
					Access: AccessFlags(info.u2()),
				})
			}
		case "Record":
			cf.IsRecord = true
		}
	})
	if err != nil {
		return nil, fmt.Errorf("class attributes: %w", err)
	}
	return cf, nil
}

func readConstantPool(r *reader) (*constantPool, error) {
	cp := &constantPool{utf8: map[uint16]string{}, classes: map[uint16]uint16{}}
	count := r.u2()
	for i := uint16(1); i < count && r.err == nil; i++ {
		switch tag := r.u1(); tag {
		case tagUtf8:
			cp.utf8[i] = decodeModifiedUTF8(r.bytes(int(r.u2())))
		case tagClass:
			cp.classes[i] = r.u2()
		case tagString, tagMethodType, tagModule, tagPackage:
			r.bytes(2)
		case tagMethodHandle:
			r.bytes(3)
		case tagInteger, tagFloat, tagFieldref, tagMethodref, tagInterfaceMethodref,
			tagNameAndType, tagDynamic, tagInvokeDynamic:
			r.bytes(4)
		case tagLong, tagDouble:
			// 8-byte constants take up two pool slots.
			r.bytes(8)
			i++
		default:
			if r.err == nil {
				return nil, fmt.Errorf("entry %d: unknown tag %d", i, tag)
			}
		}
	}
	return cp, r.err
}

func readMembers(r *reader, cp *constantPool) ([]Member, error) {
	var members []Member
	for n := r.u2(); n > 0 && r.err == nil; n-- {
		m := Member{
			Access:     AccessFlags(r.u2()),
			Name:       cp.str(r.u2()),
			Descriptor: cp.str(r.u2()),
		}
		err := readAttributes(r, cp, func(name string, info *reader) {
			switch name {
			case "Exceptions":
				for n := info.u2(); n > 0 && info.err == nil; n-- {
					m.Exceptions = append(m.Exceptions, cp.class(info.u2()))
				}
			case "MethodParameters":
				for n := info.u1(); n > 0 && info.err == nil; n-- {
					m.Parameters = append(m.Parameters, MethodParameter{
						Name:   cp.str(info.u2()),
						Access: AccessFlags(info.u2()),
					})
				}
			}
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
		members = append(members, m)
	}
	return members, r.err
}

// readAttributes calls fn with a reader over each attribute body.
func readAttributes(r *reader, cp *constantPool, fn func(name string, info *reader)) error {
	for n := r.u2(); n > 0 && r.err == nil; n-- {
		name := cp.str(r.u2())
		body := r.bytes(int(r.u4()))
		if r.err != nil {
			break
		}
		info := &reader{data: body}
		fn(name, info)
		if info.err != nil {
			return fmt.Errorf("attribute %s: %w", name, info.err)
		}
	}
	return r.err
}

// decodeModifiedUTF8 handles the encoded NUL of the class file string
// format. Supplementary characters stored as surrogate pairs are left as is.
func decodeModifiedUTF8(b []byte) string {
	return strings.ReplaceAll(string(b), "\xc0\x80", "\x00")
}
