// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"log/slog"
	"reflect"
	"strconv"
	"strings"

	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/enums"
)

// Type describes a type of value that can be held by a dynamic variable,
// and provides conversion of such values to and from strings, which
// is the universal interchange format between different types, and to
// and from the other basic kinds of values.
//
// Conversion never fails: malformed or out-of-range input results
// in the zero value of the type, because reflective access is routinely
// driven by user input in editors, consoles and scripts.
type Type struct {

	// Name is the name of the type: the Go name for the builtin
	// types (eg: int8, float32), and the fully package-path-qualified
	// name for other named types (eg: pixellight.org/core/types.Kinds).
	Name string

	// Kind is the primitive kind of the type.
	Kind Kinds

	// Size is the size of a value of the type in bytes.
	Size uintptr

	// ID is the unique type ID number.
	ID uint64

	// Format, if non-nil, is used instead of the kind-based formatting
	// to convert a value of this type to a string. The value passed
	// to it has already been converted to this type.
	Format func(v any) string

	// Parse, if non-nil, is used instead of the kind-based parsing
	// to convert a string to a value of this type. Any error results in
	// the zero value of the type.
	Parse func(s string) (any, error)

	// reflect is the Go type of values of this type.
	reflect reflect.Type
}

// New returns a new [Type] with the given name and kind for the given
// Go type. It is not added to the registry; see [AddType].
func New(name string, kind Kinds, rt reflect.Type) *Type {
	return &Type{Name: name, Kind: kind, Size: rt.Size(), reflect: rt}
}

func (tp *Type) String() string {
	return tp.Name
}

// ReflectType returns the [reflect.Type] of values of this type.
func (tp *Type) ReflectType() reflect.Type {
	return tp.reflect
}

// Zero returns the zero value of this type. It is nil for
// object types.
func (tp *Type) Zero() any {
	return reflect.Zero(tp.reflect).Interface()
}

// Is returns whether the given value is of exactly this type.
func (tp *Type) Is(v any) bool {
	return v != nil && reflect.TypeOf(v) == tp.reflect
}

// ToString converts the given value to its string representation
// for this type. The value is first converted to this type.
func (tp *Type) ToString(v any) string {
	v = tp.Convert(v)
	if tp.Format != nil {
		return tp.Format(v)
	}
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch {
	case tp.Kind == Bool:
		return strconv.FormatBool(rv.Bool())
	case tp.Kind.IsInt():
		return strconv.FormatInt(rv.Int(), 10)
	case tp.Kind.IsUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case tp.Kind == Float:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case tp.Kind == Double:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case tp.Kind == String:
		return rv.String()
	case tp.Kind == Enum:
		if e, ok := v.(enums.Enum); ok {
			return e.String()
		}
	case tp.Kind == Flags:
		if bf, ok := v.(enums.BitFlag); ok {
			return flagsString(bf)
		}
	}
	return reflectx.ToString(v)
}

// FromString converts the given string to a value of this type.
// Malformed strings result in the zero value of the type.
func (tp *Type) FromString(s string) any {
	if tp.Parse != nil {
		v, err := tp.Parse(s)
		if err != nil || v == nil {
			slog.Debug("types.FromString: using zero value", "type", tp.Name, "value", s, "err", err)
			return tp.Zero()
		}
		return v
	}
	switch tp.Kind {
	case Enum, Flags:
		return tp.parseEnum(s)
	case String:
		return tp.make(reflect.ValueOf(s))
	}
	return tp.Convert(s)
}

// Convert converts the given value to a value of this type using
// the conversion path of this type: numeric kinds convert numerically,
// strings are parsed, and enums go through their integer value.
// Values that can not be converted result in the zero value.
func (tp *Type) Convert(v any) any {
	if v == nil {
		return tp.Zero()
	}
	if reflect.TypeOf(v) == tp.reflect {
		return v
	}
	if s, ok := v.(string); ok && tp.Kind != String {
		if tp.Parse != nil || tp.Kind == Enum || tp.Kind == Flags {
			return tp.FromString(s)
		}
	}
	nv := reflect.New(tp.reflect).Elem()
	switch {
	case tp.Kind == Bool:
		b, err := reflectx.ToBool(v)
		if err != nil {
			return tp.zero(v, err)
		}
		nv.SetBool(b)
	case tp.Kind.IsInt():
		i, err := reflectx.ToInt(v)
		if err != nil {
			return tp.zero(v, err)
		}
		if nv.OverflowInt(i) {
			return tp.zero(v, nil)
		}
		nv.SetInt(i)
	case tp.Kind.IsUint():
		u, err := reflectx.ToUint(v)
		if err != nil {
			return tp.zero(v, err)
		}
		if nv.OverflowUint(u) {
			return tp.zero(v, nil)
		}
		nv.SetUint(u)
	case tp.Kind.IsFloat():
		f, err := reflectx.ToFloat(v)
		if err != nil {
			return tp.zero(v, err)
		}
		nv.SetFloat(f)
	case tp.Kind == String:
		nv.SetString(reflectx.ToString(v))
	case tp.Kind == Enum || tp.Kind == Flags:
		i, err := reflectx.ToInt(v)
		if err != nil {
			return tp.zero(v, err)
		}
		if nv.CanUint() {
			nv.SetUint(uint64(i))
		} else {
			nv.SetInt(i)
		}
	default:
		rv := reflect.ValueOf(v)
		if rv.Type().AssignableTo(tp.reflect) {
			nv.Set(rv)
			return nv.Interface()
		}
		return tp.zero(v, nil)
	}
	return nv.Interface()
}

// ToBool converts the given value to a bool through this type.
func (tp *Type) ToBool(v any) bool {
	v = tp.Convert(v)
	if tp.Kind == Object {
		return !reflectx.IsNil(v)
	}
	if tp.Kind == String {
		b, _ := reflectx.ToBool(v)
		if !b {
			// numeric strings such as "1" are true as well
			i, _ := reflectx.ToInt(v)
			return i != 0
		}
		return b
	}
	b, _ := reflectx.ToBool(v)
	return b
}

// ToInt converts the given value to an int64 through this type.
func (tp *Type) ToInt(v any) int64 {
	if tp.Kind == Object {
		return 0
	}
	i, _ := reflectx.ToInt(tp.Convert(v))
	return i
}

// ToUint converts the given value to a uint64 through this type.
func (tp *Type) ToUint(v any) uint64 {
	if tp.Kind == Object {
		return 0
	}
	v = tp.Convert(v)
	if tp.Kind.IsUint() {
		u, _ := reflectx.ToUint(v)
		return u
	}
	// two's complement for negative numbers, as with a C cast
	i, _ := reflectx.ToInt(v)
	return uint64(i)
}

// ToFloat converts the given value to a float64 through this type.
func (tp *Type) ToFloat(v any) float64 {
	if tp.Kind == Object {
		return 0
	}
	f, _ := reflectx.ToFloat(tp.Convert(v))
	return f
}

func (tp *Type) make(rv reflect.Value) any {
	if rv.Type() == tp.reflect {
		return rv.Interface()
	}
	if rv.Type().ConvertibleTo(tp.reflect) {
		return rv.Convert(tp.reflect).Interface()
	}
	return tp.Zero()
}

func (tp *Type) zero(v any, err error) any {
	slog.Debug("types.Convert: using zero value", "type", tp.Name, "value", v, "err", err)
	return tp.Zero()
}

// parseEnum parses the given string into a new value of this enum or
// bit flag type, accepting both names and integer values.
func (tp *Type) parseEnum(s string) any {
	pv := reflect.New(tp.reflect)
	s = strings.TrimSpace(s)
	if s == "" {
		return pv.Elem().Interface()
	}
	if setter, ok := pv.Interface().(enums.EnumSetter); ok {
		if err := setter.SetString(s); err == nil {
			return pv.Elem().Interface()
		}
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			setter.SetInt64(i)
			return pv.Elem().Interface()
		}
	}
	if tp.Kind == Flags {
		if setter, ok := pv.Interface().(enums.BitFlagSetter); ok {
			setter.SetInt64(0)
			if err := setter.SetStringOr(s); err == nil {
				return pv.Elem().Interface()
			}
		}
	}
	slog.Debug("types.FromString: invalid enum value", "type", tp.Name, "value", s)
	return tp.Zero()
}

// flagsString returns the "|" joined names of all of the set flags
// in the given bit flag value.
func flagsString(bf enums.BitFlag) string {
	var names []string
	for _, v := range bf.Values() {
		f, ok := v.(enums.BitFlag)
		if ok && bf.HasFlag(f) {
			names = append(names, f.BitIndexString())
		}
	}
	return strings.Join(names, "|")
}
