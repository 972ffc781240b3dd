// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Functions for robustly converting any value to a given basic type.
// They are as general as possible and deal with most common-sense
// cases, e.g., string <-> number, which makes them appropriate for
// end-user settable values such as reflective attributes, where a
// value typed into a property editor should never stop the program.
// Failure is reported through the returned error; nil values fail.

// inter is implemented by enum types and other integer-valued types.
type inter interface {
	Int64() int64
}

// ToBool robustly converts to a bool any basic elemental type
// (including pointers to such) using a big type switch organized
// for greatest efficiency, only falling back on reflection when all
// else fails. Strings are parsed with [strconv.ParseBool], and
// also accept "yes", "no", "on" and "off".
func ToBool(v any) (bool, error) {
	switch vt := v.(type) {
	case bool:
		return vt, nil
	case *bool:
		if vt == nil {
			return false, errNil(v)
		}
		return *vt, nil
	case string:
		return parseBool(vt)
	case *string:
		if vt == nil {
			return false, errNil(v)
		}
		return parseBool(*vt)
	}
	if in, ok := v.(inter); ok {
		return in.Int64() != 0, nil
	}
	if IsNil(v) {
		return false, errNil(v)
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	switch {
	case rv.CanInt():
		return rv.Int() != 0, nil
	case rv.CanUint():
		return rv.Uint() != 0, nil
	case rv.CanFloat():
		return rv.Float() != 0, nil
	case rv.Kind() == reflect.Bool:
		return rv.Bool(), nil
	case rv.Kind() == reflect.String:
		return parseBool(rv.String())
	}
	return false, fmt.Errorf("got value %v of type %T that cannot be converted to bool", v, v)
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "on":
		return true, nil
	case "no", "off", "":
		return false, nil
	}
	return strconv.ParseBool(strings.TrimSpace(s))
}

// ToInt robustly converts to an int64 any basic elemental type
// (including pointers to such). Strings are parsed with base
// prefixes (0x, 0o, 0b) honored, and floating point strings are
// truncated toward zero.
func ToInt(v any) (int64, error) {
	switch vt := v.(type) {
	case int:
		return int64(vt), nil
	case int8:
		return int64(vt), nil
	case int16:
		return int64(vt), nil
	case int32:
		return int64(vt), nil
	case int64:
		return vt, nil
	case uint8:
		return int64(vt), nil
	case uint16:
		return int64(vt), nil
	case uint32:
		return int64(vt), nil
	case float64:
		return int64(vt), nil
	case float32:
		return int64(vt), nil
	case bool:
		if vt {
			return 1, nil
		}
		return 0, nil
	case string:
		return parseInt(vt)
	}
	if in, ok := v.(inter); ok {
		return in.Int64(), nil
	}
	if IsNil(v) {
		return 0, errNil(v)
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	switch {
	case rv.CanInt():
		return rv.Int(), nil
	case rv.CanUint():
		return int64(rv.Uint()), nil
	case rv.CanFloat():
		return int64(rv.Float()), nil
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case rv.Kind() == reflect.String:
		return parseInt(rv.String())
	}
	return 0, fmt.Errorf("got value %v of type %T that cannot be converted to int", v, v)
}

func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	i, err := strconv.ParseInt(s, 0, 64)
	if err == nil {
		return i, nil
	}
	f, ferr := strconv.ParseFloat(s, 64)
	if ferr == nil {
		return int64(f), nil
	}
	return 0, err
}

// ToUint robustly converts to a uint64 any basic elemental type
// (including pointers to such). Negative values are an error.
func ToUint(v any) (uint64, error) {
	switch vt := v.(type) {
	case uint:
		return uint64(vt), nil
	case uint8:
		return uint64(vt), nil
	case uint16:
		return uint64(vt), nil
	case uint32:
		return uint64(vt), nil
	case uint64:
		return vt, nil
	case string:
		s := strings.TrimSpace(vt)
		u, err := strconv.ParseUint(s, 0, 64)
		if err == nil {
			return u, nil
		}
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr == nil && f >= 0 {
			return uint64(f), nil
		}
		return 0, err
	}
	if IsNil(v) {
		return 0, errNil(v)
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	if rv.CanUint() {
		return rv.Uint(), nil
	}
	if rv.Kind() == reflect.String {
		return ToUint(rv.String())
	}
	i, err := ToInt(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("got negative value %d that cannot be converted to uint", i)
	}
	return uint64(i), nil
}

// ToFloat robustly converts to a float64 any basic elemental type
// (including pointers to such).
func ToFloat(v any) (float64, error) {
	switch vt := v.(type) {
	case float64:
		return vt, nil
	case float32:
		return float64(vt), nil
	case int:
		return float64(vt), nil
	case int64:
		return float64(vt), nil
	case bool:
		if vt {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(vt), 64)
	}
	if in, ok := v.(inter); ok {
		return float64(in.Int64()), nil
	}
	if IsNil(v) {
		return 0, errNil(v)
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	switch {
	case rv.CanFloat():
		return rv.Float(), nil
	case rv.CanInt():
		return float64(rv.Int()), nil
	case rv.CanUint():
		return float64(rv.Uint()), nil
	case rv.Kind() == reflect.Bool:
		if rv.Bool() {
			return 1, nil
		}
		return 0, nil
	case rv.Kind() == reflect.String:
		return strconv.ParseFloat(strings.TrimSpace(rv.String()), 64)
	}
	return 0, fmt.Errorf("got value %v of type %T that cannot be converted to float", v, v)
}

// ToString robustly converts anything to a string. Floating point
// values use the shortest representation that parses back to the
// same value. Because [fmt.Stringer] is so ubiquitous, and we fall
// back to fmt.Sprintf(%v) in the worst case, this should work in all
// cases, so there is no error return value. A nil value results in
// an empty string.
func ToString(v any) string {
	switch vt := v.(type) {
	case string:
		return vt
	case bool:
		return strconv.FormatBool(vt)
	case float32:
		return strconv.FormatFloat(float64(vt), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(vt, 'g', -1, 64)
	case []byte:
		return string(vt)
	case fmt.Stringer:
		if IsNil(v) {
			return ""
		}
		return vt.String()
	}
	if IsNil(v) {
		return ""
	}
	rv := NonPointerValue(reflect.ValueOf(v))
	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.Kind() == reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case rv.Kind() == reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case rv.Kind() == reflect.String:
		return rv.String()
	}
	return fmt.Sprintf("%v", v)
}

// SetRobust robustly sets the 'to' value from the 'from' value.
// The 'to' value must be a pointer to a basic value (bool,
// number, string), and the 'from' value can be any basic value
// that can be converted to it with the To* functions. Values of
// assignable types are set directly.
func SetRobust(to, from any) error {
	if IsNil(to) {
		return fmt.Errorf("got nil destination value")
	}
	pv := reflect.ValueOf(to)
	if pv.Kind() != reflect.Pointer {
		return fmt.Errorf("destination value %v of type %T is not a pointer", to, to)
	}
	v := pv.Elem()
	typ := v.Type()
	if from != nil {
		fv := reflect.ValueOf(from)
		if fv.Type().AssignableTo(typ) {
			v.Set(fv)
			return nil
		}
	}
	switch {
	case v.Kind() == reflect.Bool:
		b, err := ToBool(from)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case v.CanInt():
		i, err := ToInt(from)
		if err != nil {
			return err
		}
		if v.OverflowInt(i) {
			return fmt.Errorf("value %d overflows %v", i, typ)
		}
		v.SetInt(i)
	case v.CanUint():
		u, err := ToUint(from)
		if err != nil {
			return err
		}
		if v.OverflowUint(u) {
			return fmt.Errorf("value %d overflows %v", u, typ)
		}
		v.SetUint(u)
	case v.CanFloat():
		f, err := ToFloat(from)
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case v.Kind() == reflect.String:
		v.SetString(ToString(from))
	case v.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.String:
		s := ToString(from)
		var parts []string
		for _, p := range strings.Split(s, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		v.Set(reflect.ValueOf(parts).Convert(typ))
	default:
		return fmt.Errorf("unable to set value of type %v from value %v of type %T", typ, from, from)
	}
	return nil
}

func errNil(v any) error {
	return fmt.Errorf("got nil value of type %T", v)
}
