// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"errors"
	"fmt"
	"reflect"
)

// SetFromDefaultTags sets the values of fields in the given struct
// (which must be passed as a pointer) based on `default:` struct
// field tags. Nested struct fields are handled recursively.
// All errors are joined and returned.
func SetFromDefaultTags(obj any) error {
	if IsNil(obj) {
		return nil
	}
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Pointer {
		return fmt.Errorf("SetFromDefaultTags: expected a pointer to a struct, not %T", obj)
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("SetFromDefaultTags: expected a pointer to a struct, not %T", obj)
	}
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type.Kind() == reflect.Struct {
			errs = append(errs, SetFromDefaultTags(fv.Addr().Interface()))
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetRobust(fv.Addr().Interface(), def); err != nil {
			errs = append(errs, fmt.Errorf("field %q: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}
