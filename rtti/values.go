// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"pixellight.org/core/base/errors"
	"pixellight.org/core/base/reflectx"
	"pixellight.org/core/signal"
)

// MarshalValues returns the attribute values of the given object as a
// YAML mapping from attribute names to values in their string form, in
// declaration order. Attributes with their default value are only
// included if withDefaults is true.
func MarshalValues(obj Object, withDefaults bool) ([]byte, error) {
	if reflectx.IsNil(obj) {
		return nil, errors.New("rtti.MarshalValues: nil object")
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for k, v := range obj.AsObject().Attributes().All() {
		if !withDefaults && v.IsDefault() {
			continue
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Value: v.String(), Style: yaml.DoubleQuotedStyle})
	}
	return yaml.Marshal(node)
}

// UnmarshalValues sets the attributes of the given object from the
// given YAML mapping from attribute names to values. Unknown attributes
// are ignored.
func UnmarshalValues(obj Object, data []byte) error {
	if reflectx.IsNil(obj) {
		return errors.New("rtti.UnmarshalValues: nil object")
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	node := doc.Content[0]
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("rtti.UnmarshalValues: expected a mapping of attribute values, not %v at line %d", kindName(node.Kind), node.Line)
	}
	ob := obj.AsObject()
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			slog.Debug("rtti.UnmarshalValues: ignoring non-scalar value", "class", ob.class, "attribute", k.Value, "line", v.Line)
			continue
		}
		ob.SetAttribute(k.Value, v.Value)
	}
	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	}
	return "a document"
}

// SaveValues saves the attribute values of the given object, including
// the default values, to the given YAML file; see [MarshalValues].
func SaveValues(obj Object, filename string) error {
	b, err := MarshalValues(obj, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// OpenValues sets the attributes of the given object from the given
// YAML file; see [UnmarshalValues].
func OpenValues(obj Object, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return UnmarshalValues(obj, b)
}

// Clone returns a new object of the same class as the given object,
// with a deep copy of all of its exported fields (including its
// attributes) that do not have a `copier:"-"` struct tag. The signals
// and slots of the clone are not connected, including those of the
// structs it points to. It returns nil if the class of the object can
// not be created with its default constructor.
func Clone(obj Object) Object {
	if reflectx.IsNil(obj) {
		return nil
	}
	ob := obj.AsObject()
	nobj := ob.class.Create("")
	if nobj == nil {
		slog.Error("rtti.Clone: unable to create object", "class", ob.class)
		return nil
	}
	errors.Log(copier.CopyWithOption(nobj.AsObject().This, ob.this(), copier.Option{CaseSensitive: true, DeepCopy: true}))
	resetSignals(reflect.ValueOf(nobj.AsObject().This), map[uintptr]bool{})
	return nobj
}

// resetSignals resets all of the [signal.Signal] fields copied into the
// struct the given value points to, and into the structs it points to,
// so that they do not share the connections of the original signals.
func resetSignals(v reflect.Value, visited map[uintptr]bool) {
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return
	}
	if visited[v.Pointer()] {
		return
	}
	visited[v.Pointer()] = true
	sv := v.Elem()
	st := sv.Type()
	for i := range st.NumField() {
		sf := st.Field(i)
		if !sf.IsExported() || sf.Tag.Get("copier") == "-" {
			continue
		}
		f := sv.Field(i)
		if ds, ok := f.Addr().Interface().(signal.DynamicSignal); ok {
			ds.Reset()
			continue
		}
		switch f.Kind() {
		case reflect.Struct:
			resetSignals(f.Addr(), visited)
		case reflect.Pointer:
			resetSignals(f, visited)
		}
	}
}
