/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package loader

import (
	"go/token"
	"reflect"

	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/capability"
	uref "dirpx.dev/capx/utils/reflect"
)

// Runtime serves providers linked into the host binary. Types are registered
// under a module name and described through reflection.
//
// Reflection sees neither function scopes nor uninstantiated generics, so
// descriptors built here are always top-level and closed.
type Runtime struct {
	mem    *Memory
	ifaces []reflect.Type
}

var _ apis.ModuleLoader = (*Runtime)(nil)

// NewRuntime returns an empty Runtime loader. Besides the marker, the capability
// set of each registered type records which of ifaces it implements.
// Non-interface entries in ifaces are ignored.
func NewRuntime(ifaces ...reflect.Type) *Runtime {
	r := &Runtime{mem: NewMemory()}
	for _, it := range ifaces {
		if it != nil && it.Kind() == reflect.Interface && it != capability.MarkerType {
			r.ifaces = append(r.ifaces, it)
		}
	}
	return r
}

// Register describes each of types and registers the result under module.
// Elements may be reflect.Type values or sample values such as (*T)(nil).
//
// A type declared inside a function cannot be told apart from a package-level
// one and is described as top-level, so it would be accepted as a provider.
// Register package-level types only.
func (r *Runtime) Register(module string, types ...any) error {
	descs := make([]apis.TypeDescriptor, 0, len(types))
	for _, v := range types {
		t, ok := v.(reflect.Type)
		if !ok {
			t = reflect.TypeOf(v)
		}
		d, err := describe(t, r.ifaces)
		if err != nil {
			return err
		}
		descs = append(descs, d)
	}
	return r.mem.Register(module, descs...)
}

// GetExportedTypes implements apis.ModuleLoader.
func (r *Runtime) GetExportedTypes(ref apis.ModuleReference) ([]apis.TypeDescriptor, error) {
	return r.mem.GetExportedTypes(ref)
}

// Modules returns the registered module names in sorted order.
func (r *Runtime) Modules() []string {
	return r.mem.Modules()
}

// Describe builds a descriptor for the nearest named type of t.
// The capability set contains only the marker, when implemented.
func Describe(t reflect.Type) (apis.TypeDescriptor, error) {
	return describe(t, nil)
}

func describe(t reflect.Type, ifaces []reflect.Type) (apis.TypeDescriptor, error) {
	if t == nil {
		return apis.TypeDescriptor{}, ErrNilType
	}
	n, err := uref.Named(t, uref.DefaultMaxUnwrap)
	if err != nil {
		return apis.TypeDescriptor{}, err
	}

	caps := make([]string, 0, len(ifaces)+1)
	if implements(n, capability.MarkerType) {
		caps = append(caps, capability.Marker)
	}
	for _, it := range ifaces {
		if it != n && implements(n, it) {
			caps = append(caps, apis.Qualify(it.PkgPath(), it.Name()))
		}
	}

	return apis.TypeDescriptor{
		Name:         n.Name(),
		PkgPath:      n.PkgPath(),
		Exported:     token.IsExported(uref.BaseName(n.Name())),
		Abstract:     n.Kind() == reflect.Interface,
		Capabilities: apis.NewCapabilitySet(caps...),
	}, nil
}

// implements checks both T and *T, so value and pointer receivers count alike.
func implements(t, iface reflect.Type) bool {
	if t.Implements(iface) {
		return true
	}
	return t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(iface)
}
