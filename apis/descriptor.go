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

package apis

import (
	"slices"
	"strings"
)

// TypeDescriptor is the structural reflection of one type declared by a module.
// It is immutable once built by a loader; resolvers only read it.
type TypeDescriptor struct {
	// Name is the declared type name without type parameters.
	Name string
	// PkgPath is the import path of the declaring package.
	PkgPath string
	// Exported reports whether the type is visible outside its package.
	Exported bool
	// Abstract reports whether the type cannot be instantiated directly (interfaces).
	Abstract bool
	// Generic reports whether the declaration has unbound type parameters.
	Generic bool
	// Nested reports whether the type is declared inside another scope (e.g. a function body).
	Nested bool
	// Capabilities is the flattened set of interfaces the type implements.
	Capabilities CapabilitySet
}

// QualifiedName returns "pkgpath.Name", or just Name for universe types.
func (d TypeDescriptor) QualifiedName() string {
	return Qualify(d.PkgPath, d.Name)
}

// Implements reports whether capability, a qualified interface name, is in the capability set.
func (d TypeDescriptor) Implements(capability string) bool {
	return d.Capabilities.Has(capability)
}

// String implements fmt.Stringer.
func (d TypeDescriptor) String() string {
	return d.QualifiedName()
}

// Qualify joins a package path and a name the way QualifiedName does.
func Qualify(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}
	return pkgPath + "." + name
}

// CapabilitySet is an immutable, sorted set of qualified interface names.
// The zero value is an empty set.
type CapabilitySet struct {
	names []string
}

// NewCapabilitySet builds a set from names, dropping blanks and duplicates.
func NewCapabilitySet(names ...string) CapabilitySet {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return CapabilitySet{names: slices.Compact(out)}
}

// Has reports whether name is a member of the set.
func (s CapabilitySet) Has(name string) bool {
	_, ok := slices.BinarySearch(s.names, name)
	return ok
}

// Len returns the number of capabilities.
func (s CapabilitySet) Len() int {
	return len(s.names)
}

// Names returns a copy of the members in sorted order.
func (s CapabilitySet) Names() []string {
	return slices.Clone(s.names)
}

// Equal reports whether two descriptors describe the same type with the same metadata.
func (d TypeDescriptor) Equal(o TypeDescriptor) bool {
	return d.Name == o.Name &&
		d.PkgPath == o.PkgPath &&
		d.Exported == o.Exported &&
		d.Abstract == o.Abstract &&
		d.Generic == o.Generic &&
		d.Nested == o.Nested &&
		d.Capabilities.Equal(o.Capabilities)
}

// Equal reports whether both sets hold the same members.
func (s CapabilitySet) Equal(o CapabilitySet) bool {
	return slices.Equal(s.names, o.names)
}
