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

// Package predicate classifies type descriptors as capability providers.
//
// Each rule is an independent check over static metadata only; nothing is
// instantiated. Eligible is the conjunction of all five rules.
package predicate

import (
	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/capability"
)

// Rule reports whether a descriptor passes one eligibility check.
type Rule func(d apis.TypeDescriptor) bool

// IsPublic rejects types that are not visible outside their package.
func IsPublic(d apis.TypeDescriptor) bool { return d.Exported }

// IsConcrete rejects abstract types, which cannot be instantiated directly.
func IsConcrete(d apis.TypeDescriptor) bool { return !d.Abstract }

// IsClosed rejects open generic types; no type arguments are available at discovery time.
func IsClosed(d apis.TypeDescriptor) bool { return !d.Generic }

// IsTopLevel rejects types declared inside another scope.
func IsTopLevel(d apis.TypeDescriptor) bool { return !d.Nested }

// ImplementsMarker requires the marker capability in the descriptor's capability set.
// capability.Base carries the marker for embedding and is rejected.
func ImplementsMarker(d apis.TypeDescriptor) bool {
	return d.Implements(capability.Marker) && d.QualifiedName() != capability.BaseQualifiedName
}

// All combines rules by logical AND. Nil rules are ignored; All() accepts everything.
func All(rules ...Rule) Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		if r != nil {
			out = append(out, r)
		}
	}
	return func(d apis.TypeDescriptor) bool {
		for _, r := range out {
			if !r(d) {
				return false
			}
		}
		return true
	}
}

// Eligible is the fixed provider eligibility predicate.
var Eligible = All(IsPublic, IsConcrete, IsClosed, IsTopLevel, ImplementsMarker)

// IsProvider reports whether d is a valid capability provider.
func IsProvider(d apis.TypeDescriptor) bool {
	return Eligible(d)
}

// Filter returns the descriptors accepted by rule, preserving order.
// It never returns nil.
func Filter(in []apis.TypeDescriptor, rule Rule) []apis.TypeDescriptor {
	out := make([]apis.TypeDescriptor, 0, len(in))
	for _, d := range in {
		if rule(d) {
			out = append(out, d)
		}
	}
	return out
}
