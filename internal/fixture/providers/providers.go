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

// Package providers is a fixture module declaring one type per eligibility rule.
package providers

import "dirpx.dev/capx/capability"

// A is the only capability provider of this package.
type A struct {
	capability.Base
}

// B is public and concrete but does not implement the marker.
type B struct{}

// C is abstract.
type C interface {
	capability.Provider
	Name() string
}

// d is not exported.
type d struct {
	capability.Base
}

// E is an open generic type.
type E[T any] struct {
	capability.Base
	Value T
}

// NewF returns a provider whose type is declared in a function body.
func NewF() capability.Provider {
	type F struct {
		capability.Base
	}
	return F{}
}

// Same is an alias of A and does not declare a type of its own.
type Same = A

var _ = d{}
