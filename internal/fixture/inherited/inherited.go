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

// Package inherited is a fixture module exercising transitive and duck-typed capabilities.
package inherited

import (
	"fmt"

	"dirpx.dev/capx/internal/fixture/providers"
)

// Derived implements the marker through an embedded provider.
type Derived struct {
	providers.A
}

// ByPointer implements the marker through an embedded pointer.
type ByPointer struct {
	*providers.A
}

// Lookalike declares a method with the marker's name, which does not make it a provider.
type Lookalike struct{}

func (Lookalike) capabilityProvider() {}

// Named is a capability declared by this package.
type Named interface {
	fmt.Stringer
	Kind() string
}

// Upper implements Named but not the marker.
type Upper struct{}

func (Upper) String() string { return "upper" }

// Kind implements Named.
func (*Upper) Kind() string { return "text" }

var _ = Lookalike{}.capabilityProvider
