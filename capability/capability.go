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

// Package capability defines the marker interface that capability providers implement.
//
// Providers opt in by embedding Base:
//
//	type Upper struct {
//	    capability.Base
//	}
//
// Provider carries an unexported method, so it cannot be satisfied by
// accident: only types embedding Base (or interfaces embedding Provider)
// are assignable to it. Discovery is therefore nominal even though Go
// interfaces are structural.
package capability

import "reflect"

// Marker is the qualified name of Provider as it appears in capability sets.
const Marker = PkgPath + "." + MarkerName

const (
	// PkgPath is the import path of this package.
	PkgPath = "dirpx.dev/capx/capability"
	// MarkerName is the declared name of the marker interface.
	MarkerName = "Provider"
	// BaseName is the declared name of the embeddable implementation.
	BaseName = "Base"
)

// BaseQualifiedName is the qualified name of Base. Base implements the marker
// only so that it can be embedded; it is never a provider itself.
const BaseQualifiedName = PkgPath + "." + BaseName

// MarkerType is the reflect.Type of Provider.
var MarkerType = reflect.TypeOf((*Provider)(nil)).Elem()

// Provider is the marker capability.
type Provider interface {
	capabilityProvider()
}

// Base implements Provider. Embed it by value.
type Base struct{}

func (Base) capabilityProvider() {}

var _ Provider = Base{}
