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

// ModuleLoader translates a module reference into the type descriptors
// the module declares. It is the only component that touches a module
// system, and therefore the natural place for test doubles.
type ModuleLoader interface {
	// GetExportedTypes returns the descriptors of every type the module declares,
	// in the module's natural order. A module that cannot be located or loaded
	// yields an error; an empty slice always means "loaded, nothing declared".
	GetExportedTypes(ref ModuleReference) ([]TypeDescriptor, error)
}

// LoaderFunc adapts a plain function to ModuleLoader.
type LoaderFunc func(ref ModuleReference) ([]TypeDescriptor, error)

// GetExportedTypes calls f(ref).
func (f LoaderFunc) GetExportedTypes(ref ModuleReference) ([]TypeDescriptor, error) {
	return f(ref)
}
