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

// Resolver discovers the capability providers of a named module.
// Typical wiring: Resolver -> ModuleLoader -> eligibility predicate.
type Resolver interface {
	// Resolve returns the eligible providers declared by the module called name,
	// in loader order. It never returns nil and never panics: failures are
	// recorded into sink at loc and an empty slice is returned.
	Resolve(name string, loc Location, sink ErrorSink) []TypeDescriptor
}
