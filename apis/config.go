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

// Config carries read-only loading knobs. It is passed by value and should
// be treated as immutable by implementations.
type Config struct {
	// Dir is the directory in which the build system is queried.
	// Empty means the current working directory.
	Dir string

	// Env overrides the environment of the build system. Nil inherits the process environment.
	Env []string

	// BuildFlags are passed to the build system verbatim (e.g. "-tags=integration").
	BuildFlags []string

	// Tests includes test files of the module in the enumeration.
	Tests bool

	// CapabilityScope lists import path prefixes whose interfaces contribute
	// to a descriptor's capability set, in addition to the marker and the
	// interfaces declared by the module itself.
	CapabilityScope []string
}
