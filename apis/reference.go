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
	"errors"
	"strings"
)

var (
	// ErrEmptyReference is returned when a module reference has no path.
	ErrEmptyReference = errors.New("capx(apis): empty module reference")
	// ErrMalformedReference is returned when a module reference cannot be split into path and version.
	ErrMalformedReference = errors.New("capx(apis): malformed module reference")
)

// ModuleReference names a loadable module: an import path plus an optional version.
type ModuleReference struct {
	// Path is the import path of the module, e.g. "example.com/ext/providers".
	Path string
	// Version optionally pins the module version, e.g. "v1.2.0". Empty means any.
	Version string
}

// ParseModuleReference splits "path[@version]" into a ModuleReference.
// Surrounding whitespace is ignored.
func ParseModuleReference(s string) (ModuleReference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ModuleReference{}, ErrEmptyReference
	}
	p, v, found := strings.Cut(s, "@")
	if p == "" || (found && (v == "" || strings.Contains(v, "@"))) {
		return ModuleReference{}, ErrMalformedReference
	}
	return ModuleReference{Path: p, Version: v}, nil
}

// String renders the reference in "path[@version]" form.
func (r ModuleReference) String() string {
	if r.Version == "" {
		return r.Path
	}
	return r.Path + "@" + r.Version
}
