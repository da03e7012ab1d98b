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
	"errors"
	"fmt"

	"dirpx.dev/capx/apis"
)

var (
	// ErrModuleLoad matches every *LoadError via errors.Is.
	ErrModuleLoad = errors.New("capx(loader): module load failure")
	// ErrModuleNotFound is returned when no module is known under the requested path.
	ErrModuleNotFound = errors.New("capx(loader): module not found")
	// ErrInvalidVersion is returned when a reference carries a malformed version.
	ErrInvalidVersion = errors.New("capx(loader): invalid module version")
	// ErrVersionMismatch is returned when the loaded module does not have the requested version.
	ErrVersionMismatch = errors.New("capx(loader): module version mismatch")
	// ErrEmptyModule is returned when registering descriptors under an empty module path.
	ErrEmptyModule = errors.New("capx(loader): empty module path provided")
	// ErrNilType is returned when a nil type is registered.
	ErrNilType = errors.New("capx(loader): nil type provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a module with a different set of descriptors.
	ErrConflictingRegistration = errors.New("capx(loader): conflicting module registration")
)

// LoadError reports that a module could not be located or loaded.
// Every loader in this package fails with a *LoadError.
type LoadError struct {
	Module apis.ModuleReference
	Err    error
}

// Error implements error.
func (e *LoadError) Error() string {
	return fmt.Sprintf("capx(loader): failed to load module %v: %v", e.Module, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrModuleLoad) hold for any *LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrModuleLoad }

func loadError(ref apis.ModuleReference, err error) *LoadError {
	return &LoadError{Module: ref, Err: err}
}
