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
	"slices"
	"sync"

	"dirpx.dev/capx/apis"
)

// Memory is an in-memory ModuleLoader serving fixed descriptor sequences,
// keyed by module path. Versions in references are ignored.
//
// It is safe for concurrent use; reads do not take the lock.
type Memory struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps module path to its descriptors.
	m sync.Map // map[string][]apis.TypeDescriptor
	// count tracks the number of registered modules.
	count int
}

var _ apis.ModuleLoader = (*Memory)(nil)

// NewMemory returns an empty Memory loader.
func NewMemory() *Memory {
	return &Memory{}
}

// Register associates module with types, in the given order.
// It is idempotent for the same (module, types) pair.
func (l *Memory) Register(module string, types ...apis.TypeDescriptor) error {
	if module == "" {
		return ErrEmptyModule
	}
	types = slices.Clone(types)
	if types == nil {
		types = []apis.TypeDescriptor{}
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := l.m.Load(module); ok {
		return sameOrConflict(old.([]apis.TypeDescriptor), types)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := l.m.Load(module); ok {
		return sameOrConflict(old.([]apis.TypeDescriptor), types)
	}

	l.m.Store(module, types)
	l.count++
	return nil
}

func sameOrConflict(old, types []apis.TypeDescriptor) error {
	if slices.EqualFunc(old, types, apis.TypeDescriptor.Equal) {
		return nil
	}
	return ErrConflictingRegistration
}

// Lookup returns a copy of the descriptors registered for module.
func (l *Memory) Lookup(module string) ([]apis.TypeDescriptor, bool) {
	v, ok := l.m.Load(module)
	if !ok {
		return nil, false
	}
	return slices.Clone(v.([]apis.TypeDescriptor)), true
}

// GetExportedTypes implements apis.ModuleLoader.
func (l *Memory) GetExportedTypes(ref apis.ModuleReference) ([]apis.TypeDescriptor, error) {
	types, ok := l.Lookup(ref.Path)
	if !ok {
		return nil, loadError(ref, ErrModuleNotFound)
	}
	return types, nil
}

// Modules returns the registered module paths in sorted order.
func (l *Memory) Modules() []string {
	out := make([]string, 0, l.Count())
	l.m.Range(func(key, _ any) bool {
		out = append(out, key.(string))
		return true
	})
	slices.Sort(out)
	return out
}

// Count returns the number of registered modules.
func (l *Memory) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Reset drops every registered module.
func (l *Memory) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.m.Range(func(key, _ any) bool {
		l.m.Delete(key)
		return true
	})
	l.count = 0
}
