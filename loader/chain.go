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

	"dirpx.dev/capx/apis"
)

// Chained serves modules registered in memory first and falls back to next
// for modules memory does not know. Any other memory failure is final.
type Chained struct {
	mem  *Memory
	next apis.ModuleLoader
}

var _ apis.ModuleLoader = (*Chained)(nil)

// Chain returns a loader consulting mem, then next. A nil mem is replaced by an empty one.
func Chain(mem *Memory, next apis.ModuleLoader) *Chained {
	if mem == nil {
		mem = NewMemory()
	}
	return &Chained{mem: mem, next: next}
}

// Memory returns the in-memory front of the chain.
func (c *Chained) Memory() *Memory { return c.mem }

// GetExportedTypes implements apis.ModuleLoader.
func (c *Chained) GetExportedTypes(ref apis.ModuleReference) ([]apis.TypeDescriptor, error) {
	types, err := c.mem.GetExportedTypes(ref)
	if err == nil || c.next == nil || !errors.Is(err, ErrModuleNotFound) {
		return types, err
	}
	return c.next.GetExportedTypes(ref)
}
