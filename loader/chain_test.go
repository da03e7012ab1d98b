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

package loader_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/loader"
)

func TestChain(t *testing.T) {
	mem := loader.NewMemory()
	require.NoError(t, mem.Register("m", descA))

	var fallbackRefs []string
	fallback := apis.LoaderFunc(func(ref apis.ModuleReference) ([]apis.TypeDescriptor, error) {
		fallbackRefs = append(fallbackRefs, ref.Path)
		if ref.Path == "broken" {
			return nil, errors.New("disk on fire")
		}
		return []apis.TypeDescriptor{descB}, nil
	})
	c := loader.Chain(mem, fallback)
	assert.Same(t, mem, c.Memory())

	got, err := c.GetExportedTypes(apis.ModuleReference{Path: "m"})
	require.NoError(t, err)
	assert.Equal(t, "A", got[0].Name)

	got, err = c.GetExportedTypes(apis.ModuleReference{Path: "other"})
	require.NoError(t, err)
	assert.Equal(t, "B", got[0].Name)

	_, err = c.GetExportedTypes(apis.ModuleReference{Path: "broken"})
	assert.EqualError(t, err, "disk on fire")
	assert.Equal(t, []string{"other", "broken"}, fallbackRefs)
}

func TestChain_NoFallback(t *testing.T) {
	c := loader.Chain(nil, nil)
	require.NotNil(t, c.Memory())

	_, err := c.GetExportedTypes(apis.ModuleReference{Path: "m"})
	assert.ErrorIs(t, err, loader.ErrModuleNotFound)
}
