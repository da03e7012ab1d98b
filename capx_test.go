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

package capx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/capx"
	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/capability"
	"dirpx.dev/capx/config"
	"dirpx.dev/capx/diag"
	"dirpx.dev/capx/loader"
	"dirpx.dev/capx/resolver"
)

var loc = apis.Location{File: "layout.tmpl", Line: 1, Column: 1}

func memoryModule(t *testing.T) *loader.Memory {
	t.Helper()
	mem := loader.NewMemory()
	require.NoError(t, mem.Register("example.com/ext",
		apis.TypeDescriptor{Name: "Upper", Exported: true, Capabilities: apis.NewCapabilitySet(capability.Marker)},
		apis.TypeDescriptor{Name: "lower", Capabilities: apis.NewCapabilitySet(capability.Marker)},
	))
	return mem
}

// recordingBuilder counts builds and serves a fixed loader.
type recordingBuilder struct {
	loaders   int
	resolvers int
	lastPrev  apis.ModuleLoader
	ld        apis.ModuleLoader
	nilLoader bool
}

func (b *recordingBuilder) BuildLoader(_ apis.Config, prev apis.ModuleLoader) apis.ModuleLoader {
	b.loaders++
	b.lastPrev = prev
	if b.nilLoader {
		return nil
	}
	return b.ld
}

func (b *recordingBuilder) BuildResolver(_ apis.Config, l apis.ModuleLoader) apis.Resolver {
	b.resolvers++
	return resolver.New(l)
}

func TestDefaults(t *testing.T) {
	t.Cleanup(capx.Reset)
	capx.Reset()

	assert.Equal(t, config.DefaultConfig(), capx.Config())
	assert.IsType(t, &loader.Packages{}, capx.Loader())
	assert.NotNil(t, capx.Resolver())
	assert.NotNil(t, capx.Builder())
	assert.False(t, capx.IsLoaderPinned())
}

func TestResolve_EmptyName(t *testing.T) {
	t.Cleanup(capx.Reset)
	sink := diag.NewCollector()

	got := capx.Resolve("", loc, sink)

	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, 1, sink.Len())
}

func TestSetLoader_PinsAcrossConfigChanges(t *testing.T) {
	t.Cleanup(capx.Reset)
	mem := memoryModule(t)

	capx.SetLoader(mem)
	assert.True(t, capx.IsLoaderPinned())
	assert.Same(t, mem, capx.Loader())

	capx.SetConfig(config.NewConfig(config.WithTests(true)))
	assert.Same(t, mem, capx.Loader(), "pinned loader must survive SetConfig")
	assert.True(t, capx.Config().Tests)

	sink := diag.NewCollector()
	got := capx.Resolve("example.com/ext", loc, sink)
	require.Len(t, got, 1)
	assert.Equal(t, "Upper", got[0].Name)
	assert.Equal(t, 0, sink.Len())

	capx.SetLoader(nil)
	assert.Same(t, mem, capx.Loader())
}

func TestUnpinLoader_KeepsMemoryInFront(t *testing.T) {
	t.Cleanup(capx.Reset)
	mem := memoryModule(t)
	capx.SetLoader(mem)

	capx.UnpinLoader()
	assert.False(t, capx.IsLoaderPinned())
	chained, ok := capx.Loader().(*loader.Chained)
	require.True(t, ok)
	assert.Same(t, mem, chained.Memory())

	got := capx.Resolve("example.com/ext", loc, diag.NewCollector())
	require.Len(t, got, 1)
	assert.Equal(t, "Upper", got[0].Name)
}

func TestSetBuilder(t *testing.T) {
	t.Cleanup(capx.Reset)
	mem := memoryModule(t)
	b := &recordingBuilder{ld: mem}
	prev := capx.Loader()

	capx.SetBuilder(b)
	assert.Same(t, b, capx.Builder())
	assert.Equal(t, 1, b.loaders)
	assert.Equal(t, 1, b.resolvers)
	assert.Same(t, prev, b.lastPrev)
	assert.Same(t, mem, capx.Loader())

	capx.SetConfig(config.DefaultConfig())
	assert.Equal(t, 2, b.loaders)
	assert.Equal(t, 2, b.resolvers)

	capx.SetBuilder(nil)
	assert.Same(t, b, capx.Builder())
}

func TestSetBuilder_NilLoaderPanics(t *testing.T) {
	t.Cleanup(capx.Reset)
	b := &recordingBuilder{nilLoader: true}

	assert.PanicsWithValue(t, capx.ErrNilLoader, func() { capx.SetBuilder(b) })
	assert.NotSame(t, b, capx.Builder(), "failed build must not publish")
}

func TestConfig_ReturnsCopy(t *testing.T) {
	t.Cleanup(capx.Reset)
	capx.SetConfig(config.NewConfig(config.WithBuildFlags("-tags=x")))

	cfg := capx.Config()
	cfg.BuildFlags[0] = "-race"
	assert.Equal(t, []string{"-tags=x"}, capx.Config().BuildFlags)
}
