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

package capx

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/builder"
	"dirpx.dev/capx/config"
)

// init initializes the global state.
func init() {
	st.Store(defaultState())
}

var (
	// ErrNilLoader is returned when a builder returns a nil loader.
	ErrNilLoader = errors.New("capx: builder returned nil loader")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("capx: builder returned nil resolver")
)

// state is an immutable snapshot of the global configuration.
type state struct {
	// cfg is the active configuration.
	cfg apis.Config
	// ld is the active module loader.
	ld apis.ModuleLoader
	// res is the active resolver, built over ld.
	res apis.Resolver
	// bld builds ld and res.
	bld apis.Builder
	// pld reports whether ld was set explicitly and must not be rebuilt.
	pld bool
}

var (
	// st holds the current snapshot.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
)

func defaultState() *state {
	cfg := config.DefaultConfig()
	b := builder.New(nil)
	ld := b.BuildLoader(cfg, nil)
	return &state{cfg: cfg, ld: ld, res: b.BuildResolver(cfg, ld), bld: b}
}

// Resolve discovers the capability providers of module name using the global
// resolver. Failures are recorded into sink at loc; the result is never nil.
func Resolve(name string, loc apis.Location, sink apis.ErrorSink) []apis.TypeDescriptor {
	return st.Load().res.Resolve(name, loc, sink)
}

// Config returns the global configuration.
func Config() apis.Config {
	return config.Clone(st.Load().cfg)
}

// SetConfig replaces the global configuration and rebuilds the loader
// (unless pinned) and the resolver.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	cfg = config.Clone(cfg)
	publish(old.bld, cfg, old.ld, old.pld)
}

// Loader returns the global module loader.
func Loader() apis.ModuleLoader {
	return st.Load().ld
}

// SetLoader replaces the global loader with l and pins it: configuration
// changes no longer rebuild it until UnpinLoader. A nil l is ignored.
func SetLoader(l apis.ModuleLoader) {
	if l == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	res := old.bld.BuildResolver(old.cfg, l)
	if res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&state{cfg: old.cfg, ld: l, res: res, bld: old.bld, pld: true})
}

// IsLoaderPinned reports whether the global loader was set explicitly.
func IsLoaderPinned() bool {
	return st.Load().pld
}

// UnpinLoader lets the builder own the loader again and rebuilds it.
func UnpinLoader() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(old.bld, old.cfg, old.ld, false)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the global builder and rebuilds the non-pinned layers.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(b, old.cfg, old.ld, old.pld)
}

// Reset restores the default builder, configuration and loader.
// It is mainly used by tests to get a clean state.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(defaultState())
}

// publish builds a new snapshot from b and stores it. Callers hold buildMu.
func publish(b apis.Builder, cfg apis.Config, prev apis.ModuleLoader, pinned bool) {
	ld := prev
	if !pinned {
		ld = b.BuildLoader(cfg, prev)
	}
	if ld == nil {
		panic(ErrNilLoader)
	}
	res := b.BuildResolver(cfg, ld)
	if res == nil {
		panic(ErrNilResolver)
	}
	st.Store(&state{cfg: cfg, ld: ld, res: res, bld: b, pld: pinned})
}
