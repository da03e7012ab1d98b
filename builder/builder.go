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

package builder

import (
	"github.com/charmbracelet/log"

	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/loader"
	"dirpx.dev/capx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
// Resolvers it builds log to logger; nil keeps them silent.
func New(logger *log.Logger) apis.Builder {
	return &builder{logger: logger}
}

// builder builds the go/packages loader and the default resolver.
type builder struct {
	logger *log.Logger
}

// BuildLoader builds a go/packages loader for cfg. When prev serves in-memory
// modules, that memory is kept in front of the new loader so registered
// modules keep resolving after a configuration change.
func (b *builder) BuildLoader(cfg apis.Config, prev apis.ModuleLoader) apis.ModuleLoader {
	next := loader.NewPackages(cfg)
	switch p := prev.(type) {
	case *loader.Memory:
		return loader.Chain(p, next)
	case *loader.Chained:
		return loader.Chain(p.Memory(), next)
	}
	return next
}

// BuildResolver builds the default resolver over l.
func (b *builder) BuildResolver(_ apis.Config, l apis.ModuleLoader) apis.Resolver {
	var opts []resolver.Option
	if b.logger != nil {
		opts = append(opts, resolver.WithLogger(b.logger))
	}
	return resolver.New(l, opts...)
}
