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

package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/predicate"
)

// MsgEmptyModuleName is recorded when a resolution is requested without a module name.
const MsgEmptyModuleName = "module name cannot be empty"

var (
	// ErrNilLoader is reported when the resolver has no loader to delegate to.
	ErrNilLoader = errors.New("capx(resolver): nil module loader")
	// ErrLoaderPanic is reported when the loader panicked.
	ErrLoaderPanic = errors.New("capx(resolver): module loader panicked")
	// ErrRulePanic is reported when an eligibility rule panicked.
	ErrRulePanic = errors.New("capx(resolver): eligibility rule panicked")
)

// Option configures a resolver.
type Option func(*resolver)

// WithLogger logs resolution outcomes to logger. The default is silent.
func WithLogger(logger *log.Logger) Option {
	return func(r *resolver) {
		r.logger = logger
	}
}

// WithRule restricts the result further. Rules are ANDed on top of
// predicate.Eligible and cannot admit an ineligible type.
func WithRule(rule predicate.Rule) Option {
	return func(r *resolver) {
		if rule != nil {
			r.rules = append(r.rules, rule)
		}
	}
}

// New constructs an apis.Resolver delegating to l. The returned resolver holds
// no mutable state and is safe for concurrent use provided l is.
func New(l apis.ModuleLoader, opts ...Option) apis.Resolver {
	r := &resolver{loader: l}
	for _, opt := range opts {
		opt(r)
	}
	r.accept = predicate.All(append([]predicate.Rule{predicate.Eligible}, r.rules...)...)
	return r
}

// resolver is an immutable Resolver over a single loader.
type resolver struct {
	loader apis.ModuleLoader
	logger *log.Logger
	rules  []predicate.Rule
	accept predicate.Rule
}

// Resolve implements apis.Resolver. Every call loads and filters from scratch.
func (r *resolver) Resolve(name string, loc apis.Location, sink apis.ErrorSink) []apis.TypeDescriptor {
	if strings.TrimSpace(name) == "" {
		r.report(sink, loc, MsgEmptyModuleName)
		return []apis.TypeDescriptor{}
	}

	types, err := r.load(name)
	if err != nil {
		r.report(sink, loc, fmt.Sprintf("cannot load capability providers from module %q: %v", name, err))
		return []apis.TypeDescriptor{}
	}

	out, err := r.filter(types)
	if err != nil {
		r.report(sink, loc, fmt.Sprintf("cannot select capability providers from module %q: %v", name, err))
		return []apis.TypeDescriptor{}
	}
	if r.logger != nil {
		r.logger.Debug("resolved capability providers", "module", name, "loaded", len(types), "accepted", len(out))
	}
	return out
}

// load calls the loader, converting a panic into an error.
func (r *resolver) load(name string) (types []apis.TypeDescriptor, err error) {
	ref, err := apis.ParseModuleReference(name)
	if err != nil {
		return nil, err
	}
	if r.loader == nil {
		return nil, ErrNilLoader
	}
	defer func() {
		if p := recover(); p != nil {
			types, err = nil, fmt.Errorf("%w: %v", ErrLoaderPanic, p)
		}
	}()
	return r.loader.GetExportedTypes(ref)
}

// filter applies the acceptance rules, converting a panic raised by a
// caller-supplied rule into an error.
func (r *resolver) filter(in []apis.TypeDescriptor) (out []apis.TypeDescriptor, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = nil, fmt.Errorf("%w: %v", ErrRulePanic, p)
		}
	}()
	return predicate.Filter(in, r.accept), nil
}

func (r *resolver) report(sink apis.ErrorSink, loc apis.Location, msg string) {
	if r.logger != nil {
		r.logger.Warn(msg, "location", loc.String())
	}
	if sink != nil {
		sink.OnError(loc, msg)
	}
}
