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

package config

import (
	"slices"

	"dirpx.dev/capx/apis"
)

const (
	// DefaultDir represents the default for Dir: the current working directory.
	DefaultDir = ""
	// DefaultTests represents the default for Tests.
	// Test files are not enumerated unless asked for.
	DefaultTests = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Dir:   DefaultDir,
		Tests: DefaultTests,
	}
}

// Clone returns a copy of cfg that shares no slices with it.
func Clone(cfg apis.Config) apis.Config {
	cfg.Env = slices.Clone(cfg.Env)
	cfg.BuildFlags = slices.Clone(cfg.BuildFlags)
	cfg.CapabilityScope = slices.Clone(cfg.CapabilityScope)
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithDir sets the Dir option.
func WithDir(dir string) Option {
	return func(c *apis.Config) {
		c.Dir = dir
	}
}

// WithEnv sets the Env option. A nil env inherits the process environment.
func WithEnv(env ...string) Option {
	return func(c *apis.Config) {
		c.Env = slices.Clone(env)
	}
}

// WithBuildFlags appends build flags.
func WithBuildFlags(flags ...string) Option {
	return func(c *apis.Config) {
		c.BuildFlags = append(c.BuildFlags, flags...)
	}
}

// WithTests sets the Tests option.
func WithTests(include bool) Option {
	return func(c *apis.Config) {
		c.Tests = include
	}
}

// WithCapabilityScope appends import path prefixes to CapabilityScope.
// Empty prefixes are ignored.
func WithCapabilityScope(prefixes ...string) Option {
	return func(c *apis.Config) {
		for _, p := range prefixes {
			if p != "" && !slices.Contains(c.CapabilityScope, p) {
				c.CapabilityScope = append(c.CapabilityScope, p)
			}
		}
	}
}
