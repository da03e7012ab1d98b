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

// Package capx discovers capability providers exported by Go modules.
//
// A capability provider is a type that a host (typically a template or
// compilation pipeline) can instantiate as an extension. capx answers one
// question at build/parse time:
//
//	"Which types of module M are concrete, independently usable,
//	 externally visible implementations of capability.Provider?"
//
// # Design
//
// Two collaborators do the work:
//
//   - ModuleLoader (apis.ModuleLoader): turns a module reference into the
//     descriptors of every type the module declares. The default loader
//     (loader.Packages) queries the go command through go/packages and reads
//     type-checker output; loader.Memory and loader.Runtime serve fixed or
//     reflected descriptors. This is the only component that performs I/O.
//
//   - Resolver (apis.Resolver): validates the module name, delegates to the
//     loader and keeps the descriptors accepted by predicate.Eligible, in
//     loader order.
//
// A descriptor is eligible when all of the following hold:
//
//  1. the type is exported;
//  2. it is not an interface;
//  3. it has no unbound type parameters;
//  4. it is declared at package scope;
//  5. its capability set contains capability.Marker.
//
// # Errors
//
// Resolve never panics and never returns an error. An empty module name or a
// failing loader (including one that panics) produces exactly one diagnostic,
// recorded into the caller's apis.ErrorSink at the caller's apis.Location,
// and an empty result. Ineligible types are dropped silently.
//
// # Global API
//
// The package keeps a process-wide snapshot of Config, ModuleLoader,
// Resolver and Builder behind an atomic pointer:
//
//	got := capx.Resolve("example.com/ext/providers", loc, sink)
//
// Reads are lock-free. Writers (SetConfig, SetLoader, SetBuilder, Reset)
// take a short build mutex, assemble a new snapshot and publish it.
// SetLoader pins the loader so configuration changes do not rebuild it
// until UnpinLoader.
//
// Resolution results are never cached: every call reloads the module.
package capx
