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

// Package diag collects resolution diagnostics.
package diag

import (
	"slices"
	"sync"

	"dirpx.dev/capx/apis"
)

// Diagnostic is a single (location, message) record.
type Diagnostic struct {
	Location apis.Location
	Message  string
}

// String renders "location: message".
func (d Diagnostic) String() string {
	return d.Location.String() + ": " + d.Message
}

// Collector is an apis.ErrorSink that records diagnostics in arrival order.
// The zero value is ready to use and safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

var _ apis.ErrorSink = (*Collector)(nil)

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// OnError records a diagnostic.
func (c *Collector) OnError(loc apis.Location, msg string) {
	c.mu.Lock()
	c.diags = append(c.diags, Diagnostic{Location: loc, Message: msg})
	c.mu.Unlock()
}

// Diagnostics returns a snapshot of the recorded diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.diags)
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.diags)
}

// HasErrors reports whether any diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	return c.Len() > 0
}

// Reset drops every recorded diagnostic.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.diags = nil
	c.mu.Unlock()
}
