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

package diag_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/capx/apis"
	"dirpx.dev/capx/diag"
)

func TestCollector_RecordsInOrder(t *testing.T) {
	c := diag.NewCollector()
	assert.False(t, c.HasErrors())

	c.OnError(apis.Location{File: "a.tmpl", Line: 1, Column: 2}, "first")
	c.OnError(apis.Location{}, "second")

	got := c.Diagnostics()
	require.Len(t, got, 2)
	assert.Equal(t, "a.tmpl:1:2: first", got[0].String())
	assert.Equal(t, "-: second", got[1].String())
	assert.True(t, c.HasErrors())

	got[0].Message = "mutated"
	assert.Equal(t, "first", c.Diagnostics()[0].Message)

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestCollector_Concurrent(t *testing.T) {
	var c diag.Collector
	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.OnError(apis.Location{Line: i + 1}, "x")
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, workers*100, c.Len())
}
