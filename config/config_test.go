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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/capx/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, config.DefaultDir, cfg.Dir)
	assert.Equal(t, config.DefaultTests, cfg.Tests)
	assert.Nil(t, cfg.Env)
	assert.Nil(t, cfg.BuildFlags)
	assert.Nil(t, cfg.CapabilityScope)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := config.NewConfig(
		config.WithDir("/src"),
		config.WithEnv("GOFLAGS=-mod=mod"),
		config.WithBuildFlags("-tags=a"),
		config.WithBuildFlags("-tags=b"),
		config.WithTests(true),
		config.WithCapabilityScope("example.com/ext", "", "example.com/ext", "example.com/more"),
	)

	assert.Equal(t, "/src", cfg.Dir)
	assert.Equal(t, []string{"GOFLAGS=-mod=mod"}, cfg.Env)
	assert.Equal(t, []string{"-tags=a", "-tags=b"}, cfg.BuildFlags)
	assert.True(t, cfg.Tests)
	assert.Equal(t, []string{"example.com/ext", "example.com/more"}, cfg.CapabilityScope)
}

func TestClone_DoesNotAlias(t *testing.T) {
	cfg := config.NewConfig(config.WithBuildFlags("-tags=a"), config.WithCapabilityScope("x"))
	cp := config.Clone(cfg)
	cp.BuildFlags[0] = "-race"
	cp.CapabilityScope[0] = "y"

	assert.Equal(t, "-tags=a", cfg.BuildFlags[0])
	assert.Equal(t, "x", cfg.CapabilityScope[0])
}
