//go:build !windows

/*
Copyright SUSE LLC.

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

package solverpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathsHonorXDGOverrides(t *testing.T) {
	t.Setenv(CacheHomeEnvVar, "/cache")
	t.Setenv(ConfigHomeEnvVar, "/config")
	t.Setenv(DataHomeEnvVar, "/data")

	assert.Equal(t, "/cache/depsolve", CachePath())
	assert.Equal(t, "/config/depsolve", ConfigPath())
	assert.Equal(t, "/data/depsolve", DataPath())

	t.Setenv(CacheHomeEnvVar, "/cache2")
	assert.Equal(t, "/cache2/depsolve", CachePath())
}

func TestConfigFileLocation(t *testing.T) {
	t.Setenv(ConfigHomeEnvVar, "/config")
	assert.Equal(t, "/config/depsolve/config.yaml", ConfigFile())
}
