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
	"os"
	"path/filepath"
)

const (
	// CacheHomeEnvVar is the XDG cache directory override.
	CacheHomeEnvVar = "XDG_CACHE_HOME"
	// ConfigHomeEnvVar is the XDG config directory override.
	ConfigHomeEnvVar = "XDG_CONFIG_HOME"
	// DataHomeEnvVar is the XDG data directory override.
	DataHomeEnvVar = "XDG_DATA_HOME"
)

// lazypath is an application name whose path methods are resolved lazily
// against the environment at call time, so tests can override XDG_* vars
// per case instead of at process start.
type lazypath string

func (l lazypath) cachePath(elem ...string) string {
	base := os.Getenv(CacheHomeEnvVar)
	if base == "" {
		base = cacheHome()
	}
	return filepath.Join(append([]string{base, string(l)}, elem...)...)
}

func (l lazypath) configPath(elem ...string) string {
	base := os.Getenv(ConfigHomeEnvVar)
	if base == "" {
		base = configHome()
	}
	return filepath.Join(append([]string{base, string(l)}, elem...)...)
}

func (l lazypath) dataPath(elem ...string) string {
	base := os.Getenv(DataHomeEnvVar)
	if base == "" {
		base = dataHome()
	}
	return filepath.Join(append([]string{base, string(l)}, elem...)...)
}

// homeDir returns the invoking user's home directory, or "" if it cannot
// be determined (os.UserHomeDir's error is not actionable here: every
// caller falls back to a relative path in that case).
func homeDir() string {
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}
