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

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config holds the two options spec.md §9 names as "recognized": the
// catalog-size threshold above which the Mode Selector skips optimization,
// and an override that forces optimization regardless of size.
type Config struct {
	OptimizeThreshold *int  `yaml:"optimize_threshold,omitempty"`
	AlwaysOptimize    *bool `yaml:"always_optimize,omitempty"`
}

// LoadConfig reads the config file at ConfigFile(). A missing file is not
// an error: it returns a zero Config, letting callers apply their own
// defaults.
func LoadConfig() (Config, error) {
	data, err := os.ReadFile(ConfigFile())
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, "reading config file %s", ConfigFile())
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file %s", ConfigFile())
	}
	return cfg, nil
}
