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

Package cli holds settings shared by every depsolve subcommand: debug
logging, eyecandy toggles, and the oracle/optimizer knobs spec.md §9 calls
out as "recognized options". Flags take precedence over environment
variables, which take precedence over the on-disk config file.
*/
package cli

import (
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/rancher-sandbox/depsolve/internal/optimizer"
	"github.com/rancher-sandbox/depsolve/internal/solverpath"
)

// EnvSettings captures configuration shared across depsolve commands.
type EnvSettings struct {
	Debug    bool
	NoColors bool
	NoEmojis bool

	OraclePath        string
	OptimizeThreshold int
	AlwaysOptimize    bool
	Timeout           time.Duration
}

// New returns an EnvSettings populated from the on-disk config file and
// environment variables, falling back to package defaults. Call AddFlags
// afterward so flags can override both.
func New() *EnvSettings {
	env := &EnvSettings{
		OptimizeThreshold: optimizer.DefaultOptimizeThreshold,
	}

	if cfg, err := solverpath.LoadConfig(); err == nil {
		if cfg.OptimizeThreshold != nil {
			env.OptimizeThreshold = *cfg.OptimizeThreshold
		}
		if cfg.AlwaysOptimize != nil {
			env.AlwaysOptimize = *cfg.AlwaysOptimize
		}
	}

	env.Debug, _ = strconv.ParseBool(os.Getenv("DEPSOLVE_DEBUG"))
	env.NoColors, _ = strconv.ParseBool(os.Getenv("DEPSOLVE_NOCOLORS"))
	env.NoEmojis, _ = strconv.ParseBool(os.Getenv("DEPSOLVE_NOEMOJIS"))
	env.OraclePath = os.Getenv("DEPSOLVE_ORACLE")
	if v, err := strconv.Atoi(os.Getenv("DEPSOLVE_OPTIMIZE_THRESHOLD")); err == nil {
		env.OptimizeThreshold = v
	}
	if v, err := strconv.ParseBool(os.Getenv("DEPSOLVE_ALWAYS_OPTIMIZE")); err == nil {
		env.AlwaysOptimize = v
	}

	return env
}

// AddFlags registers every setting as a persistent flag, seeded with the
// value New() already derived from the environment.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable verbose logging")
	fs.BoolVar(&s.NoColors, "nocolor", s.NoColors, "disable colorized output")
	fs.BoolVar(&s.NoEmojis, "noemojis", s.NoEmojis, "disable emoji decoration")
	fs.StringVar(&s.OraclePath, "oracle", s.OraclePath, "path to an external DIMACS-speaking SAT solver binary; empty uses the built-in solver")
	fs.IntVar(&s.OptimizeThreshold, "optimize-threshold", s.OptimizeThreshold, "catalog size above which optimization is skipped in favor of the first feasible solution")
	fs.BoolVar(&s.AlwaysOptimize, "always-optimize", s.AlwaysOptimize, "force full optimization regardless of catalog size")
	fs.DurationVar(&s.Timeout, "timeout", s.Timeout, "maximum time to search for a solution (0 disables the limit)")
}

// EnvVars returns the environment variables EnvSettings responds to, for
// tests that need to scrub them between cases.
func (s *EnvSettings) EnvVars() map[string]string {
	return map[string]string{
		"DEPSOLVE_DEBUG":              strconv.FormatBool(s.Debug),
		"DEPSOLVE_NOCOLORS":           strconv.FormatBool(s.NoColors),
		"DEPSOLVE_NOEMOJIS":           strconv.FormatBool(s.NoEmojis),
		"DEPSOLVE_ORACLE":             s.OraclePath,
		"DEPSOLVE_OPTIMIZE_THRESHOLD": strconv.Itoa(s.OptimizeThreshold),
		"DEPSOLVE_ALWAYS_OPTIMIZE":    strconv.FormatBool(s.AlwaysOptimize),
	}
}
