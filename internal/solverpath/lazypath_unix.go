//go:build !windows && !darwin

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

import "path/filepath"

func dataHome() string { return filepath.Join(homeDir(), ".local", "share") }

func configHome() string { return filepath.Join(homeDir(), ".config") }

func cacheHome() string { return filepath.Join(homeDir(), ".cache") }
