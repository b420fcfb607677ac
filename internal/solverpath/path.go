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

Package solverpath calculates filesystem paths to depsolve's
configuration, cache and data, the way helm/hypper's hypperpath package
does, but resolving the user's home directory with the standard library
instead of k8s.io/client-go/util/homedir.
*/
package solverpath

const lp = lazypath("depsolve")

// ConfigPath returns the path where depsolve stores its config file.
func ConfigPath(elem ...string) string { return lp.configPath(elem...) }

// CachePath returns the path where depsolve stores cached objects.
func CachePath(elem ...string) string { return lp.cachePath(elem...) }

// DataPath returns the path where depsolve stores data.
func DataPath(elem ...string) string { return lp.dataPath(elem...) }

// ConfigFile is the path to the recognized config file holding
// optimize_threshold and always_optimize, per spec.md §9.
func ConfigFile() string { return ConfigPath("config.yaml") }
