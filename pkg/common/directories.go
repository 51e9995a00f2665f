// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package common locates and loads the roundrobin configuration file.
package common

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Name of the configuration file, relative to the XDG config directories.
var ConfigName = filepath.Join("roundrobin", "config.yaml")

// FindConfig returns the path of the first configuration file found in
// the XDG config directories, or an empty string if there is none.
func FindConfig() string {
	path, err := xdg.SearchConfigFile(ConfigName)
	if err != nil {
		return ""
	}

	return path
}
