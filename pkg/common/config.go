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

package common

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/roundrobin/pkg/tournament/schedule"
)

// File is the contents of a configuration file:
//
//	participants:
//	  - Stockfish
//	  - Leela
//	rematch: true
//	play-self: false
//	shuffle: true
//	start: 2024-03-01
//	every: 168h
//
// Every field is optional and unknown keys are ignored.
type File struct {
	schedule.Overrides `yaml:",inline"`

	Participants []string `yaml:"participants"`

	// Date of the first fixture and the time between two fixtures.
	Start string `yaml:"start"`
	Every string `yaml:"every"`
}

// Load reads the configuration file at the given path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return Parse(data)
}

// Parse decodes a configuration file.
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"participants": len(file.Participants),
	}).Debug("config: loaded file")

	return &file, nil
}

// LoadDefault loads the configuration file found by FindConfig. If there
// is no such file an empty configuration is returned.
func LoadDefault() (*File, error) {
	path := FindConfig()
	if path == "" {
		return &File{}, nil
	}

	logrus.Debugf("config: using %s", path)
	return Load(path)
}
