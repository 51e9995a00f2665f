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

package schedule

import "math/rand/v2"

// Config is a fully resolved scheduler configuration.
type Config struct {
	// Play a second, role-swapped pass over the field.
	Rematch bool `yaml:"rematch" json:"rematch"`

	// Pad the field with a self slot so that every participant plays
	// against itself once per pass.
	PlaySelf bool `yaml:"play-self" json:"play-self"`

	// Randomize the order of the participants before scheduling.
	Shuffle bool `yaml:"shuffle" json:"shuffle"`
}

// DefaultConfig returns the configuration used for every unset option.
func DefaultConfig() Config {
	return Config{
		Rematch:  false,
		PlaySelf: false,
		Shuffle:  true,
	}
}

// Overrides is a partial configuration, usually decoded from a config
// file. Nil fields are left at their default values. Unknown keys in the
// source document are ignored by the decoder.
type Overrides struct {
	Rematch  *bool `yaml:"rematch"`
	PlaySelf *bool `yaml:"play-self"`
	Shuffle  *bool `yaml:"shuffle"`
}

// Resolve merges the overrides on top of DefaultConfig.
func (overrides Overrides) Resolve() Config {
	return overrides.apply(DefaultConfig())
}

func (overrides Overrides) apply(config Config) Config {
	if overrides.Rematch != nil {
		config.Rematch = *overrides.Rematch
	}

	if overrides.PlaySelf != nil {
		config.PlaySelf = *overrides.PlaySelf
	}

	if overrides.Shuffle != nil {
		config.Shuffle = *overrides.Shuffle
	}

	return config
}

// Merge returns the overrides with every field set in other replacing the
// receiver's value.
func (overrides Overrides) Merge(other Overrides) Overrides {
	if other.Rematch != nil {
		overrides.Rematch = other.Rematch
	}

	if other.PlaySelf != nil {
		overrides.PlaySelf = other.PlaySelf
	}

	if other.Shuffle != nil {
		overrides.Shuffle = other.Shuffle
	}

	return overrides
}

// Option configures a Template.
type Option func(*Template)

func WithRematch(rematch bool) Option {
	return func(t *Template) { t.config.Rematch = rematch }
}

func WithPlaySelf(playSelf bool) Option {
	return func(t *Template) { t.config.PlaySelf = playSelf }
}

func WithShuffle(shuffle bool) Option {
	return func(t *Template) { t.config.Shuffle = shuffle }
}

// WithConfig replaces the whole configuration.
func WithConfig(config Config) Option {
	return func(t *Template) { t.config = config }
}

// WithOverrides applies a partial configuration on top of the options
// given before it.
func WithOverrides(overrides Overrides) Option {
	return func(t *Template) { t.config = overrides.apply(t.config) }
}

// WithRand sets the random source used for shuffling. A *rand.Rand is not
// safe for concurrent use, so schedules sharing one must not be created or
// reshuffled concurrently.
func WithRand(r *rand.Rand) Option {
	return func(t *Template) { t.rand = r }
}
