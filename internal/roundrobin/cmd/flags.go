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

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/pkg/common"
	"laptudirm.com/x/roundrobin/pkg/tournament/schedule"
)

// addScheduleFlags registers the flags which configure a schedule.
func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Path of the configuration file")
	cmd.Flags().BoolP("rematch", "r", false, "Play every pairing twice, with the sides swapped")
	cmd.Flags().BoolP("play-self", "s", false, "Let every participant play against itself")
	cmd.Flags().Bool("shuffle", true, "Shuffle the participants before scheduling")
	cmd.Flags().Uint64("seed", 0, "Seed for shuffling (random if unset)")
}

// loadConfig reads the configuration file given with --config, or the
// default one if the flag is unset.
func loadConfig(cmd *cobra.Command) (*common.File, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return common.LoadDefault()
	}

	return common.Load(path)
}

// templateOptions resolves the schedule options: flags set on the command
// line take precedence over the configuration file.
func templateOptions(cmd *cobra.Command, file *common.File) ([]schedule.Option, error) {
	var flags schedule.Overrides
	for name, field := range map[string]**bool{
		"rematch":   &flags.Rematch,
		"play-self": &flags.PlaySelf,
		"shuffle":   &flags.Shuffle,
	} {
		if !cmd.Flags().Changed(name) {
			continue
		}

		value, err := cmd.Flags().GetBool(name)
		if err != nil {
			return nil, fmt.Errorf("flag %s: %w", name, err)
		}

		*field = &value
	}

	overrides := file.Overrides.Merge(flags)

	options := []schedule.Option{schedule.WithOverrides(overrides)}

	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetUint64("seed")
		if err != nil {
			return nil, fmt.Errorf("flag seed: %w", err)
		}

		options = append(options, schedule.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}

	return options, nil
}
