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
	"strconv"

	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/pkg/tournament/schedule"
)

// roundrobin count
func Count() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count participant-count",
		Short: "Print the size of a round-robin tournament",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("count: invalid participant count %q", args[0])
			}

			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			options, err := templateOptions(cmd, file)
			if err != nil {
				return err
			}

			// Only the size of the field matters, not who is in it.
			sched := schedule.Create(schedule.New(options...), make([]int, n))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Rounds:   %d\n", sched.RoundCount())
			fmt.Fprintf(out, "Fixtures: %d\n", sched.FixtureCount())
			fmt.Fprintf(out, "Games:    %d\n", sched.GameCount())
			return nil
		},
	}

	addScheduleFlags(cmd)
	return cmd
}
