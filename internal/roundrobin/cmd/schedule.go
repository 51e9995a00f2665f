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
	"slices"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/roundrobin/internal/util"
	"laptudirm.com/x/roundrobin/pkg/common"
	"laptudirm.com/x/roundrobin/pkg/tournament/calendar"
	"laptudirm.com/x/roundrobin/pkg/tournament/schedule"
)

// roundrobin schedule
func Schedule() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule [participants...]",
		Short: "Print the schedule of a round-robin tournament",
		Long: heredoc.Doc(`schedule prints the rounds, fixtures and games of a
			round-robin tournament between the given participants.

			If no participants are given on the command line, the
			participants listed in the configuration file are used.
			Participants paired with the bye of an odd-sized field sit
			out that fixture.

			With --start, every fixture is given a date, starting from
			the given one and advancing by --every for each fixture.`),
		Example: heredoc.Doc(`
			$ roundrobin schedule Stockfish Leela Berserk Ethereal
			$ roundrobin schedule --rematch --no-shuffle -f yaml A B C
			$ roundrobin schedule --sort --no-shuffle P10 P2 P1 P3
			$ roundrobin schedule --start 2024-03-01 --every 24h A B C D`),

		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			options, err := templateOptions(cmd, file)
			if err != nil {
				return err
			}

			participants := args
			if len(participants) == 0 {
				participants = file.Participants
			}

			if len(participants) == 0 {
				logrus.Warn("schedule: no participants")
			}

			if sorted, _ := cmd.Flags().GetBool("sort"); sorted {
				participants = slices.Clone(participants)
				slices.SortFunc(participants, util.NaturalCompare)
			}

			cal, err := scheduleCalendar(cmd, file)
			if err != nil {
				return err
			}

			format, _ := cmd.Flags().GetString("format")
			renderer, err := newRenderer(format)
			if err != nil {
				return err
			}

			tmpl := schedule.New(options...)
			sched := schedule.Create(tmpl, participants)

			logrus.WithFields(logrus.Fields{
				"rounds":   sched.RoundCount(),
				"fixtures": sched.FixtureCount(),
				"games":    sched.GameCount(),
			}).Debug("schedule: created")

			return renderer(cmd.OutOrStdout(), sched, cal)
		},
	}

	addScheduleFlags(cmd)
	cmd.Flags().StringP("format", "f", "text", "Output format: text, yaml or json")
	cmd.Flags().Bool("sort", false, "Sort the participants in natural order before scheduling")
	cmd.Flags().String("start", "", "Date of the first fixture")
	cmd.Flags().Duration("every", calendar.DefaultInterval, "Time between two fixtures")

	// --no-shuffle is easier to type than --shuffle=false.
	cmd.Flags().Bool("no-shuffle", false, "Keep the participants in the given order")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("no-shuffle") {
			noShuffle, _ := cmd.Flags().GetBool("no-shuffle")
			return cmd.Flags().Set("shuffle", fmt.Sprint(!noShuffle))
		}

		return nil
	}

	return cmd
}

// scheduleCalendar builds the calendar from the --start and --every flags,
// falling back to the configuration file. It returns nil if no start date
// is given.
func scheduleCalendar(cmd *cobra.Command, file *common.File) (*calendar.Calendar, error) {
	start, _ := cmd.Flags().GetString("start")
	if start == "" {
		start = file.Start
	}

	if start == "" {
		return nil, nil
	}

	every, _ := cmd.Flags().GetDuration("every")
	if !cmd.Flags().Changed("every") && file.Every != "" {
		var err error
		every, err = time.ParseDuration(file.Every)
		if err != nil {
			return nil, fmt.Errorf("schedule: invalid interval %q: %w", file.Every, err)
		}
	}

	return calendar.New(start, every)
}
