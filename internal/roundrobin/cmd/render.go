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
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/roundrobin/pkg/tournament/calendar"
	"laptudirm.com/x/roundrobin/pkg/tournament/schedule"
)

const dateFormat = "2006-01-02"

// renderer writes a schedule to w. The calendar may be nil.
type renderer func(w io.Writer, sched *schedule.Schedule[string], cal *calendar.Calendar) error

func newRenderer(format string) (renderer, error) {
	switch format {
	case "text", "":
		return renderText, nil
	case "yaml":
		return renderYAML, nil
	case "json":
		return renderJSON, nil
	default:
		return nil, fmt.Errorf("schedule: invalid format %s", format)
	}
}

func renderText(w io.Writer, sched *schedule.Schedule[string], cal *calendar.Calendar) error {
	r := lipgloss.NewRenderer(w)

	roundStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	fixtureStyle := r.NewStyle().Foreground(lipgloss.Color("3"))
	dateStyle := r.NewStyle().Foreground(lipgloss.Color("#888888"))
	byeStyle := r.NewStyle().Foreground(lipgloss.Color("1"))

	var b strings.Builder
	fixtureIndex := 0
	for round := range sched.Rounds() {
		title := fmt.Sprintf("Round %d", round.Number)
		if round.Rematch {
			title += " (rematch)"
		}
		fmt.Fprintln(&b, roundStyle.Render(title))

		for fixture := range round.Fixtures() {
			header := fixtureStyle.Render(fmt.Sprintf("Fixture %d", fixture.Number))
			if cal != nil {
				header += " " + dateStyle.Render(cal.Date(fixtureIndex).Format(dateFormat))
			}
			fmt.Fprintf(&b, "  %s\n", header)

			for game := range fixture.Games() {
				fmt.Fprintf(&b, "    %s\n", game)
			}

			if bye, ok := fixture.Bye(); ok {
				fmt.Fprintf(&b, "    %s\n", byeStyle.Render(bye+" rests"))
			}

			fixtureIndex++
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type roundDocument struct {
	Number   int               `yaml:"round" json:"round"`
	Rematch  bool              `yaml:"rematch,omitempty" json:"rematch,omitempty"`
	Fixtures []fixtureDocument `yaml:"fixtures" json:"fixtures"`
}

type fixtureDocument struct {
	Number int                     `yaml:"fixture" json:"fixture"`
	Date   string                  `yaml:"date,omitempty" json:"date,omitempty"`
	Games  []schedule.Game[string] `yaml:"games" json:"games"`
	Bye    string                  `yaml:"bye,omitempty" json:"bye,omitempty"`
}

type scheduleDocument struct {
	Config       schedule.Config `yaml:"config" json:"config"`
	Participants []string        `yaml:"participants" json:"participants"`
	Rounds       []roundDocument `yaml:"rounds" json:"rounds"`
}

func document(sched *schedule.Schedule[string], cal *calendar.Calendar) scheduleDocument {
	doc := scheduleDocument{
		Config:       sched.Config(),
		Participants: sched.Field().Participants(),
		Rounds:       []roundDocument{},
	}

	fixtureIndex := 0
	for round := range sched.Rounds() {
		rd := roundDocument{Number: round.Number, Rematch: round.Rematch}
		for fixture := range round.Fixtures() {
			fd := fixtureDocument{
				Number: fixture.Number,
				Games:  fixture.All(),
			}

			if fd.Games == nil {
				fd.Games = []schedule.Game[string]{}
			}

			if cal != nil {
				fd.Date = cal.Date(fixtureIndex).Format(dateFormat)
			}

			if bye, ok := fixture.Bye(); ok {
				fd.Bye = bye
			}

			rd.Fixtures = append(rd.Fixtures, fd)
			fixtureIndex++
		}

		doc.Rounds = append(doc.Rounds, rd)
	}

	return doc
}

func renderYAML(w io.Writer, sched *schedule.Schedule[string], cal *calendar.Calendar) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(document(sched, cal)); err != nil {
		return fmt.Errorf("schedule: encode yaml: %w", err)
	}

	return encoder.Close()
}

func renderJSON(w io.Writer, sched *schedule.Schedule[string], cal *calendar.Calendar) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(document(sched, cal)); err != nil {
		return fmt.Errorf("schedule: encode json: %w", err)
	}

	return nil
}
