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

import (
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Template creates schedules with a fixed configuration.
type Template struct {
	config Config
	rand   *rand.Rand
}

// New returns a template with the default configuration modified by the
// given options.
func New(options ...Option) *Template {
	t := &Template{config: DefaultConfig()}
	for _, option := range options {
		option(t)
	}

	return t
}

// Config returns the resolved configuration of the template.
func (t *Template) Config() Config {
	return t.config
}

// Create prepares a schedule for the given participants. The participants
// slice is copied and never modified.
func Create[T any](t *Template, participants []T) *Schedule[T] {
	return &Schedule[T]{
		config: t.config,
		rand:   t.rand,
		field:  prepare(t.config, t.rand, participants),
	}
}

// Schedule is a round-robin schedule over an immutable field. Every
// sequence it returns is recomputed from the field when iterated, so they
// may be iterated any number of times, concurrently too.
type Schedule[T any] struct {
	config Config
	rand   *rand.Rand
	field  Field[T]
}

// Config returns the configuration the schedule was created with.
func (s *Schedule[T]) Config() Config {
	return s.config
}

// Field returns the prepared field of the schedule.
func (s *Schedule[T]) Field() Field[T] {
	return s.field
}

// Rounds returns the rounds of the schedule: one pass over the field and,
// with rematches enabled, a second one with the sides of every game
// swapped. An empty field has no rounds.
func (s *Schedule[T]) Rounds() iter.Seq[Round[T]] {
	return func(yield func(Round[T]) bool) {
		if s.field.Len() == 0 {
			return
		}

		start := newCircle(s.field.slots)
		if !yield(Round[T]{Number: 1, start: start}) {
			return
		}

		if s.config.Rematch {
			yield(Round[T]{Number: 2, Rematch: true, start: start})
		}
	}
}

// Fixtures returns the fixtures of every round in order.
func (s *Schedule[T]) Fixtures() iter.Seq[Fixture[T]] {
	return func(yield func(Fixture[T]) bool) {
		for round := range s.Rounds() {
			for fixture := range round.Fixtures() {
				if !yield(fixture) {
					return
				}
			}
		}
	}
}

// Games returns the games of every fixture in order.
func (s *Schedule[T]) Games() iter.Seq[Game[T]] {
	return func(yield func(Game[T]) bool) {
		for fixture := range s.Fixtures() {
			for game := range fixture.Games() {
				if !yield(game) {
					return
				}
			}
		}
	}
}

// Reshuffle returns a new schedule over a shuffled copy of the field's
// participants, padded again with the same placeholders. The receiver is
// left untouched.
func (s *Schedule[T]) Reshuffle() *Schedule[T] {
	players := s.field.players()
	shuffle(s.rand, players)

	logrus.WithField("players", len(players)).Trace("schedule: reshuffled field")

	return &Schedule[T]{
		config: s.config,
		rand:   s.rand,
		field:  pad(players, s.config.PlaySelf),
	}
}

// RoundCount returns the number of rounds the schedule yields.
func (s *Schedule[T]) RoundCount() int {
	switch {
	case s.field.Len() == 0:
		return 0
	case s.config.Rematch:
		return 2
	default:
		return 1
	}
}

// FixtureCount returns the number of fixtures the schedule yields.
func (s *Schedule[T]) FixtureCount() int {
	if s.field.Len() == 0 {
		return 0
	}

	return s.RoundCount() * (s.field.Len() - 1)
}

// GameCount returns the number of games the schedule yields: every pair
// of participants once per round, plus one self-play game for each
// participant when enabled.
func (s *Schedule[T]) GameCount() int {
	n := len(s.field.Participants())

	perRound := n * (n - 1) / 2
	if s.config.PlaySelf {
		perRound += n
	}

	return s.RoundCount() * perRound
}
