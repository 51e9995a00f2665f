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
	"slices"
)

// Round is a full pass over a field: every pair of slots meets in exactly
// one of its fixtures.
type Round[T any] struct {
	Number  int
	Rematch bool

	start circle[T]
}

// Len returns the number of fixtures in the round.
func (round Round[T]) Len() int {
	return round.start.size() - 1
}

// Fixtures returns the fixtures of the round in order. The fixtures are
// computed as they are consumed.
func (round Round[T]) Fixtures() iter.Seq[Fixture[T]] {
	return func(yield func(Fixture[T]) bool) {
		c := round.start
		for number := 1; number <= round.Len(); number++ {
			if number > 1 {
				c = c.turn()
			}

			fixture := Fixture[T]{
				Round:   round.Number,
				Number:  number,
				Rematch: round.Rematch,
				circle:  c,
			}

			// The rematch of a fixture is its mirror image.
			if round.Rematch {
				fixture.circle = c.mirror()
			}

			if !yield(fixture) {
				return
			}
		}
	}
}

// Fixture is the set of games derived from one arrangement of the field.
type Fixture[T any] struct {
	Round   int
	Number  int
	Rematch bool

	circle circle[T]
}

// Arrangement returns the field arrangement the fixture's games are
// derived from.
func (fixture Fixture[T]) Arrangement() []Slot[T] {
	return fixture.circle.slots()
}

// Games returns the games of the fixture, skipping the ones against a
// rest slot.
func (fixture Fixture[T]) Games() iter.Seq[Game[T]] {
	return func(yield func(Game[T]) bool) {
		for i := range fixture.circle.top {
			game, ok := resolve(fixture.circle.pair(i))
			if !ok {
				continue
			}

			if !yield(game) {
				return
			}
		}
	}
}

// Bye returns the participant paired with the rest slot, which sits out
// the fixture.
func (fixture Fixture[T]) Bye() (T, bool) {
	for i := range fixture.circle.top {
		home, away := fixture.circle.pair(i)
		switch {
		case home.IsRest():
			return away.Value()
		case away.IsRest():
			return home.Value()
		}
	}

	var zero T
	return zero, false
}

// All collects the games of the fixture.
func (fixture Fixture[T]) All() []Game[T] {
	return slices.Collect(fixture.Games())
}
