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
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// Field is the prepared, immutable arrangement of slots a schedule is
// derived from. Its length is always even.
type Field[T any] struct {
	slots []Slot[T]
}

// prepare copies the participants into a new field, shuffling them if
// requested, and pads it with the self and rest placeholders.
func prepare[T any](config Config, r *rand.Rand, participants []T) Field[T] {
	slots := make([]Slot[T], 0, len(participants)+2)
	for _, participant := range participants {
		slots = append(slots, Player(participant))
	}

	if config.Shuffle {
		shuffle(r, slots)
	}

	return pad(slots, config.PlaySelf)
}

// pad appends the self slot, if enabled, and then a rest slot if the
// field has an odd number of slots. The self slot must come first since
// it changes the parity of the field.
func pad[T any](slots []Slot[T], playSelf bool) Field[T] {
	if len(slots) == 0 {
		return Field[T]{}
	}

	players := len(slots)

	if playSelf {
		slots = append(slots, Self[T]())
	}

	if len(slots)%2 == 1 {
		slots = append(slots, Rest[T]())
	}

	logrus.WithFields(logrus.Fields{
		"players": players,
		"slots":   len(slots),
	}).Trace("schedule: prepared field")

	return Field[T]{slots: slots}
}

// Len returns the number of slots in the field, placeholders included.
func (field Field[T]) Len() int {
	return len(field.slots)
}

// Slot returns the i-th slot of the field.
func (field Field[T]) Slot(i int) Slot[T] {
	return field.slots[i]
}

// Slots returns a copy of the field's slots.
func (field Field[T]) Slots() []Slot[T] {
	return append([]Slot[T](nil), field.slots...)
}

// Participants returns the participants of the field in slot order.
func (field Field[T]) Participants() []T {
	participants := make([]T, 0, len(field.slots))
	for _, slot := range field.slots {
		if value, ok := slot.Value(); ok {
			participants = append(participants, value)
		}
	}

	return participants
}

// players returns a fresh copy of the participant slots of the field.
func (field Field[T]) players() []Slot[T] {
	players := make([]Slot[T], 0, len(field.slots))
	for _, slot := range field.slots {
		if slot.IsPlayer() {
			players = append(players, slot)
		}
	}

	return players
}
