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

import "fmt"

type slotKind uint8

const (
	player slotKind = iota
	rest
	self
)

// Slot is a single position of a field. It either holds a participant or
// one of the two placeholders: a rest (bye) slot which pads odd fields, or a
// self slot which makes its opponent play against itself.
type Slot[T any] struct {
	kind  slotKind
	value T
}

// Player returns a slot holding the given participant.
func Player[T any](value T) Slot[T] {
	return Slot[T]{kind: player, value: value}
}

// Rest returns a bye slot.
func Rest[T any]() Slot[T] {
	return Slot[T]{kind: rest}
}

// Self returns a self-play slot.
func Self[T any]() Slot[T] {
	return Slot[T]{kind: self}
}

func (slot Slot[T]) IsPlayer() bool { return slot.kind == player }
func (slot Slot[T]) IsRest() bool   { return slot.kind == rest }
func (slot Slot[T]) IsSelf() bool   { return slot.kind == self }

// Value returns the participant held by the slot, if any.
func (slot Slot[T]) Value() (T, bool) {
	return slot.value, slot.kind == player
}

func (slot Slot[T]) String() string {
	switch slot.kind {
	case rest:
		return "REST"
	case self:
		return "SELF"
	default:
		return fmt.Sprint(slot.value)
	}
}
