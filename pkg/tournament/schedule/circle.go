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

// circle is a field arrangement split into the two halves of the circle
// method: top[i] plays against bottom[i], which is the same as pairing
// slot i of the arrangement with slot L-1-i.
//
//	top:    a0 a1 a2
//	bottom: a5 a4 a3
//
// A circle is never modified after creation; turn and mirror build new
// circles, although they may share the backing arrays of the old one.
type circle[T any] struct {
	top, bottom []Slot[T]
}

func newCircle[T any](slots []Slot[T]) circle[T] {
	total := len(slots)

	c := circle[T]{
		top:    make([]Slot[T], total/2),
		bottom: make([]Slot[T], total/2),
	}

	for i, slot := range slots {
		if i < total/2 {
			c.top[i] = slot
		} else {
			c.bottom[total-i-1] = slot
		}
	}

	return c
}

// size returns the number of slots in the circle.
func (c circle[T]) size() int {
	return 2 * len(c.top)
}

// turn returns the circle of the next fixture. The first slot of the top
// half stays fixed while every other slot moves one step clockwise, which
// right-rotates the ring a1..aL-1 of the arrangement by one.
//
//	top:    a0 a5 a1
//	bottom: a4 a3 a2
func (c circle[T]) turn() circle[T] {
	half := len(c.top)
	if half < 2 {
		return c
	}

	top := make([]Slot[T], 0, half)
	top = append(top, c.top[0], c.bottom[0])
	top = append(top, c.top[1:half-1]...)

	bottom := make([]Slot[T], 0, half)
	bottom = append(bottom, c.bottom[1:]...)
	bottom = append(bottom, c.top[half-1])

	return circle[T]{top: top, bottom: bottom}
}

// mirror returns the circle of the element-wise reversed arrangement,
// which swaps the sides of every pairing.
func (c circle[T]) mirror() circle[T] {
	return circle[T]{top: c.bottom, bottom: c.top}
}

// pair returns the two slots of the i-th pairing.
func (c circle[T]) pair(i int) (Slot[T], Slot[T]) {
	return c.top[i], c.bottom[i]
}

// slots returns the arrangement the circle represents.
func (c circle[T]) slots() []Slot[T] {
	slots := make([]Slot[T], 0, c.size())
	slots = append(slots, c.top...)
	for i := len(c.bottom) - 1; i >= 0; i-- {
		slots = append(slots, c.bottom[i])
	}

	return slots
}
