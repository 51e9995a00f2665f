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

import "iter"

// Encounters is a pull-based cursor over the games of a schedule, for
// callers which hand out games one at a time instead of ranging over them.
// Cursors created from the same schedule are independent of each other.
type Encounters[T any] struct {
	next func() (Game[T], bool)
	stop func()

	total  int
	played int
}

// Encounters returns a new cursor positioned before the first game. Stop
// must be called if the cursor is abandoned before it is exhausted.
func (s *Schedule[T]) Encounters() *Encounters[T] {
	next, stop := iter.Pull(s.Games())
	return &Encounters[T]{
		next:  next,
		stop:  stop,
		total: s.GameCount(),
	}
}

// NextEncounter returns the next game, or false if there are none left.
func (e *Encounters[T]) NextEncounter() (Game[T], bool) {
	game, ok := e.next()
	if ok {
		e.played++
	}

	return game, ok
}

// TotalEncounters returns the number of games the cursor yields in total.
func (e *Encounters[T]) TotalEncounters() int {
	return e.total
}

// Remaining returns the number of games not yet returned.
func (e *Encounters[T]) Remaining() int {
	return e.total - e.played
}

// Stop releases the cursor. Further calls to NextEncounter return false.
func (e *Encounters[T]) Stop() {
	e.stop()
}
