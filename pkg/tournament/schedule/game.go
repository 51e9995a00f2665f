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

// Game is a single pairing of two participants.
type Game[T any] struct {
	Home T `yaml:"home" json:"home"`
	Away T `yaml:"away" json:"away"`

	// Self is set when the game came from a self slot, in which case Home
	// and Away are the same participant.
	Self bool `yaml:"self,omitempty" json:"self,omitempty"`
}

func (game Game[T]) String() string {
	return fmt.Sprintf("%v vs %v", game.Home, game.Away)
}

// resolve turns a pair of slots into a game. A self slot takes the value
// of its opponent, and any pairing left with a rest slot is skipped.
func resolve[T any](home, away Slot[T]) (Game[T], bool) {
	selfPlay := home.IsSelf() || away.IsSelf()

	switch {
	case home.IsSelf():
		home = away
	case away.IsSelf():
		away = home
	}

	if !home.IsPlayer() || !away.IsPlayer() {
		return Game[T]{}, false
	}

	return Game[T]{
		Home: home.value,
		Away: away.value,
		Self: selfPlay,
	}, true
}
