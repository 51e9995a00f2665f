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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func field(n int) []Slot[int] {
	slots := make([]Slot[int], n)
	for i := range slots {
		slots[i] = Player(i)
	}

	return slots
}

// CircleSuite groups tests for the rotation of a circle.
type CircleSuite struct {
	suite.Suite
}

func TestCircle(t *testing.T) {
	suite.Run(t, new(CircleSuite))
}

// TestHalves: slot i is paired with slot L-1-i.
func (s *CircleSuite) TestHalves() {
	c := newCircle(field(6))

	for i := 0; i < 3; i++ {
		home, away := c.pair(i)
		s.Equal(Player(i), home)
		s.Equal(Player(5-i), away)
	}

	s.Equal(field(6), c.slots())
}

// TestTurnRotatesRing: a turn right-rotates every slot but the first.
func (s *CircleSuite) TestTurnRotatesRing() {
	slots := field(8)
	c := newCircle(slots)

	for k := 1; k < len(slots); k++ {
		c = c.turn()

		want := []Slot[int]{slots[0]}
		ring := slots[1:]
		for i := range ring {
			want = append(want, ring[(i-k+len(ring)*k)%len(ring)])
		}

		s.Equal(want, c.slots(), "rotation %d", k)
	}

	// A full revolution brings the circle back to the start.
	s.Equal(slots, c.slots())
}

// TestTurnKeepsOriginal: turning never modifies the old circle.
func (s *CircleSuite) TestTurnKeepsOriginal() {
	c := newCircle(field(6))
	before := c.slots()

	c.turn().turn()
	s.Equal(before, c.slots())
}

// TestTwoSlots: the smallest field has a single arrangement.
func (s *CircleSuite) TestTwoSlots() {
	c := newCircle(field(2))
	s.Equal(c.slots(), c.turn().slots())
	s.Equal(2, c.size())
}

// TestMirror: the mirror is the reversed arrangement.
func (s *CircleSuite) TestMirror() {
	slots := field(6)
	reversed := slices.Clone(slots)
	slices.Reverse(reversed)

	s.Equal(reversed, newCircle(slots).mirror().slots())
}

// TestEveryPairOnce: over L-1 turns every pair of slots meets exactly once.
func (s *CircleSuite) TestEveryPairOnce() {
	for total := 2; total <= 20; total += 2 {
		met := map[[2]int]int{}

		c := newCircle(field(total))
		for k := 0; k < total-1; k++ {
			if k > 0 {
				c = c.turn()
			}

			for i := range c.top {
				home, away := c.pair(i)
				a, b := home.value, away.value
				if a > b {
					a, b = b, a
				}
				met[[2]int{a, b}]++
			}
		}

		s.Len(met, total*(total-1)/2, "field of %d", total)
		for p, count := range met {
			s.Equal(1, count, "field of %d: pair %v", total, p)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		home, away Slot[string]
		want       Game[string]
		ok         bool
	}{
		{"players", Player("A"), Player("B"), Game[string]{Home: "A", Away: "B"}, true},
		{"home self", Self[string](), Player("B"), Game[string]{Home: "B", Away: "B", Self: true}, true},
		{"away self", Player("A"), Self[string](), Game[string]{Home: "A", Away: "A", Self: true}, true},
		{"home rest", Rest[string](), Player("B"), Game[string]{}, false},
		{"away rest", Player("A"), Rest[string](), Game[string]{}, false},
		{"self against rest", Self[string](), Rest[string](), Game[string]{}, false},
		{"rest against self", Rest[string](), Self[string](), Game[string]{}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game, ok := resolve(test.home, test.away)
			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.want, game)
		})
	}
}

func TestShuffle(t *testing.T) {
	t.Run("permutation", func(t *testing.T) {
		r := rand.New(rand.NewPCG(42, 42))
		for n := 0; n <= 12; n++ {
			s := make([]int, n)
			for i := range s {
				s[i] = i
			}

			shuffle(r, s)

			sorted := slices.Clone(s)
			slices.Sort(sorted)
			for i := range sorted {
				require.Equal(t, i, sorted[i])
			}
		}
	})

	t.Run("global source", func(t *testing.T) {
		s := []int{1, 2, 3, 4, 5}
		shuffle(nil, s)
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, s)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, b := []int{1, 2, 3, 4, 5, 6, 7}, []int{1, 2, 3, 4, 5, 6, 7}
		shuffle(rand.New(rand.NewPCG(3, 9)), a)
		shuffle(rand.New(rand.NewPCG(3, 9)), b)
		assert.Equal(t, a, b)
	})

	t.Run("every position reachable", func(t *testing.T) {
		r := rand.New(rand.NewPCG(5, 5))
		first := map[int]bool{}
		for i := 0; i < 500; i++ {
			s := []int{0, 1, 2, 3}
			shuffle(r, s)
			first[s[0]] = true
		}
		assert.Len(t, first, 4)
	})
}

func TestSlot(t *testing.T) {
	value, ok := Player("A").Value()
	assert.True(t, ok)
	assert.Equal(t, "A", value)

	_, ok = Rest[string]().Value()
	assert.False(t, ok)

	assert.Equal(t, "A", Player("A").String())
	assert.Equal(t, "REST", Rest[string]().String())
	assert.Equal(t, "SELF", Self[string]().String())

	// The zero value of a caller's type is still a participant.
	assert.True(t, Player("").IsPlayer())
	assert.False(t, Player("").IsRest())
}
