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

// Package schedule generates round-robin tournament schedules using the
// circle method.
//
// A Template holds the resolved configuration, and Create prepares a field
// of participants from which rounds, fixtures and games are derived lazily:
//
//	tmpl := schedule.New(schedule.WithRematch(true))
//	sched := schedule.Create(tmpl, []string{"Stockfish", "Leela", "Berserk"})
//	for game := range sched.Games() {
//		fmt.Println(game.Home, "vs", game.Away)
//	}
//
// 1 Schedule = 1 or 2 Rounds (the second one is the rematch pass)
// 1 Round    = L-1 Fixtures (L being the padded field size)
// 1 Fixture  = L/2 candidate Games, minus the ones against a bye
package schedule
