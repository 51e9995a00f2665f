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

import "math/rand/v2"

// shuffle permutes s uniformly in place: every position, from the first
// to the second to last, is swapped with a random position at or after it.
// The global source is used when r is nil.
func shuffle[E any](r *rand.Rand, s []E) {
	for i := 0; i < len(s)-1; i++ {
		j := i + intN(r, len(s)-i)
		s[i], s[j] = s[j], s[i]
	}
}

func intN(r *rand.Rand, n int) int {
	if r == nil {
		return rand.IntN(n)
	}

	return r.IntN(n)
}
