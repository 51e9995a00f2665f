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

package util

import (
	"regexp"
	"strconv"
	"strings"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// NaturalCompare compares two strings in natural order, where runs of
// digits are compared by their numeric value: "P2" sorts before "P10".
// The result is negative, zero or positive like strings.Compare.
func NaturalCompare(a, b string) int {
	chunksA, chunksB := chunkify(a), chunkify(b)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		numA, errA := strconv.Atoi(chunksA[i])
		numB, errB := strconv.Atoi(chunksB[i])

		// If both chunks are numeric, compare them as integers
		if errA == nil && errB == nil {
			if numA != numB {
				if numA < numB {
					return -1
				}
				return 1
			}

			continue
		}

		if c := strings.Compare(chunksA[i], chunksB[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(chunksA) < len(chunksB):
		return -1
	case len(chunksA) > len(chunksB):
		return 1
	default:
		return 0
	}
}
