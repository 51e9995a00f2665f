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

// Package calendar spreads the fixtures of a schedule over the calendar,
// one fixture every fixed interval starting from a given date.
package calendar

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// DefaultInterval is the time between two fixtures: one week.
const DefaultInterval = 7 * 24 * time.Hour

// Calendar assigns dates to fixtures by their position in the schedule.
type Calendar struct {
	Start    time.Time
	Interval time.Duration
}

// New parses the start date, which may be in any format understood by
// dateparse, and returns a calendar with the given interval. A zero
// interval is replaced by DefaultInterval.
func New(start string, interval time.Duration) (*Calendar, error) {
	date, err := dateparse.ParseAny(start)
	if err != nil {
		return nil, fmt.Errorf("calendar: invalid start date %q: %w", start, err)
	}

	if interval < 0 {
		return nil, fmt.Errorf("calendar: negative interval %s", interval)
	}

	if interval == 0 {
		interval = DefaultInterval
	}

	return &Calendar{Start: date, Interval: interval}, nil
}

// Date returns the date of the n-th fixture, counting from zero.
func (calendar *Calendar) Date(n int) time.Time {
	return calendar.Start.Add(time.Duration(n) * calendar.Interval)
}

// Dates returns the dates of the first count fixtures.
func (calendar *Calendar) Dates(count int) []time.Time {
	dates := make([]time.Time, count)
	for i := range dates {
		dates[i] = calendar.Date(i)
	}

	return dates
}
