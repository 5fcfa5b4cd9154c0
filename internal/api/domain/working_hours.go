package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Day names as stored and exchanged over the API.
var WeekDays = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// WeeklyWorkingDay is the recurring availability for one day of the week.
type WeeklyWorkingDay struct {
	Day     string `json:"day"`
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM
}

// DateOverride replaces the weekly schedule for a single calendar date.
// Start/End are required only when the date is enabled.
type DateOverride struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Enabled bool   `json:"enabled"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// WorkingHours is a user's full availability document.
type WorkingHours struct {
	Timezone  string             `json:"timezone"`
	Weekly    []WeeklyWorkingDay `json:"weekly"`
	Overrides []DateOverride     `json:"overrides"`
}

// DefaultWorkingHours returns the schedule users get before saving one:
// Monday through Friday, 09:00 to 17:00.
func DefaultWorkingHours() WorkingHours {
	wh := WorkingHours{
		Timezone:  "America/Los_Angeles",
		Overrides: []DateOverride{},
	}
	for _, day := range WeekDays {
		wh.Weekly = append(wh.Weekly, WeeklyWorkingDay{
			Day:     day,
			Enabled: day != "Sunday" && day != "Saturday",
			Start:   "09:00",
			End:     "17:00",
		})
	}
	return wh
}

// Validate checks the document against the schedule invariants: every weekday
// appears exactly once, times are HH:MM, and end is after start for anything
// enabled.
func (wh WorkingHours) Validate() error {
	if wh.Timezone == "" {
		return fmt.Errorf("timezone is required")
	}

	seen := map[string]bool{}
	for _, d := range wh.Weekly {
		if !validDayName(d.Day) {
			return fmt.Errorf("unknown day %q", d.Day)
		}
		if seen[d.Day] {
			return fmt.Errorf("day %s listed more than once", d.Day)
		}
		seen[d.Day] = true

		if err := validateTime(d.Start); err != nil {
			return fmt.Errorf("%s start: %w", d.Day, err)
		}
		if err := validateTime(d.End); err != nil {
			return fmt.Errorf("%s end: %w", d.Day, err)
		}
		if d.Enabled && toMinutes(d.End) <= toMinutes(d.Start) {
			return fmt.Errorf("%s: end must be after start", d.Day)
		}
	}
	if len(seen) != 7 {
		return fmt.Errorf("weekly must contain all 7 days exactly once")
	}

	for _, o := range wh.Overrides {
		if o.Date == "" {
			return fmt.Errorf("override date is required")
		}
		if !o.Enabled {
			continue
		}
		if o.Start == "" || o.End == "" {
			return fmt.Errorf("override %s: start and end required when enabled", o.Date)
		}
		if err := validateTime(o.Start); err != nil {
			return fmt.Errorf("override %s start: %w", o.Date, err)
		}
		if err := validateTime(o.End); err != nil {
			return fmt.Errorf("override %s end: %w", o.Date, err)
		}
		if toMinutes(o.End) <= toMinutes(o.Start) {
			return fmt.Errorf("override %s: end must be after start", o.Date)
		}
	}

	return nil
}

func validDayName(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

func validateTime(v string) error {
	if !timeRe.MatchString(v) {
		return fmt.Errorf("time must be HH:MM")
	}
	h := mustAtoi(v[:2])
	m := mustAtoi(v[3:])
	if h > 23 || m > 59 {
		return fmt.Errorf("time %q out of range", v)
	}
	return nil
}

func toMinutes(v string) int {
	parts := strings.SplitN(v, ":", 2)
	return mustAtoi(parts[0])*60 + mustAtoi(parts[1])
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
