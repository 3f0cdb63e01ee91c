package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Weekday is a day bucket of the schedule grid, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Weekdays lists every day bucket in grid order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// ParseWeekday maps a day name to its bucket using its first three letters, so "Monday", "mon" and "MON" agree.
func ParseWeekday(raw string) (Weekday, error) {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) < 3 {
		return 0, fmt.Errorf("invalid day of week %q", raw)
	}
	prefix := strings.ToLower(trimmed[:3])
	for i, name := range weekdayNames {
		if strings.ToLower(name) == prefix {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("invalid day of week %q", raw)
}

// TimeBucket is a coarse time-of-day bucket of the schedule grid.
type TimeBucket int

const (
	Morning TimeBucket = iota
	Afternoon
	Evening
)

var bucketNames = [...]string{"Morning", "Afternoon", "Evening"}

func (b TimeBucket) String() string {
	if b < Morning || b > Evening {
		return fmt.Sprintf("TimeBucket(%d)", int(b))
	}
	return bucketNames[b]
}

// TimeBuckets lists every time bucket in grid order.
func TimeBuckets() []TimeBucket {
	return []TimeBucket{Morning, Afternoon, Evening}
}

// TimeOfDay is a wall-clock time in 24h form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.Hour*60 + t.Minute }

func (t TimeOfDay) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

// ParseTimeOfDay accepts 12h forms ("9:00 AM", "9 pm", "11:30PM") and 24h forms ("14:30").
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	meridiem := ""
	for _, m := range []string{"AM", "PM"} {
		if strings.HasSuffix(s, m) {
			meridiem = m
			s = strings.TrimSpace(strings.TrimSuffix(s, m))
			break
		}
	}
	if s == "" {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", raw)
	}

	hourPart, minutePart, hasMinutes := strings.Cut(s, ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", raw, err)
	}
	minute := 0
	if hasMinutes {
		if len(minutePart) != 2 {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q", raw)
		}
		if minute, err = strconv.Atoi(minutePart); err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", raw, err)
		}
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", raw)
	}

	switch meridiem {
	case "":
		if hour < 0 || hour > 23 {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q", raw)
		}
	default:
		if hour < 1 || hour > 12 {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q", raw)
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}
