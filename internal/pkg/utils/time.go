package utils

import (
	"bellschedule-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"
)

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// ParseWeekday accepts full or three-letter English day names, case-insensitive.
func ParseWeekday(value string) (time.Weekday, error) {
	weekday, ok := weekdaysByName[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", value)
	}
	return weekday, nil
}

// ParseClock parses a 24h "HH:MM" string into hours and minutes.
func ParseClock(value string) (hour, minute int, err error) {
	parsed, err := time.Parse(constvars.TimeOfDayLayout, strings.TrimSpace(value))
	if err != nil {
		return 0, 0, err
	}
	return parsed.Hour(), parsed.Minute(), nil
}

func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || strings.EqualFold(timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}
