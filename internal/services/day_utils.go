package services

import "time"

const dayLayout = "2006-01-02"

func locationOrUTC(location *time.Location) *time.Location {
	if location != nil {
		return location
	}
	return time.UTC
}

// DateAtLocation truncates value to midnight of its calendar day in location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	location = locationOrUTC(location)
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange is the half-open [start, next midnight) span of value's day.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// DayKey is the stored form of value's calendar day in location: that date at
// midnight UTC. Rows written under different zones share one key.
func DayKey(value time.Time, location *time.Location) time.Time {
	year, month, day := value.In(locationOrUTC(location)).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayKeyRange is the half-open span of stored keys from from's day through to's.
func DayKeyRange(from time.Time, to time.Time, location *time.Location) (time.Time, time.Time) {
	return DayKey(from, location), DayKey(to, location).AddDate(0, 0, 1)
}

// WeekStart returns the Sunday that opens the week containing value.
func WeekStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func ParseDay(raw string, location *time.Location) (time.Time, error) {
	return time.ParseInLocation(dayLayout, raw, locationOrUTC(location))
}
