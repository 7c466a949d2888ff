package reservation

import (
	"fmt"

	"github.com/santiagoprado21/southpark-club-backend/sport"
)

// slotStep is the spacing between bookable start times.
const slotStep = 30

// TimeSlots returns the half-hour-aligned start times inside an operating
// window. The end is exclusive, except for "00:00" which marks the allowed
// midnight wrap: the window then runs to midnight and includes the 00:00
// boundary slot itself. The club default of 16:00-00:00 yields
// 16:00..23:30 plus 00:00, 17 slots.
func TimeSlots(schedule sport.Schedule) []string {
	start, err := minuteOfDay(schedule.Start)

	if err != nil {
		return nil
	}

	end, err := minuteOfDay(schedule.End)

	if err != nil {
		return nil
	}

	inclusive := false

	if end == 0 {
		end = 24 * 60
		inclusive = true
	}

	var slots []string

	for minute := start; minute < end || (inclusive && minute == end); minute += slotStep {
		slots = append(slots, formatMinute(minute%(24*60)))
	}

	return slots
}

// UnderMaintenance reports whether a slot on the given date falls inside
// one of the sport's recurring maintenance windows.
func UnderMaintenance(windows []sport.MaintenanceWindow, weekday, slot string) bool {
	slotMinute, err := minuteOfDay(slot)

	if err != nil {
		return false
	}

	// The 00:00 boundary slot belongs to the end of the day.
	if slotMinute == 0 {
		slotMinute = 24 * 60
	}

	for _, window := range windows {
		if window.Day != weekday {
			continue
		}

		start, err := minuteOfDay(window.Start)

		if err != nil {
			continue
		}

		end, err := minuteOfDay(window.End)

		if err != nil {
			continue
		}

		if end == 0 {
			end = 24 * 60
		}

		if slotMinute >= start && slotMinute < end {
			return true
		}
	}

	return false
}

// SlotKey is the aggregation key used by the occupied-slot tally.
func SlotKey(timeOfDay string, courtNumber int) string {
	return fmt.Sprintf("%v-%v", timeOfDay, courtNumber)
}

func minuteOfDay(timeOfDay string) (int, error) {
	var hour, minute int

	_, err := fmt.Sscanf(timeOfDay, "%d:%d", &hour, &minute)

	if err != nil {
		return 0, fmt.Errorf("invalid time of day '%v': %w", timeOfDay, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time of day '%v'", timeOfDay)
	}

	return hour*60 + minute, nil
}

func formatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
