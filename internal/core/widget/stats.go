package widget

import (
	"math"
	"strings"

	"github.com/lequangminh/fitstreak/internal/core/domain"
)

// maxStreakWalk caps the backward walk so a pathological input set cannot
// spin the loop for an unbounded number of days.
const maxStreakWalk = 3650

// Streak counts consecutive completed days ending at today, or at yesterday
// when today is not yet completed: an unfinished today does not break a
// streak that ran through yesterday, it simply has not extended it.
// markerDay equal to today counts as a completion even before the remote
// set reflects it.
func Streak(remoteDays []string, today, markerDay string) int {
	done := make(map[string]bool, len(remoteDays)+1)
	for _, d := range remoteDays {
		done[d] = true
	}
	if markerDay != "" && markerDay == today {
		done[today] = true
	}

	end := today
	if !done[end] {
		prev, err := domain.PrevDay(end)
		if err != nil {
			return 0
		}
		end = prev
	}

	count := 0
	day := end
	for count < maxStreakWalk && done[day] {
		count++
		prev, err := domain.PrevDay(day)
		if err != nil {
			break
		}
		day = prev
	}
	return count
}

// MonthlyRate is the percentage of elapsed days in the reference month that
// were completed: round(completed / dayOfMonth * 100). The raw value may
// exceed 100 when the count overstates; clamping is a display concern, see
// ClampRate.
func MonthlyRate(completed int, referenceDay string) int {
	elapsed, err := domain.DayOfMonth(referenceDay)
	if err != nil || elapsed == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(elapsed) * 100))
}

// ClampRate caps a rate at 100 for display.
func ClampRate(rate int) int {
	if rate > 100 {
		return 100
	}
	return rate
}

// MonthlyCompleted counts the remote days belonging to the month prefix
// (YYYY-MM), plus the locally bridged today when the remote set does not
// already contain it.
func MonthlyCompleted(remoteDays []string, monthPrefix, today, markerDay string) int {
	count := 0
	todayInRemote := false
	for _, d := range remoteDays {
		if strings.HasPrefix(d, monthPrefix+"-") {
			count++
		}
		if d == today {
			todayInRemote = true
		}
	}

	if markerDay != "" && markerDay == today && !todayInRemote {
		if m, err := domain.MonthOf(today); err == nil && m == monthPrefix {
			count++
		}
	}
	return count
}
