package services

import (
	"fmt"
	"time"

	"github.com/stellarstyles/salon_backend/models"
)

// The admin calendar shows at most this many appointments per day cell;
// anything beyond it is collapsed into a "+N more" overflow count.
const maxDayPreview = 3

// CalendarEntry is one appointment rendered into a day cell. Status is
// carried so the frontend can colour the entry; nothing else depends on it.
type CalendarEntry struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name"`
	PreferredTime string `json:"preferred_time"`
	ServiceType   string `json:"service_type"`
	Status        string `json:"status"`
}

type CalendarDay struct {
	Day      int             `json:"day"`
	DateKey  string          `json:"date_key"`
	IsToday  bool            `json:"is_today"`
	Total    int             `json:"total"`
	Preview  []CalendarEntry `json:"preview"`
	Overflow int             `json:"overflow"`
}

type MonthGrid struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	MonthName     string        `json:"month_name"`
	DaysInMonth   int           `json:"days_in_month"`
	FirstWeekday  int           `json:"first_weekday"` // 0=Sunday .. 6=Saturday
	LeadingBlanks int           `json:"leading_blanks"`
	Days          []CalendarDay `json:"days"`
}

// DaysInMonth returns the number of days in the given month, leap years
// included. Day 0 of the following month normalizes to the last day of this
// one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the first day of the month,
// 0=Sunday .. 6=Saturday.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// DateKey builds the canonical zero-padded YYYY-MM-DD key for a day.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// GroupByDate indexes appointments by their preferred date, preserving the
// relative input order within each group. The input is not modified.
func GroupByDate(appointments []models.Appointment) map[string][]models.Appointment {
	grouped := make(map[string][]models.Appointment)
	for _, apt := range appointments {
		grouped[apt.PreferredDate] = append(grouped[apt.PreferredDate], apt)
	}
	return grouped
}

// PreviousMonth steps the displayed month back one, decrementing the year
// when crossing from January.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth steps the displayed month forward one, incrementing the year
// when crossing from December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// BuildMonthGrid derives the calendar view for one month. Appointments whose
// date falls outside the month simply never match a day's date key, so they
// are excluded without any pre-filtering. today is passed in explicitly so
// the grid is a pure function of its arguments; callers capture time.Now()
// once per request.
func BuildMonthGrid(appointments []models.Appointment, year int, month time.Month, today time.Time) MonthGrid {
	grouped := GroupByDate(appointments)
	daysInMonth := DaysInMonth(year, month)
	firstWeekday := FirstWeekday(year, month)

	grid := MonthGrid{
		Year:          year,
		Month:         int(month),
		MonthName:     fmt.Sprintf("%s %d", month.String(), year),
		DaysInMonth:   daysInMonth,
		FirstWeekday:  firstWeekday,
		LeadingBlanks: firstWeekday,
		Days:          make([]CalendarDay, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		key := DateKey(year, month, day)
		group := grouped[key]

		cell := CalendarDay{
			Day:     day,
			DateKey: key,
			IsToday: today.Year() == year && today.Month() == month && today.Day() == day,
			Total:   len(group),
			Preview: make([]CalendarEntry, 0, maxDayPreview),
		}

		for i, apt := range group {
			if i == maxDayPreview {
				break
			}
			cell.Preview = append(cell.Preview, CalendarEntry{
				ID:            apt.ID.String(),
				CustomerName:  apt.CustomerName,
				PreferredTime: apt.PreferredTime,
				ServiceType:   apt.ServiceType,
				Status:        apt.Status,
			})
		}
		if len(group) > maxDayPreview {
			cell.Overflow = len(group) - maxDayPreview
		}

		grid.Days = append(grid.Days, cell)
	}

	return grid
}

// FilterByStatus returns the appointments matching the given status filter.
// "all" is the identity filter. Used by both the admin list view and the
// pending-count badge.
func FilterByStatus(appointments []models.Appointment, status string) []models.Appointment {
	if status == "all" || status == "" {
		return appointments
	}
	filtered := make([]models.Appointment, 0, len(appointments))
	for _, apt := range appointments {
		if apt.Status == status {
			filtered = append(filtered, apt)
		}
	}
	return filtered
}

// PendingCount is the number shown on the admin badge.
func PendingCount(appointments []models.Appointment) int {
	return len(FilterByStatus(appointments, models.StatusPending))
}
