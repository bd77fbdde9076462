package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stellarstyles/salon_backend/models"
)

func makeAppointment(name, date, timeSlot, status string) models.Appointment {
	return models.Appointment{
		ID:            uuid.New(),
		CustomerName:  name,
		CustomerPhone: "08011112222",
		ServiceType:   "Box Braids",
		PreferredDate: date,
		PreferredTime: timeSlot,
		Status:        status,
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29}, // divisible by 4
		{2000, time.February, 29}, // divisible by 400
		{2023, time.February, 28},
		{1900, time.February, 28}, // divisible by 100 but not 400
		{2026, time.January, 31},
		{2026, time.April, 30},
		{2026, time.December, 31},
	}

	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Fatalf("DaysInMonth(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// 2026-08-01 is a Saturday, 2026-02-01 a Sunday, 2026-06-01 a Monday.
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.August, 6},
		{2026, time.February, 0},
		{2026, time.June, 1},
	}

	for _, tt := range tests {
		if got := FirstWeekday(tt.year, tt.month); got != tt.want {
			t.Fatalf("FirstWeekday(%d, %s) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestDateKey_ZeroPadded(t *testing.T) {
	if got := DateKey(2026, time.March, 5); got != "2026-03-05" {
		t.Fatalf("expected 2026-03-05, got %s", got)
	}
	if got := DateKey(2026, time.November, 28); got != "2026-11-28" {
		t.Fatalf("expected 2026-11-28, got %s", got)
	}
}

func TestGroupByDate_PartitionsInput(t *testing.T) {
	appointments := []models.Appointment{
		makeAppointment("Ada", "2026-08-10", "9:00 AM", models.StatusPending),
		makeAppointment("Bola", "2026-08-10", "10:00 AM", models.StatusConfirmed),
		makeAppointment("Chika", "2026-08-11", "9:00 AM", models.StatusPending),
		makeAppointment("Dami", "2026-09-01", "1:00 PM", models.StatusCompleted),
	}

	grouped := GroupByDate(appointments)

	total := 0
	for _, group := range grouped {
		total += len(group)
	}
	if total != len(appointments) {
		t.Fatalf("groups hold %d appointments, want %d", total, len(appointments))
	}

	for key, group := range grouped {
		for _, apt := range group {
			if apt.PreferredDate != key {
				t.Fatalf("appointment for %s grouped under %s", apt.PreferredDate, key)
			}
		}
	}

	// Insertion order within a shared date is preserved, not re-sorted.
	day := grouped["2026-08-10"]
	if len(day) != 2 || day[0].CustomerName != "Ada" || day[1].CustomerName != "Bola" {
		t.Fatalf("expected [Ada Bola] for 2026-08-10, got %+v", day)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	if grouped := GroupByDate(nil); len(grouped) != 0 {
		t.Fatalf("expected empty map, got %d groups", len(grouped))
	}
}

func TestMonthNavigation_YearCarry(t *testing.T) {
	if y, m := PreviousMonth(2026, time.January); y != 2025 || m != time.December {
		t.Fatalf("PreviousMonth(2026, January) = %d %s", y, m)
	}
	if y, m := NextMonth(2026, time.December); y != 2027 || m != time.January {
		t.Fatalf("NextMonth(2026, December) = %d %s", y, m)
	}
}

func TestMonthNavigation_TwelveStepsIsOneYear(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		year, m := 2026, month
		for i := 0; i < 12; i++ {
			year, m = NextMonth(year, m)
		}
		if year != 2027 || m != month {
			t.Fatalf("12x NextMonth from %s 2026 landed on %s %d", month, m, year)
		}

		for i := 0; i < 12; i++ {
			year, m = PreviousMonth(year, m)
		}
		if year != 2026 || m != month {
			t.Fatalf("PreviousMonth did not invert NextMonth, landed on %s %d", m, year)
		}
	}
}

func TestBuildMonthGrid_PreviewAndOverflow(t *testing.T) {
	var appointments []models.Appointment
	for _, name := range []string{"Ada", "Bola", "Chika", "Dami", "Efe"} {
		appointments = append(appointments, makeAppointment(name, "2026-08-14", "9:00 AM", models.StatusPending))
	}
	appointments = append(appointments,
		makeAppointment("Funke", "2026-08-15", "10:00 AM", models.StatusConfirmed),
		makeAppointment("Gbenga", "2026-07-31", "11:00 AM", models.StatusPending), // outside August
	)

	today := time.Date(2026, time.August, 14, 12, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(appointments, 2026, time.August, today)

	if grid.DaysInMonth != 31 {
		t.Fatalf("expected 31 days, got %d", grid.DaysInMonth)
	}
	if grid.LeadingBlanks != 6 { // 2026-08-01 is a Saturday
		t.Fatalf("expected 6 leading blanks, got %d", grid.LeadingBlanks)
	}

	day14 := grid.Days[13]
	if day14.DateKey != "2026-08-14" {
		t.Fatalf("unexpected date key %s", day14.DateKey)
	}
	if !day14.IsToday {
		t.Fatal("expected day 14 to be flagged as today")
	}
	if day14.Total != 5 {
		t.Fatalf("expected total 5, got %d", day14.Total)
	}
	if len(day14.Preview) != 3 {
		t.Fatalf("expected preview of 3, got %d", len(day14.Preview))
	}
	if day14.Overflow != 2 {
		t.Fatalf("expected overflow +2 more, got %d", day14.Overflow)
	}

	day15 := grid.Days[14]
	if day15.Total != 1 || day15.Overflow != 0 {
		t.Fatalf("expected 1 appointment and no overflow on day 15, got total %d overflow %d", day15.Total, day15.Overflow)
	}
	if day15.IsToday {
		t.Fatal("day 15 must not be flagged as today")
	}
	if day15.Preview[0].Status != models.StatusConfirmed {
		t.Fatalf("preview entry should carry its status, got %s", day15.Preview[0].Status)
	}

	// The July appointment never matches an August date key.
	for _, day := range grid.Days {
		for _, entry := range day.Preview {
			if entry.CustomerName == "Gbenga" {
				t.Fatal("appointment outside the month leaked into the grid")
			}
		}
	}
}

func TestBuildMonthGrid_EmptyCollection(t *testing.T) {
	today := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(nil, 2026, time.February, today)

	if len(grid.Days) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(grid.Days))
	}
	for _, day := range grid.Days {
		if day.Total != 0 || len(day.Preview) != 0 || day.Overflow != 0 {
			t.Fatalf("expected empty cell, got %+v", day)
		}
	}
}

func TestFilterByStatus(t *testing.T) {
	appointments := []models.Appointment{
		makeAppointment("Ada", "2026-08-10", "9:00 AM", models.StatusPending),
		makeAppointment("Bola", "2026-08-10", "10:00 AM", models.StatusConfirmed),
		makeAppointment("Chika", "2026-08-11", "9:00 AM", models.StatusPending),
		makeAppointment("Dami", "2026-09-01", "1:00 PM", models.StatusCancelled),
		makeAppointment("Efe", "2026-09-02", "2:00 PM", models.StatusCompleted),
	}

	if got := FilterByStatus(appointments, "all"); len(got) != len(appointments) {
		t.Fatalf("all filter returned %d of %d", len(got), len(appointments))
	}

	wantCounts := map[string]int{
		models.StatusPending:   2,
		models.StatusConfirmed: 1,
		models.StatusCompleted: 1,
		models.StatusCancelled: 1,
	}
	for status, want := range wantCounts {
		got := FilterByStatus(appointments, status)
		if len(got) != want {
			t.Fatalf("filter %q returned %d, want %d", status, len(got), want)
		}
		for _, apt := range got {
			if apt.Status != status {
				t.Fatalf("filter %q leaked status %q", status, apt.Status)
			}
		}
	}

	if got := PendingCount(appointments); got != 2 {
		t.Fatalf("PendingCount = %d, want 2", got)
	}
}
