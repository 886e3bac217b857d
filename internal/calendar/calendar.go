// Package calendar provides a static NSE trading-calendar lookup used for
// input hints (marking weekends and exchange holidays in the entry dialog).
// The metrics engine never consults it: no-trade days are recorded as
// zero-P&L entries, whatever the reason.
package calendar

import "time"

// nseHolidays maps YYYY-MM-DD dates to NSE holiday names.
var nseHolidays = map[string]string{
	// 2024
	"2024-01-26": "Republic Day",
	"2024-03-08": "Mahashivratri",
	"2024-03-25": "Holi",
	"2024-03-29": "Good Friday",
	"2024-04-11": "Id-Ul-Fitr (Ramadan Eid)",
	"2024-04-17": "Shri Ram Navami",
	"2024-05-01": "Maharashtra Day",
	"2024-05-20": "Election Day",
	"2024-06-17": "Bakri Id",
	"2024-07-17": "Moharram",
	"2024-08-15": "Independence Day",
	"2024-10-02": "Mahatma Gandhi Jayanti",
	"2024-11-01": "Diwali Laxmi Pujan",
	"2024-11-15": "Gurunanak Jayanti",
	"2024-12-25": "Christmas",

	// 2025
	"2025-02-19": "Chhatrapati Shivaji Maharaj Jayanti",
	"2025-02-26": "Mahashivratri",
	"2025-03-14": "Holi",
	"2025-03-31": "Eid-Ul-Fitr (Ramadan Eid)",
	"2025-04-10": "Shri Mahavir Jayanti",
	"2025-04-14": "Dr. Baba Saheb Ambedkar Jayanti",
	"2025-04-18": "Good Friday",
	"2025-05-01": "Maharashtra Day",
	"2025-05-12": "Buddha Pournima",
	"2025-08-15": "Independence Day",
	"2025-08-27": "Ganesh Chaturthi",
	"2025-09-05": "Id-E-Milad",
	"2025-10-02": "Mahatma Gandhi Jayanti",
	"2025-10-21": "Diwali Laxmi Pujan",
	"2025-10-22": "Diwali-Balipratipada",
	"2025-11-05": "Guru Nanak Jayanti",
	"2025-12-25": "Christmas",

	// 2026
	"2026-03-03": "Holi",
	"2026-03-26": "Shri Ram Navami",
	"2026-03-31": "Mahavir Jayanti",
	"2026-04-03": "Good Friday",
	"2026-04-14": "Dr. Baba Saheb Ambedkar Jayanti",
	"2026-05-01": "Maharashtra Day",
	"2026-08-15": "Independence Day",
	"2026-10-02": "Mahatma Gandhi Jayanti",
	"2026-11-05": "Guru Nanak Jayanti",
	"2026-12-25": "Christmas",
}

// IsHoliday reports whether the date is an NSE holiday.
func IsHoliday(date time.Time) bool {
	_, ok := nseHolidays[date.Format("2006-01-02")]
	return ok
}

// HolidayName returns the holiday name for the date, or "" if it is not a
// holiday.
func HolidayName(date time.Time) string {
	return nseHolidays[date.Format("2006-01-02")]
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsTradingDay reports whether the exchange is open on the date.
func IsTradingDay(date time.Time) bool {
	return !IsWeekend(date) && !IsHoliday(date)
}
