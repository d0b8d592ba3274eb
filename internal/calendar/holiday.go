package calendar

import "github.com/chuling-hu/EoDeliveryForOffices/internal/domain"

// HolidayCalendar answers whether a date is a designated non-business day.
// Kept behind an interface so additional years or regions can be supplied
// without touching the policy.
type HolidayCalendar interface {
	HolidayName(d domain.Date) (string, bool)
}

// StaticHolidayCalendar is an immutable in-memory holiday table.
type StaticHolidayCalendar struct {
	names map[domain.Date]string
}

func NewStaticHolidayCalendar(entries map[domain.Date]string) *StaticHolidayCalendar {
	names := make(map[domain.Date]string, len(entries))
	for d, name := range entries {
		names[d] = name
	}
	return &StaticHolidayCalendar{names: names}
}

func (c *StaticHolidayCalendar) HolidayName(d domain.Date) (string, bool) {
	name, ok := c.names[d]
	return name, ok
}

// TaiwanHolidays returns the ROC public holiday table for 2025-2026.
// Weekend-observed holidays are listed on their adjusted weekday.
func TaiwanHolidays() *StaticHolidayCalendar {
	return NewStaticHolidayCalendar(map[domain.Date]string{
		"2025-01-01": "元旦",
		"2025-01-27": "春節彈性放假",
		"2025-01-28": "除夕",
		"2025-01-29": "春節",
		"2025-01-30": "春節",
		"2025-01-31": "春節",
		"2025-02-28": "和平紀念日",
		"2025-04-03": "兒童節補假",
		"2025-04-04": "兒童節",
		"2025-05-01": "勞動節",
		"2025-05-30": "端午節補假",
		"2025-10-06": "中秋節",
		"2025-10-10": "國慶日",

		"2026-01-01": "元旦",
		"2026-02-16": "除夕",
		"2026-02-17": "春節",
		"2026-02-18": "春節",
		"2026-02-19": "春節",
		"2026-02-20": "春節",
		"2026-02-27": "和平紀念日補假",
		"2026-04-03": "兒童節補假",
		"2026-04-06": "清明節補假",
		"2026-05-01": "勞動節",
		"2026-06-19": "端午節",
		"2026-09-25": "中秋節",
		"2026-10-09": "國慶日補假",
	})
}
