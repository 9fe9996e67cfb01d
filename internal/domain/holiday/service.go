package holiday

import "context"

type HolidayService interface {
	AddHoliday(ctx context.Context, req AddHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, filter ListHolidaysFilter) ([]HolidayResponse, error)
	ListMonthHolidays(ctx context.Context, year, month int) ([]HolidayResponse, error)
}
