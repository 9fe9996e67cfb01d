package holiday

import "github.com/basratech/hr-suite-go/internal/pkg/apperror"

var (
	ErrHolidayExists = apperror.New(apperror.KindConflict, "holiday already exists for this date")
)
