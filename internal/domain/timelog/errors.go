package timelog

import "github.com/basratech/hr-suite-go/internal/pkg/apperror"

// Time tracking domain errors
var (
	ErrNoLoginRecord = apperror.New(apperror.KindNotFound, "no login record found")

	// Out of sequence
	ErrLoginWhileOnBreak = apperror.New(apperror.KindInvalidState, "cannot log in while on break")
	ErrAlreadyOnBreak    = apperror.New(apperror.KindInvalidState, "already on break")
	ErrNotLoggedIn       = apperror.New(apperror.KindInvalidState, "not logged in")
	ErrNoOpenBreak       = apperror.New(apperror.KindInvalidState, "no active break found")

	// Timestamp ordering
	ErrBreakBeforeLogin      = apperror.New(apperror.KindInvalidArgument, "break in time is before login time")
	ErrBreakOutBeforeBreakIn = apperror.New(apperror.KindInvalidArgument, "break out time is before break in time")
	ErrLogoutBeforeLogin     = apperror.New(apperror.KindInvalidArgument, "logout time is before login time")

	ErrInvalidStaffID = apperror.New(apperror.KindInvalidArgument, "staffId is required")
)
