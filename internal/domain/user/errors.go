package user

import "github.com/basratech/hr-suite-go/internal/pkg/apperror"

var (
	ErrUserNotFound    = apperror.New(apperror.KindNotFound, "user not found")
	ErrUserEmailExists = apperror.New(apperror.KindConflict, "email already registered")
)
