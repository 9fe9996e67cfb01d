package staff

import "github.com/basratech/hr-suite-go/internal/pkg/apperror"

// Staff domain errors
var (
	ErrStaffNotFound    = apperror.New(apperror.KindNotFound, "staff not found")
	ErrStaffEmailExists = apperror.New(apperror.KindConflict, "staff with this email already exists")
)
