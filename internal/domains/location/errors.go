package location

import "errors"

var (
	ErrDivisionNotFound = errors.New("division not found")
	ErrDistrictNotFound = errors.New("district not found")
)
