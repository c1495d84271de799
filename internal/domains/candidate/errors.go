package candidate

import "errors"

var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrDuplicateSeat     = errors.New("seat already assigned to another candidate")
	ErrNoFieldsToUpdate  = errors.New("no valid fields provided for update")
	ErrEmptyWorkbook     = errors.New("workbook has no data rows")
	ErrTooManyRows       = errors.New("workbook exceeds the row limit")
)
