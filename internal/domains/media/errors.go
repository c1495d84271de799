package media

import "errors"

var (
	ErrItemNotFound    = errors.New("gallery item not found")
	ErrInvalidFileType = errors.New("file type must be image or video")
	ErrNoFiles         = errors.New("no files uploaded")
)
