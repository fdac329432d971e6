package capture

import "errors"

var (
	ErrCameraUnavailable = errors.New("camera inaccessible")
	ErrEmptySnapshot     = errors.New("capture produced no data")
)
