package staff

import "errors"

// Staff domain errors
var (
	ErrStaffNotFound = errors.New("staff not found")
	ErrStaffIDExists = errors.New("staff id already exists")
)
