package leaverequest

import "errors"

// Leave request domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveDateNotFound    = errors.New("requested date not part of this leave request")
)
