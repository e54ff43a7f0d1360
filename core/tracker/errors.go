package tracker

import "errors"

var (
	// ErrPermissionDenied is returned by a Platform when listing invites or reading
	// the audit log is not allowed. The Tracker treats it as "no data".
	ErrPermissionDenied = errors.New("tracker: permission denied")

	// ErrStopped is returned by every operation after Stop.
	ErrStopped = errors.New("tracker: stopped")
)

// ErrInvalidInvite is returned when an invite lacks a guild id or a code.
var ErrInvalidInvite = errors.New("tracker: invite without guild id or code")
