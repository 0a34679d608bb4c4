package service

import "errors"

var (
	// ErrDateOutOfRange is returned when a date resolves to a day offset
	// outside the plan window. Callers surface it as "no plan active for
	// this date", not as a failure.
	ErrDateOutOfRange = errors.New("date is outside the plan window")

	// ErrPlanMismatch is returned when a log's meal set disagrees with the
	// plan template for its day. Indicates a stale client or a plan edited
	// after logs existed; never silently merged.
	ErrPlanMismatch = errors.New("log meals do not match the plan template for this day")

	// ErrMealNotFound is returned when a referenced meal type is absent
	// from the day's template.
	ErrMealNotFound = errors.New("no planned meal with this meal type")

	// ErrReadOnlyLog is returned when an actor attempts to mutate a log
	// they are not permitted to edit.
	ErrReadOnlyLog = errors.New("log is read-only for this actor")

	// ErrInvalidPlan is returned when a submitted plan has an ill-formed
	// daily template.
	ErrInvalidPlan = errors.New("invalid nutrition plan")

	// ErrInvalidInput is returned for values outside their closed enum
	// sets.
	ErrInvalidInput = errors.New("invalid input")
)
