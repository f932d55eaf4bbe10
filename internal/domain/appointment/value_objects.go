package appointment

import (
	"time"
)

// CancellationStatus tracks the cancellation lifecycle of one appointment.
// Rejected is transient: rejecting a request puts the appointment back to None.
type CancellationStatus string

const (
	CancellationNone     CancellationStatus = "none"
	CancellationPending  CancellationStatus = "pending"
	CancellationApproved CancellationStatus = "approved"
	CancellationRejected CancellationStatus = "rejected"
)

func NewCancellationStatus(s string) (CancellationStatus, error) {
	status := CancellationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s CancellationStatus) IsValid() bool {
	switch s {
	case CancellationNone, CancellationPending, CancellationApproved, CancellationRejected:
		return true
	default:
		return false
	}
}

func (s CancellationStatus) String() string { return string(s) }

const hoursLayout = "15:04"

// BusinessHours is an inclusive wall-clock window evaluated in loc.
type BusinessHours struct {
	open  time.Duration
	close time.Duration
	loc   *time.Location
}

func NewBusinessHours(openAt, closeAt string, loc *time.Location) (BusinessHours, error) {
	opening, err := parseTimeOfDay(openAt)
	if err != nil {
		return BusinessHours{}, err
	}
	closing, err := parseTimeOfDay(closeAt)
	if err != nil {
		return BusinessHours{}, err
	}
	if opening > closing {
		return BusinessHours{}, ErrInvalidHoursRange
	}
	if loc == nil {
		loc = time.Local
	}
	return BusinessHours{open: opening, close: closing, loc: loc}, nil
}

// DefaultBusinessHours is 08:00 through 20:00 local time.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{open: 8 * time.Hour, close: 20 * time.Hour, loc: time.Local}
}

// Contains reports whether t falls inside the window, both ends included.
func (b BusinessHours) Contains(t time.Time) bool {
	local := t.In(b.loc)
	tod := time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())
	return tod >= b.open && tod <= b.close
}

func (b BusinessHours) Location() *time.Location { return b.loc }

func (b BusinessHours) String() string {
	base := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.Add(b.open).Format(hoursLayout) + "-" + base.Add(b.close).Format(hoursLayout)
}

func parseTimeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse(hoursLayout, s)
	if err != nil {
		return 0, ErrInvalidHoursFormat
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
