//go:build unit

package builder

import (
	"time"

	"salon-scheduler/internal/domain/appointment"
	"salon-scheduler/internal/domain/catalog"
)

// BaseTime is a fixed "now" used across tests: Monday 2030-06-03 10:00 local time.
var BaseTime = time.Date(2030, time.June, 3, 10, 0, 0, 0, time.Local)

// At returns BaseTime shifted by days at the given wall-clock hour and minute.
func At(days, hour, minute int) time.Time {
	return time.Date(BaseTime.Year(), BaseTime.Month(), BaseTime.Day()+days, hour, minute, 0, 0, time.Local)
}

type AppointmentBuilder struct {
	Client      catalog.Client
	Service     catalog.ServiceItem
	ScheduledAt time.Time
	Confirmed   bool
	Now         time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		Client:      NewClientBuilder().MustBuild(),
		Service:     NewServiceBuilder().MustBuild(),
		ScheduledAt: At(1, 10, 0),
		Confirmed:   false,
		Now:         BaseTime,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithClient(c catalog.Client) *AppointmentBuilder {
	b.Client = c
	return b
}

func (b *AppointmentBuilder) WithScheduledAt(t time.Time) *AppointmentBuilder {
	b.ScheduledAt = t
	return b
}

func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	return appointment.NewAppointment(b.Client, b.Service, b.ScheduledAt, b.Confirmed, b.Now)
}

func (b *AppointmentBuilder) MustBuild() *appointment.Appointment {
	a, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return a
}
