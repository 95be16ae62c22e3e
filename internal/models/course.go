package models

import "time"

// Course is a read-only snapshot from the upstream course service. Seat
// counters are maintained server-side; the gateway never mutates them.
type Course struct {
	ID          int64  `json:"id"`
	Name        string `json:"nome"`
	Instructor  string `json:"professor"`
	StartDate   string `json:"data"`
	Hours       int    `json:"cargaHoraria"`
	Certificate string `json:"certificado"`
	TotalSeats  int    `json:"vagasTotais"`
	FilledSeats int    `json:"vagasPreenchidas"`
}

// HasOpenSeats reports whether at least one seat remains. A snapshot with
// FilledSeats >= TotalSeats is closed regardless of date.
func (c Course) HasOpenSeats() bool {
	return c.FilledSeats < c.TotalSeats
}

// IsOpenForEnrollment combines the seat check with the start-date cutoff:
// enrollment closes once the course has started.
func (c Course) IsOpenForEnrollment(today time.Time) bool {
	if !c.HasOpenSeats() {
		return false
	}
	start, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		// Unparseable start dates keep the course listed; the upstream
		// remains the authority on acceptance.
		return true
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return !day.After(start)
}

// CourseView is the listing shape served to clients, the snapshot plus the
// derived enrollment status.
type CourseView struct {
	Course
	Open bool `json:"inscricoesAbertas"`
}

// CreateCourseRequest is the admin payload for registering a new course.
type CreateCourseRequest struct {
	Name        string `json:"nome" validate:"required"`
	Instructor  string `json:"professor" validate:"required"`
	StartDate   string `json:"data" validate:"required"`
	Hours       int    `json:"cargaHoraria" validate:"gt=0"`
	Certificate string `json:"certificado"`
	TotalSeats  int    `json:"vagasTotais" validate:"gt=0"`
}
