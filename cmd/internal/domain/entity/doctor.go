package entity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Doctor struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string    `gorm:"not null"`
	LastName       string    `gorm:"not null"`
	Specialization string    `gorm:"not null"`
	Email          string    `gorm:"not null"`
	Phone          string    `gorm:"not null"`
	Title          string    `gorm:"not null"`
	Profession     string    `gorm:"not null"`
	Location       string    `gorm:"not null"`
	HospitalID     uuid.UUID `gorm:"type:uuid"` // References: hospitals(id), zero when unassigned

	// Relations
	Appointments []Appointment `gorm:"foreignKey:DoctorID"`
	Reviews      []Review      `gorm:"foreignKey:DoctorID"`
}

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	DoctorID uuid.UUID `gorm:"type:uuid;not null"`
	Text     string
	Rating   int `gorm:"not null"`
}

func NewDoctor(firstName, lastName, specialization, email, phone, title, profession, location string) *Doctor {
	return &Doctor{
		ID:             uuid.New(),
		FirstName:      firstName,
		LastName:       lastName,
		Specialization: specialization,
		Email:          email,
		Phone:          phone,
		Title:          title,
		Profession:     profession,
		Location:       location,
	}
}

func (d Doctor) EntityID() uuid.UUID { return d.ID }
func (r Review) EntityID() uuid.UUID { return r.ID }

// CheckFields verifies that all required scalar fields are present.
func (d *Doctor) CheckFields() error {
	fields := map[string]string{
		"first_name":     d.FirstName,
		"last_name":      d.LastName,
		"specialization": d.Specialization,
		"email":          d.Email,
		"phone":          d.Phone,
		"title":          d.Title,
		"profession":     d.Profession,
		"location":       d.Location,
	}
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("doctor field %s must not be empty", name)
		}
	}
	return nil
}

// AddAppointment binds the appointment to the doctor. The doctor must be free
// for the whole interval; appointments already on the schedule must not overlap.
func (d *Doctor) AddAppointment(a *Appointment) error {
	for i := range d.Appointments {
		if d.Appointments[i].Overlaps(a) {
			return errors.New("doctor is not available in the given interval")
		}
	}
	a.DoctorID = d.ID
	d.Appointments = append(d.Appointments, *a)
	return nil
}

func (d *Doctor) AddReview(text string, rating int) error {
	if rating < 1 || rating > 5 {
		return errors.New("review rating must be between 1 and 5")
	}
	d.Reviews = append(d.Reviews, Review{
		ID:       uuid.New(),
		DoctorID: d.ID,
		Text:     text,
		Rating:   rating,
	})
	return nil
}

// UpdateDoctor copies the scalar fields of other onto the doctor.
func (d *Doctor) UpdateDoctor(other *Doctor) {
	d.FirstName = other.FirstName
	d.LastName = other.LastName
	d.Specialization = other.Specialization
	d.Email = other.Email
	d.Phone = other.Phone
	d.Title = other.Title
	d.Profession = other.Profession
	d.Location = other.Location
}
