package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHospitalAddDoctorsLinksWholeBatch(t *testing.T) {
	h := NewHospital("PPTH", "1 Hospital Dr", "555-0100")
	doctors := []*Doctor{
		NewDoctor("Greg", "House", "Diagnostics", "house@ppth.org", "555-0101", "Dr.", "Physician", "Princeton"),
		NewDoctor("James", "Wilson", "Oncology", "wilson@ppth.org", "555-0102", "Dr.", "Physician", "Princeton"),
	}

	require.NoError(t, h.AddDoctors(doctors))
	assert.Len(t, h.Doctors, 2)
	for _, d := range doctors {
		assert.Equal(t, h.ID, d.HospitalID)
	}
}

func TestHospitalAddDoctorsRejectsWholeBatchOnOneInvalid(t *testing.T) {
	h := NewHospital("PPTH", "1 Hospital Dr", "555-0100")
	valid := NewDoctor("Greg", "House", "Diagnostics", "house@ppth.org", "555-0101", "Dr.", "Physician", "Princeton")
	invalid := NewDoctor("James", "Wilson", "", "wilson@ppth.org", "555-0102", "Dr.", "Physician", "Princeton")

	err := h.AddDoctors([]*Doctor{valid, invalid})
	assert.EqualError(t, err, "doctor field specialization must not be empty")
	assert.Empty(t, h.Doctors)
	assert.Zero(t, valid.HospitalID)
}

func TestDoctorAddReviewRatingBounds(t *testing.T) {
	d := NewDoctor("Greg", "House", "Diagnostics", "house@ppth.org", "555-0101", "Dr.", "Physician", "Princeton")

	assert.EqualError(t, d.AddReview("terrible", 0), "review rating must be between 1 and 5")
	assert.EqualError(t, d.AddReview("too good", 6), "review rating must be between 1 and 5")
	assert.Empty(t, d.Reviews)

	require.NoError(t, d.AddReview("brilliant but rude", 4))
	require.Len(t, d.Reviews, 1)
	assert.Equal(t, d.ID, d.Reviews[0].DoctorID)
	assert.Equal(t, 4, d.Reviews[0].Rating)
}
