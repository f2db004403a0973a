package schema

import (
	"errors"
	"testing"

	"foodie-site-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReservation() models.ReservationInput {
	return models.ReservationInput{
		FirstName: "Asha",
		LastName:  "Patil",
		Email:     "asha@example.com",
		Phone:     "9876543210",
		Address:   "Station Road, Ambernath",
		Date:      "2026-10-20",
		Time:      "19:30",
		Guests:    2,
	}
}

func fieldErr(t *testing.T, err error, field string) FieldError {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	assert.Equal(t, FailedMessage, verr.Message)
	fe, ok := verr.Field(field)
	require.True(t, ok, "no error for field %q in %v", field, verr.Fields)
	return fe
}

func TestCheck_ReservationGuests(t *testing.T) {
	in := validReservation()
	in.Guests = 1
	assert.NoError(t, Check(in))

	in.Guests = 0
	fe := fieldErr(t, Check(in), "guests")
	assert.Equal(t, "At least 1 guest required", fe.Message)
}

func TestCheck_ReservationRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ReservationInput)
		field  string
	}{
		{"missing first name", func(r *models.ReservationInput) { r.FirstName = "" }, "firstName"},
		{"missing last name", func(r *models.ReservationInput) { r.LastName = "" }, "lastName"},
		{"bad email", func(r *models.ReservationInput) { r.Email = "not-an-email" }, "email"},
		{"short phone", func(r *models.ReservationInput) { r.Phone = "12345" }, "phone"},
		{"missing address", func(r *models.ReservationInput) { r.Address = "" }, "address"},
		{"bad date", func(r *models.ReservationInput) { r.Date = "20/10/2026" }, "date"},
		{"bad time", func(r *models.ReservationInput) { r.Time = "7pm" }, "time"},
		{"time out of range", func(r *models.ReservationInput) { r.Time = "25:00" }, "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validReservation()
			tt.mutate(&in)
			fieldErr(t, Check(&in), tt.field)
		})
	}
}

func TestCheck_ReservationMessages(t *testing.T) {
	in := validReservation()
	in.Date, in.Time = "", ""
	err := Check(in)
	assert.Equal(t, "Date is required", fieldErr(t, err, "date").Message)
	assert.Equal(t, "Time is required", fieldErr(t, err, "time").Message)
}

func TestCheck_TimeWithSeconds(t *testing.T) {
	in := validReservation()
	in.Time = "19:30:00"
	assert.NoError(t, Check(in))
}

func TestCheck_PhoneLengthOnly(t *testing.T) {
	in := validReservation()
	in.Phone = "+91 98765"
	fieldErr(t, Check(in), "phone")

	in.Phone = "abcdefghij"
	assert.NoError(t, Check(in), "phone format beyond length is not checked")
}

func TestCheck_ReviewRating(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		err := Check(models.ReviewInput{Name: "Asha", Rating: rating, Comment: "Good"})
		fe := fieldErr(t, err, "rating")
		assert.Equal(t, "Rating must be between 1 and 5", fe.Message)
	}
	for _, rating := range []int{1, 5} {
		assert.NoError(t, Check(models.ReviewInput{Name: "Asha", Rating: rating, Comment: "Good"}))
	}
}

func TestCheck_ContactEmail(t *testing.T) {
	err := Check(models.ContactMessageInput{Name: "Ravi", Email: "not-an-email", Phone: "9876543210", Message: "Hi"})
	fe := fieldErr(t, err, "email")
	assert.Equal(t, "Invalid email address", fe.Message)
	assert.Contains(t, err.Error(), "email")
}

func TestCheck_ReportsEveryField(t *testing.T) {
	var verr *ValidationError
	require.ErrorAs(t, Check(models.ContactMessageInput{}), &verr)
	var fields []string
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"name", "email", "phone", "message"}, fields)
}

func TestParse_IgnoresUnknownFields(t *testing.T) {
	in, err := Parse[models.ReviewInput]([]byte(`{"name":"Asha","rating":5,"comment":"Excellent food","id":99,"date":"1999-01-01","extra":true}`))
	require.NoError(t, err)
	assert.Equal(t, models.ReviewInput{Name: "Asha", Rating: 5, Comment: "Excellent food"}, in)
}

func TestParse_NonNumericGuests(t *testing.T) {
	_, err := Parse[models.ReservationInput]([]byte(`{"firstName":"A","guests":"two"}`))
	fe := fieldErr(t, err, "guests")
	assert.Equal(t, "Expected integer, received string", fe.Message)
}

func TestParse_FractionalRating(t *testing.T) {
	_, err := Parse[models.ReviewInput]([]byte(`{"name":"Asha","rating":4.5,"comment":"ok"}`))
	fe := fieldErr(t, err, "rating")
	assert.Equal(t, "Expected integer, received number 4.5", fe.Message)
}

func TestParse_MalformedBody(t *testing.T) {
	_, err := Parse[models.ContactMessageInput]([]byte(`{"name":`))
	fieldErr(t, err, "body")
}

func TestGinValidator_SkipsNonStructs(t *testing.T) {
	v := GinValidator{}
	assert.NoError(t, v.ValidateStruct([]int{1, 2}))
	assert.Error(t, v.ValidateStruct(&models.ReviewInput{}))
	assert.NotNil(t, v.Engine())
}
