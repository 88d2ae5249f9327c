package response

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string    `validate:"required"`
	Email string    `validate:"email"`
	Seats int       `validate:"gt=0"`
	Cost  float64   `validate:"gte=0"`
	Role  string    `validate:"oneof=attendee organizer"`
	Start time.Time `validate:"required"`
	End   time.Time `validate:"gtfield=Start"`
}

func TestValidationError(t *testing.T) {
	now := time.Now()

	err := validator.New().Struct(sample{
		Email: "nope",
		Seats: 0,
		Cost:  -1,
		Role:  "admin",
		Start: now,
		End:   now,
	})

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))

	resp := ValidationError(errs)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field Name is a required field, "+
			"field Email is not a valid email, "+
			"field Seats must be greater than 0, "+
			"field Cost must be at least 0, "+
			"field Role must be one of [attendee organizer], "+
			"field End must be after Start",
		resp.Error,
	)
}

func TestOKAndError(t *testing.T) {
	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, Error("boom"))
}
