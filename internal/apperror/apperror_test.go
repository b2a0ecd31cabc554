package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestValidation_CarriesDetails(t *testing.T) {
	details := map[string]string{"amount": "amount is required"}

	appErr := Validation(details)

	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, "Validation failed", appErr.Message)
	assert.Equal(t, details, appErr.Details)
	assert.Equal(t, "Validation failed", appErr.Error())
}

func TestError_WrapsCause(t *testing.T) {
	cause := errors.New("boom")
	appErr := Malformed(cause)

	assert.Equal(t, "Invalid data: boom", appErr.Error())
	assert.ErrorIs(t, appErr, cause)
}

func TestFromStore_Nil(t *testing.T) {
	assert.NoError(t, FromStore(nil))
}

func TestFromStore_DuplicateKey(t *testing.T) {
	dup := mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000}},
	}

	err := FromStore(dup)

	var appErr *Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindConflict, appErr.Kind)
	assert.Equal(t, "Resource already exists", appErr.Message)
}

func TestFromStore_BadValue(t *testing.T) {
	err := FromStore(mongo.CommandError{Code: 2, Message: "bad value"})

	var appErr *Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, KindMalformed, appErr.Kind)
	assert.Equal(t, "Invalid data", appErr.Message)
}

func TestFromStore_Unclassified(t *testing.T) {
	cause := errors.New("connection refused")

	err := FromStore(cause)

	var appErr *Error
	assert.False(t, errors.As(err, &appErr))
	assert.ErrorIs(t, err, cause)
}
