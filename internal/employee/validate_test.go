package employee

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEmployee() Employee {
	return Employee{
		FirstName:     "Jane",
		LastName:      "Doe",
		StreetAddress: "742 Evergreen Terrace",
		City:          "Springfield",
		StateProvince: "OR",
		PostalCode:    "97403",
		Country:       "USA",
	}
}

func TestValidate_ValidRecordHasNoErrors(t *testing.T) {
	assert.Empty(t, Validate(validEmployee()))
}

func TestValidate_MinimumLengthBoundaries(t *testing.T) {
	tests := []struct {
		key     string
		message string
	}{
		{KeyFirstName, "First name must be at least 2 characters"},
		{KeyLastName, "Last name must be at least 2 characters"},
		{KeyStreetAddress, "Street address must be at least 5 characters"},
		{KeyCity, "City must be at least 2 characters"},
		{KeyStateProvince, "State/Province must be at least 2 characters"},
		{KeyPostalCode, "Postal code must be at least 3 characters"},
		{KeyCountry, "Country must be at least 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f, ok := FieldByKey(tt.key)
			assert.True(t, ok)

			for n := 0; n < f.MinLen; n++ {
				e := validEmployee()
				e.Set(tt.key, strings.Repeat("x", n))
				errs := Validate(e)
				assert.Equal(t, tt.message, errs[tt.key], "length %d", n)
				assert.Len(t, errs, 1, "only %s should fail", tt.key)
			}

			for _, n := range []int{f.MinLen, f.MinLen + 1, f.MinLen + 20} {
				e := validEmployee()
				e.Set(tt.key, strings.Repeat("x", n))
				assert.False(t, Validate(e).Has(tt.key), "length %d", n)
			}
		})
	}
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	e := validEmployee()
	e.FirstName = "Ål"
	assert.False(t, Validate(e).Has(KeyFirstName))

	e.FirstName = "Å"
	assert.True(t, Validate(e).Has(KeyFirstName))
}

func TestValidate_ReportsEveryFailingField(t *testing.T) {
	errs := Validate(Employee{})
	assert.Len(t, errs, len(Fields()))
	for _, f := range Fields() {
		assert.True(t, errs.Has(f.Key), f.Key)
	}
}

func TestValidate_IgnoresIdentifier(t *testing.T) {
	e := validEmployee()
	e.ID = ""
	assert.Empty(t, Validate(e))
}
