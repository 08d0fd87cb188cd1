package model

import (
	"strings"
	"testing"

	"empctl/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormState_Create(t *testing.T) {
	f := NewFormState(nil)

	require.Len(t, f.Inputs, len(employee.Fields()))
	assert.False(t, f.IsEdit())
	assert.Equal(t, "Employee Details", f.Title())
	for _, in := range f.Inputs {
		assert.Empty(t, in.Value())
	}
	assert.Equal(t, "John", f.Inputs[0].Placeholder)
}

func TestNewFormState_EditPrefills(t *testing.T) {
	e := ada()
	f := NewFormState(&e)

	assert.True(t, f.IsEdit())
	assert.Equal(t, "Edit Employee Details", f.Title())
	assert.Equal(t, "Update the employee information below", f.Subtitle())
	assert.Equal(t, e, f.Values())
}

func TestFormState_Focus(t *testing.T) {
	f := NewFormState(nil)
	f.FocusCmd()
	assert.True(t, f.Inputs[0].Focused())

	f.FocusPrev()
	assert.True(t, f.OnLastField())
	assert.True(t, f.Inputs[len(f.Inputs)-1].Focused())
	assert.False(t, f.Inputs[0].Focused())

	f.FocusNext()
	assert.Equal(t, 0, f.Focus)
}

func TestFormState_Validate(t *testing.T) {
	f := NewFormState(nil)
	f.Inputs[0].SetValue("A")

	_, ok := f.Validate()
	assert.False(t, ok)
	assert.Equal(t, "First name must be at least 2 characters", f.Errors[employee.KeyFirstName])
	assert.Equal(t, 0, f.FirstInvalid())

	e := ada()
	filled := NewFormState(nil)
	for i, field := range employee.Fields() {
		filled.Inputs[i].SetValue(e.Get(field.Key))
	}
	values, ok := filled.Validate()
	assert.True(t, ok)
	assert.Empty(t, filled.Errors)
	assert.Empty(t, values.ID)
	assert.Equal(t, -1, filled.FirstInvalid())
}

func TestDetailState_Draft(t *testing.T) {
	var d DetailState
	e := ada()
	d.StartEdit(e)

	require.True(t, d.Editing)
	d.FocusNext()
	d.FocusNext()
	d.FocusNext()
	d.Inputs[d.Focus].SetValue("Springfield")

	draft := d.Draft(e)
	assert.Equal(t, "e1", draft.ID)
	assert.Equal(t, "Springfield", draft.City)
	assert.Equal(t, "Ada", draft.FirstName)

	d.StopEdit()
	assert.False(t, d.Editing)
	assert.Nil(t, d.Inputs)
}

func TestFieldInputs_KeepLongValues(t *testing.T) {
	e := ada()
	e.StreetAddress = strings.Repeat("Long Road ", 15)
	e.City = strings.Repeat("c", 120)

	f := NewFormState(&e)
	assert.Equal(t, e, f.Values())

	var d DetailState
	d.StartEdit(e)
	assert.Equal(t, e, d.Draft(e))
}
