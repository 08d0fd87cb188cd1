package model

import (
	"testing"

	"empctl/internal/employee"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ada() employee.Employee {
	return employee.Employee{
		ID:            "e1",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		StreetAddress: "12 St James's Square",
		City:          "London",
		StateProvince: "Greater London",
		PostalCode:    "SW1Y",
		Country:       "United Kingdom",
	}
}

func TestNavigator_StartsOnList(t *testing.T) {
	n := NewNavigator()
	assert.Equal(t, PageList, n.Page)
	assert.Nil(t, n.Current)
	assert.Nil(t, n.Editing)
}

func TestNavigator_AddNew(t *testing.T) {
	n := NewNavigator()
	n.View(ada())
	n.AddNew()

	assert.Equal(t, PageForm, n.Page)
	assert.Nil(t, n.Current)
	assert.Nil(t, n.Editing)
	assert.True(t, n.IsCreating())
}

func TestNavigator_EditWithoutCurrentIsNoop(t *testing.T) {
	n := NewNavigator()
	assert.False(t, n.Edit())
	assert.Equal(t, PageList, n.Page)
	assert.Nil(t, n.Editing)
}

func TestNavigator_EditCopiesCurrent(t *testing.T) {
	n := NewNavigator()
	n.View(ada())

	require.True(t, n.Edit())
	assert.Equal(t, PageForm, n.Page)
	require.NotNil(t, n.Editing)
	assert.Equal(t, "e1", n.Editing.ID)
	assert.False(t, n.IsCreating())

	n.Editing.City = "Paris"
	assert.Equal(t, "London", n.Current.City, "editing must not alias the current record")
}

func TestNavigator_SaveShowsServerRecord(t *testing.T) {
	n := NewNavigator()
	n.AddNew()

	saved := ada()
	saved.ID = "srv-77"
	n.Save(saved)

	assert.Equal(t, PageView, n.Page)
	require.NotNil(t, n.Current)
	assert.Equal(t, "srv-77", n.Current.ID)
	assert.Nil(t, n.Editing)
}

func TestNavigator_BackToList(t *testing.T) {
	n := NewNavigator()
	n.View(ada())
	n.Edit()
	n.BackToList()

	assert.Equal(t, PageList, n.Page)
	assert.Nil(t, n.Current)
	assert.Nil(t, n.Editing)
}

func TestNavigator_Forget(t *testing.T) {
	n := NewNavigator()
	n.View(ada())
	n.Forget("other")
	assert.NotNil(t, n.Current)

	n.Forget("", "e1")
	assert.Nil(t, n.Current)
}

func TestNavigator_Cycle(t *testing.T) {
	n := NewNavigator()
	n.AddNew()
	n.Save(ada())
	assert.True(t, n.Edit())
	n.Save(ada())
	n.BackToList()
	assert.Equal(t, PageList, n.Page)
	assert.Equal(t, "View", PageView.String())
}
