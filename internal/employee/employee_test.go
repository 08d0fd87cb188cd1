package employee

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployee_UnmarshalJSON_Identifier(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "underscore id", body: `{"_id":"abc","firstName":"Jane"}`, want: "abc"},
		{name: "plain id", body: `{"id":"42","firstName":"Jane"}`, want: "42"},
		{name: "underscore wins", body: `{"_id":"abc","id":"42"}`, want: "abc"},
		{name: "no id", body: `{"firstName":"Jane"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Employee
			require.NoError(t, json.Unmarshal([]byte(tt.body), &e))
			assert.Equal(t, tt.want, e.ID)
		})
	}
}

func TestEmployee_UnmarshalJSON_List(t *testing.T) {
	body := `[{"_id":"1","firstName":"Ada","lastName":"Lovelace","city":"London","__v":0},{"_id":"2","firstName":"Alan"}]`
	var list []Employee
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Ada Lovelace", list[0].FullName())
	assert.Equal(t, "London", list[0].City)
	assert.Equal(t, "2", list[1].ID)
}

func TestEmployee_MarshalJSON_UsesUnderscoreID(t *testing.T) {
	data, err := json.Marshal(Employee{ID: "7", City: "Oslo"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"_id":"7"`)

	data, err = json.Marshal(Employee{City: "Oslo"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), `_id`)
}

func TestEmployee_Draft_DropsIdentifier(t *testing.T) {
	e := Employee{ID: "9", FirstName: "Jane", Country: "NZ"}
	data, err := json.Marshal(e.Draft())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "9")
	assert.JSONEq(t, `{"firstName":"Jane","lastName":"","streetAddress":"","city":"","stateProvince":"","postalCode":"","country":"NZ"}`, string(data))
}

func TestEmployee_GetSetRoundTripsEveryField(t *testing.T) {
	var e Employee
	for _, f := range Fields() {
		e.Set(f.Key, f.Placeholder)
	}
	for _, f := range Fields() {
		assert.Equal(t, f.Placeholder, e.Get(f.Key), f.Key)
	}
	e.Set("unknown", "x")
	assert.Equal(t, "", e.Get("unknown"))
}

func TestFields_ReturnsCopy(t *testing.T) {
	fs := Fields()
	fs[0].Label = "changed"
	assert.Equal(t, "First Name", Fields()[0].Label)
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Jane Doe", Employee{FirstName: "Jane", LastName: "Doe"}.FullName())
	assert.Equal(t, "Jane", Employee{FirstName: "Jane"}.FullName())
	assert.Equal(t, "", Employee{}.FullName())
}
