package employee

import (
	"encoding/json"
	"strings"
)

// Employee is one directory record. ID is assigned by the backend.
type Employee struct {
	ID            string `json:"_id,omitempty" yaml:"id,omitempty"`
	FirstName     string `json:"firstName" yaml:"firstName" validate:"min=2"`
	LastName      string `json:"lastName" yaml:"lastName" validate:"min=2"`
	StreetAddress string `json:"streetAddress" yaml:"streetAddress" validate:"min=5"`
	City          string `json:"city" yaml:"city" validate:"min=2"`
	StateProvince string `json:"stateProvince" yaml:"stateProvince" validate:"min=2"`
	PostalCode    string `json:"postalCode" yaml:"postalCode" validate:"min=3"`
	Country       string `json:"country" yaml:"country" validate:"min=2"`
}

// Draft is the body of a create request: the descriptive fields only.
type Draft struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	StateProvince string `json:"stateProvince"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
}

// Draft strips the identifier.
func (e Employee) Draft() Draft {
	return Draft{
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		StreetAddress: e.StreetAddress,
		City:          e.City,
		StateProvince: e.StateProvince,
		PostalCode:    e.PostalCode,
		Country:       e.Country,
	}
}

// Persisted reports whether the backend has assigned an identifier.
func (e Employee) Persisted() bool {
	return e.ID != ""
}

// FullName returns "First Last", collapsing missing parts.
func (e Employee) FullName() string {
	return strings.TrimSpace(strings.Join([]string{e.FirstName, e.LastName}, " "))
}

// UnmarshalJSON accepts the identifier under either "_id" or "id".
func (e *Employee) UnmarshalJSON(data []byte) error {
	type plain Employee
	var aux struct {
		plain
		AltID string `json:"id"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*e = Employee(aux.plain)
	if e.ID == "" {
		e.ID = aux.AltID
	}
	return nil
}
