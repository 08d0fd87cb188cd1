package employee

// Field keys, matching the JSON names of the descriptive attributes.
const (
	KeyFirstName     = "firstName"
	KeyLastName      = "lastName"
	KeyStreetAddress = "streetAddress"
	KeyCity          = "city"
	KeyStateProvince = "stateProvince"
	KeyPostalCode    = "postalCode"
	KeyCountry       = "country"
)

// Section groups fields for display.
type Section int

const (
	SectionPersonal Section = iota
	SectionAddress
)

func (s Section) String() string {
	switch s {
	case SectionPersonal:
		return "Personal Information"
	case SectionAddress:
		return "Address"
	default:
		return "Unknown"
	}
}

// Field describes one descriptive attribute of an Employee.
type Field struct {
	Key         string
	Label       string
	Placeholder string
	MinLen      int
	Section     Section
}

var fields = []Field{
	{Key: KeyFirstName, Label: "First Name", Placeholder: "John", MinLen: 2, Section: SectionPersonal},
	{Key: KeyLastName, Label: "Last Name", Placeholder: "Doe", MinLen: 2, Section: SectionPersonal},
	{Key: KeyStreetAddress, Label: "Street Address", Placeholder: "123 Main Street", MinLen: 5, Section: SectionAddress},
	{Key: KeyCity, Label: "City", Placeholder: "New York", MinLen: 2, Section: SectionAddress},
	{Key: KeyStateProvince, Label: "State/Province", Placeholder: "NY", MinLen: 2, Section: SectionAddress},
	{Key: KeyPostalCode, Label: "Postal Code", Placeholder: "10001", MinLen: 3, Section: SectionAddress},
	{Key: KeyCountry, Label: "Country", Placeholder: "United States", MinLen: 2, Section: SectionAddress},
}

// Fields returns the descriptive field catalogue in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldByKey looks up a catalogue entry.
func FieldByKey(key string) (Field, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// Get returns the value of the named field, or "" for unknown keys.
func (e Employee) Get(key string) string {
	switch key {
	case KeyFirstName:
		return e.FirstName
	case KeyLastName:
		return e.LastName
	case KeyStreetAddress:
		return e.StreetAddress
	case KeyCity:
		return e.City
	case KeyStateProvince:
		return e.StateProvince
	case KeyPostalCode:
		return e.PostalCode
	case KeyCountry:
		return e.Country
	default:
		return ""
	}
}

// Set assigns the named field. Unknown keys are ignored.
func (e *Employee) Set(key, value string) {
	switch key {
	case KeyFirstName:
		e.FirstName = value
	case KeyLastName:
		e.LastName = value
	case KeyStreetAddress:
		e.StreetAddress = value
	case KeyCity:
		e.City = value
	case KeyStateProvince:
		e.StateProvince = value
	case KeyPostalCode:
		e.PostalCode = value
	case KeyCountry:
		e.Country = value
	}
}
