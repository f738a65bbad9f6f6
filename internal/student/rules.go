package student

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// rule describes one field. Storage and Input hold validator tags for the
// storage schema and the request schema; both are evaluated by the same
// validator instance so the predicates cannot drift. An input tag that starts
// with "required" makes the field mandatory; any other input tag only applies
// when the field is present, so "min=1" means optional but never empty.
type rule struct {
	Path    string
	Label   string
	Storage string
	Input   string

	// Per-tag message overrides for each schema.
	StorageMessages map[string]string
	InputMessages   map[string]string
}

const (
	genderTag     = "oneof=male female other"
	bloodGroupTag = "oneof=A+ A- B+ B- AB+ AB- O+ O-"
	statusTag     = "oneof=active blocked"
)

var rules = []rule{
	{Path: "id", Label: "Student ID", Storage: "required", Input: "required,max=100"},
	{Path: "password", Label: "Password", Storage: "required,max=20", Input: "required,max=20",
		StorageMessages: map[string]string{"max": "Password can not be more then 20 characters"}},

	{Path: "name.firstName", Label: "First Name", Storage: "required", Input: "required,max=100"},
	{Path: "name.middleName", Label: "Middle Name", Input: "max=100"},
	{Path: "name.lastName", Label: "Last Name", Storage: "required", Input: "required,max=100"},

	{Path: "gender", Label: "Gender", Storage: "required," + genderTag, Input: "required," + genderTag},
	{Path: "dateOfBirth", Label: "Date of Birth", Input: "required,max=20"},
	{Path: "email", Label: "Email", Storage: "required,email", Input: "required,max=255,email",
		StorageMessages: map[string]string{"email": "{VALUE} is not a valid email type"}},
	{Path: "contactNo", Label: "Contact Number", Storage: "required", Input: "required,max=15"},
	{Path: "emergencyContactNo", Label: "Emergency Contact Number", Storage: "required", Input: "required,max=15"},
	{Path: "bloodGroup", Label: "Blood Group", Storage: "omitempty," + bloodGroupTag, Input: bloodGroupTag},
	{Path: "presentAddress", Label: "Present Address", Storage: "required", Input: "required,max=255"},
	{Path: "permanentAddress", Label: "Permanent Address", Storage: "required", Input: "required,max=255"},

	{Path: "guardian.fatherName", Label: "Father's Name", Storage: "required,max=20,capitalized", Input: "required,max=20,capitalized",
		StorageMessages: map[string]string{
			"max":         "First Name can not be more than 20 characters",
			"capitalized": "{VALUE} in not capitalize format",
		},
		InputMessages: map[string]string{
			"capitalized": "Father's name should be in capitalized format",
		}},
	{Path: "guardian.fatherOccupation", Label: "Father's Occupation", Storage: "required", Input: "required,max=100"},
	{Path: "guardian.fatherContactNo", Label: "Father's Contact Number", Storage: "required", Input: "required,max=15"},
	{Path: "guardian.motherName", Label: "Mother's Name", Storage: "required", Input: "required,max=100"},
	{Path: "guardian.motherOccupation", Label: "Mother's Occupation", Storage: "required", Input: "required,max=100"},
	{Path: "guardian.motherContactNo", Label: "Mother's Contact Number", Storage: "required", Input: "required,max=15"},

	{Path: "localGuardian.name", Label: "Local Guardian's Name", Storage: "required", Input: "required,max=100"},
	{Path: "localGuardian.occupation", Label: "Local Guardian's Occupation", Storage: "required", Input: "required,max=100"},
	{Path: "localGuardian.contactNo", Label: "Local Guardian's Contact Number", Storage: "required", Input: "required,max=15"},
	{Path: "localGuardian.address", Label: "Local Guardian's Address", Storage: "required", Input: "required,max=255"},

	{Path: "profileImg", Label: "Profile Image", Input: "min=1,max=255"},
	{Path: "isActive", Label: "Status", Storage: "omitempty," + statusTag, Input: statusTag},
}

// newValidator returns the validator shared by both schemas.
func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("capitalized", func(fl validator.FieldLevel) bool {
		return IsCapitalized(fl.Field().String())
	})
	return v
}

// IsCapitalized reports whether upper-casing the first character leaves s
// unchanged. The empty string is capitalized.
func IsCapitalized(s string) bool {
	if s == "" {
		return true
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r))+s[size:] == s
}
