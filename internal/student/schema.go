package student

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StorageSchema guards writes to the students table. It stops at the first
// failing field.
type StorageSchema struct {
	validate *validator.Validate
	rules    []rule
}

func NewStorageSchema() *StorageSchema {
	return &StorageSchema{validate: newValidator(), rules: rules}
}

// Validate trims every string field of s in place, fills the status default
// and checks the storage rules.
func (sc *StorageSchema) Validate(s *Student) error {
	s.normalize()
	values := s.fieldValues()

	for _, r := range sc.rules {
		if r.Storage == "" {
			continue
		}
		value := values[r.Path]
		if err := sc.validate.Var(value, r.Storage); err != nil {
			return &StorageValidationError{
				Field:   r.Path,
				Message: storageMessage(r, firstTag(err), value),
			}
		}
	}
	return nil
}

// InputSchema checks an untrusted create payload and reports every failure.
type InputSchema struct {
	validate *validator.Validate
	rules    []rule
}

func NewInputSchema() *InputSchema {
	return &InputSchema{validate: newValidator(), rules: rules}
}

// Parse validates req and returns the student it describes with defaults
// applied (isActive "active", isDeleted false).
func (sc *InputSchema) Parse(req *CreateStudentRequest) (*Student, error) {
	if req == nil {
		return nil, &InputValidationError{Issues: []Issue{{Path: "", Message: "Required"}}}
	}

	var issues []Issue
	objects := req.objects()
	reported := make(map[string]bool)
	values := req.fieldValues()

	for _, r := range sc.rules {
		if r.Input == "" {
			continue
		}
		if obj, _, nested := strings.Cut(r.Path, "."); nested && !objects[obj] {
			if !reported[obj] {
				reported[obj] = true
				issues = append(issues, Issue{Path: obj, Message: "Required"})
			}
			continue
		}

		value := values[r.Path]
		if value == nil {
			if strings.HasPrefix(r.Input, "required") {
				issues = append(issues, Issue{Path: r.Path, Message: "Required"})
			}
			continue
		}
		if err := sc.validate.Var(*value, r.Input); err != nil {
			issues = append(issues, Issue{
				Path:    r.Path,
				Message: inputMessage(r, firstTag(err), *value),
			})
		}
	}

	if len(issues) > 0 {
		return nil, &InputValidationError{Issues: issues}
	}
	return req.toStudent(), nil
}

type failedTag struct {
	tag   string
	param string
}

func firstTag(err error) failedTag {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return failedTag{tag: verrs[0].Tag(), param: verrs[0].Param()}
	}
	return failedTag{tag: "invalid"}
}

func storageMessage(r rule, ft failedTag, value string) string {
	if msg, ok := r.StorageMessages[ft.tag]; ok {
		return strings.ReplaceAll(msg, "{VALUE}", value)
	}
	switch ft.tag {
	case "required":
		return r.Label + " is required."
	case "max":
		return fmt.Sprintf("%s can not be more than %s characters", r.Label, ft.param)
	case "oneof":
		return fmt.Sprintf("`%s` is not a valid enum value for path `%s`.", value, r.Path)
	case "email":
		return fmt.Sprintf("%s is not a valid email", value)
	}
	return fmt.Sprintf("%s is invalid", r.Label)
}

func inputMessage(r rule, ft failedTag, value string) string {
	if msg, ok := r.InputMessages[ft.tag]; ok {
		return strings.ReplaceAll(msg, "{VALUE}", value)
	}
	switch ft.tag {
	case "required":
		return "String must contain at least 1 character(s)"
	case "min":
		return fmt.Sprintf("String must contain at least %s character(s)", ft.param)
	case "max":
		return fmt.Sprintf("String must contain at most %s character(s)", ft.param)
	case "email":
		return "Invalid email"
	case "oneof":
		options := strings.Fields(ft.param)
		for i, o := range options {
			options[i] = "'" + o + "'"
		}
		return fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", strings.Join(options, " | "), value)
	}
	return "Invalid input"
}

func (s *Student) normalize() {
	trim := func(fields ...*string) {
		for _, f := range fields {
			*f = strings.TrimSpace(*f)
		}
	}
	trim(&s.ID, &s.Password, &s.DateOfBirth, &s.Email, &s.ContactNo, &s.EmergencyContactNo,
		&s.PresentAddress, &s.PermanentAddress, &s.ProfileImg)
	trim(&s.Name.FirstName, &s.Name.MiddleName, &s.Name.LastName)
	trim(&s.Guardian.FatherName, &s.Guardian.FatherOccupation, &s.Guardian.FatherContactNo,
		&s.Guardian.MotherName, &s.Guardian.MotherOccupation, &s.Guardian.MotherContactNo)
	trim(&s.LocalGuardian.Name, &s.LocalGuardian.Occupation, &s.LocalGuardian.ContactNo,
		&s.LocalGuardian.Address)

	s.Gender = Gender(strings.TrimSpace(string(s.Gender)))
	s.BloodGroup = BloodGroup(strings.TrimSpace(string(s.BloodGroup)))
	s.IsActive = Status(strings.TrimSpace(string(s.IsActive)))
	if s.IsActive == "" {
		s.IsActive = StatusActive
	}
}

func (s *Student) fieldValues() map[string]string {
	return map[string]string{
		"id":                        s.ID,
		"password":                  s.Password,
		"name.firstName":            s.Name.FirstName,
		"name.middleName":           s.Name.MiddleName,
		"name.lastName":             s.Name.LastName,
		"gender":                    string(s.Gender),
		"dateOfBirth":               s.DateOfBirth,
		"email":                     s.Email,
		"contactNo":                 s.ContactNo,
		"emergencyContactNo":        s.EmergencyContactNo,
		"bloodGroup":                string(s.BloodGroup),
		"presentAddress":            s.PresentAddress,
		"permanentAddress":          s.PermanentAddress,
		"guardian.fatherName":       s.Guardian.FatherName,
		"guardian.fatherOccupation": s.Guardian.FatherOccupation,
		"guardian.fatherContactNo":  s.Guardian.FatherContactNo,
		"guardian.motherName":       s.Guardian.MotherName,
		"guardian.motherOccupation": s.Guardian.MotherOccupation,
		"guardian.motherContactNo":  s.Guardian.MotherContactNo,
		"localGuardian.name":        s.LocalGuardian.Name,
		"localGuardian.occupation":  s.LocalGuardian.Occupation,
		"localGuardian.contactNo":   s.LocalGuardian.ContactNo,
		"localGuardian.address":     s.LocalGuardian.Address,
		"profileImg":                s.ProfileImg,
		"isActive":                  string(s.IsActive),
	}
}
