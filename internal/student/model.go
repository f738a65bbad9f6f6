package student

import (
	"encoding/json"
	"time"

	"github.com/uptrace/bun"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
)

// Status is the account state stored in is_active.
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

type Name struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
}

// FullName joins the three name parts with single spaces. An empty middle
// name still contributes its separator.
func FullName(n Name) string {
	return n.FirstName + " " + n.MiddleName + " " + n.LastName
}

type Guardian struct {
	FatherName       string `json:"fatherName"`
	FatherOccupation string `json:"fatherOccupation"`
	FatherContactNo  string `json:"fatherContactNo"`
	MotherName       string `json:"motherName"`
	MotherOccupation string `json:"motherOccupation"`
	MotherContactNo  string `json:"motherContactNo"`
}

type LocalGuardian struct {
	Name       string `json:"name"`
	Occupation string `json:"occupation"`
	ContactNo  string `json:"contactNo"`
	Address    string `json:"address"`
}

type Student struct {
	bun.BaseModel `bun:"table:students,alias:s"`

	ID                 string        `bun:"id,pk" json:"id"`
	Password           string        `bun:"password,notnull" json:"-"`
	Name               Name          `bun:"name,type:jsonb,notnull" json:"name"`
	Gender             Gender        `bun:"gender,notnull" json:"gender"`
	DateOfBirth        string        `bun:"date_of_birth" json:"dateOfBirth,omitempty"`
	Email              string        `bun:"email,unique,notnull" json:"email"`
	ContactNo          string        `bun:"contact_no,notnull" json:"contactNo"`
	EmergencyContactNo string        `bun:"emergency_contact_no,notnull" json:"emergencyContactNo"`
	BloodGroup         BloodGroup    `bun:"blood_group" json:"bloodGroup,omitempty"`
	PresentAddress     string        `bun:"present_address,notnull" json:"presentAddress"`
	PermanentAddress   string        `bun:"permanent_address,notnull" json:"permanentAddress"`
	Guardian           Guardian      `bun:"guardian,type:jsonb,notnull" json:"guardian"`
	LocalGuardian      LocalGuardian `bun:"local_guardian,type:jsonb,notnull" json:"localGuardian"`
	ProfileImg         string        `bun:"profile_img" json:"profileImg,omitempty"`
	IsActive           Status        `bun:"is_active,notnull,default:'active'" json:"isActive"`
	IsDeleted          bool          `bun:"is_deleted,notnull,default:false" json:"isDeleted"`
	CreatedAt          time.Time     `bun:"created_at,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt          time.Time     `bun:"updated_at,notnull,default:current_timestamp" json:"updatedAt"`
}

// FullName is computed, never stored.
func (s *Student) FullName() string {
	return FullName(s.Name)
}

// MarshalJSON adds the virtual fullName field.
func (s Student) MarshalJSON() ([]byte, error) {
	type plain Student
	return json.Marshal(struct {
		plain
		FullName string `json:"fullName"`
	}{
		plain:    plain(s),
		FullName: FullName(s.Name),
	})
}
