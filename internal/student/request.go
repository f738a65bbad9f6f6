package student

// Request payloads use pointers so an omitted field can be told apart from
// an empty one.

type NameInput struct {
	FirstName  *string `json:"firstName"`
	MiddleName *string `json:"middleName"`
	LastName   *string `json:"lastName"`
}

type GuardianInput struct {
	FatherName       *string `json:"fatherName"`
	FatherOccupation *string `json:"fatherOccupation"`
	FatherContactNo  *string `json:"fatherContactNo"`
	MotherName       *string `json:"motherName"`
	MotherOccupation *string `json:"motherOccupation"`
	MotherContactNo  *string `json:"motherContactNo"`
}

type LocalGuardianInput struct {
	Name       *string `json:"name"`
	Occupation *string `json:"occupation"`
	ContactNo  *string `json:"contactNo"`
	Address    *string `json:"address"`
}

// CreateStudentRequest is the body accepted for creating (and fully
// replacing) a student.
type CreateStudentRequest struct {
	ID                 *string             `json:"id"`
	Password           *string             `json:"password"`
	Name               *NameInput          `json:"name"`
	Gender             *string             `json:"gender"`
	DateOfBirth        *string             `json:"dateOfBirth"`
	Email              *string             `json:"email"`
	ContactNo          *string             `json:"contactNo"`
	EmergencyContactNo *string             `json:"emergencyContactNo"`
	BloodGroup         *string             `json:"bloodGroup"`
	PresentAddress     *string             `json:"presentAddress"`
	PermanentAddress   *string             `json:"permanentAddress"`
	Guardian           *GuardianInput      `json:"guardian"`
	LocalGuardian      *LocalGuardianInput `json:"localGuardian"`
	ProfileImg         *string             `json:"profileImg"`
	IsActive           *string             `json:"isActive"`
	IsDeleted          *bool               `json:"isDeleted"`
}

// objects returns the nested objects by path with a flag for presence.
func (r *CreateStudentRequest) objects() map[string]bool {
	return map[string]bool{
		"name":          r.Name != nil,
		"guardian":      r.Guardian != nil,
		"localGuardian": r.LocalGuardian != nil,
	}
}

// fieldValues flattens the payload by rule path. Fields under a missing
// object are left out.
func (r *CreateStudentRequest) fieldValues() map[string]*string {
	v := map[string]*string{
		"id":                 r.ID,
		"password":           r.Password,
		"gender":             r.Gender,
		"dateOfBirth":        r.DateOfBirth,
		"email":              r.Email,
		"contactNo":          r.ContactNo,
		"emergencyContactNo": r.EmergencyContactNo,
		"bloodGroup":         r.BloodGroup,
		"presentAddress":     r.PresentAddress,
		"permanentAddress":   r.PermanentAddress,
		"profileImg":         r.ProfileImg,
		"isActive":           r.IsActive,
	}
	if n := r.Name; n != nil {
		v["name.firstName"] = n.FirstName
		v["name.middleName"] = n.MiddleName
		v["name.lastName"] = n.LastName
	}
	if g := r.Guardian; g != nil {
		v["guardian.fatherName"] = g.FatherName
		v["guardian.fatherOccupation"] = g.FatherOccupation
		v["guardian.fatherContactNo"] = g.FatherContactNo
		v["guardian.motherName"] = g.MotherName
		v["guardian.motherOccupation"] = g.MotherOccupation
		v["guardian.motherContactNo"] = g.MotherContactNo
	}
	if lg := r.LocalGuardian; lg != nil {
		v["localGuardian.name"] = lg.Name
		v["localGuardian.occupation"] = lg.Occupation
		v["localGuardian.contactNo"] = lg.ContactNo
		v["localGuardian.address"] = lg.Address
	}
	return v
}

// toStudent maps an already validated payload, applying defaults.
func (r *CreateStudentRequest) toStudent() *Student {
	s := &Student{
		ID:                 deref(r.ID),
		Password:           deref(r.Password),
		Gender:             Gender(deref(r.Gender)),
		DateOfBirth:        deref(r.DateOfBirth),
		Email:              deref(r.Email),
		ContactNo:          deref(r.ContactNo),
		EmergencyContactNo: deref(r.EmergencyContactNo),
		BloodGroup:         BloodGroup(deref(r.BloodGroup)),
		PresentAddress:     deref(r.PresentAddress),
		PermanentAddress:   deref(r.PermanentAddress),
		ProfileImg:         deref(r.ProfileImg),
		IsActive:           StatusActive,
	}
	if r.IsActive != nil {
		s.IsActive = Status(*r.IsActive)
	}
	if r.IsDeleted != nil {
		s.IsDeleted = *r.IsDeleted
	}
	if n := r.Name; n != nil {
		s.Name = Name{
			FirstName:  deref(n.FirstName),
			MiddleName: deref(n.MiddleName),
			LastName:   deref(n.LastName),
		}
	}
	if g := r.Guardian; g != nil {
		s.Guardian = Guardian{
			FatherName:       deref(g.FatherName),
			FatherOccupation: deref(g.FatherOccupation),
			FatherContactNo:  deref(g.FatherContactNo),
			MotherName:       deref(g.MotherName),
			MotherOccupation: deref(g.MotherOccupation),
			MotherContactNo:  deref(g.MotherContactNo),
		}
	}
	if lg := r.LocalGuardian; lg != nil {
		s.LocalGuardian = LocalGuardian{
			Name:       deref(lg.Name),
			Occupation: deref(lg.Occupation),
			ContactNo:  deref(lg.ContactNo),
			Address:    deref(lg.Address),
		}
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
