package student_test

import "student-service/internal/student"

func ptr[T any](v T) *T { return &v }

func validRequest() *student.CreateStudentRequest {
	return &student.CreateStudentRequest{
		ID:       ptr("S-1001"),
		Password: ptr("s3cret-pass"),
		Name: &student.NameInput{
			FirstName: ptr("John"),
			LastName:  ptr("Doe"),
		},
		Gender:             ptr("male"),
		DateOfBirth:        ptr("2001-04-12"),
		Email:              ptr("john.doe@example.com"),
		ContactNo:          ptr("01710000000"),
		EmergencyContactNo: ptr("01810000000"),
		BloodGroup:         ptr("O+"),
		PresentAddress:     ptr("12 College Road"),
		PermanentAddress:   ptr("7 River Lane"),
		Guardian: &student.GuardianInput{
			FatherName:       ptr("Richard"),
			FatherOccupation: ptr("Engineer"),
			FatherContactNo:  ptr("01910000000"),
			MotherName:       ptr("Mary"),
			MotherOccupation: ptr("Teacher"),
			MotherContactNo:  ptr("01610000000"),
		},
		LocalGuardian: &student.LocalGuardianInput{
			Name:       ptr("Alan"),
			Occupation: ptr("Merchant"),
			ContactNo:  ptr("01510000000"),
			Address:    ptr("3 Market Street"),
		},
		ProfileImg: ptr("https://img.example.com/s-1001.png"),
	}
}

func validStudent() *student.Student {
	return &student.Student{
		ID:                 "S-1001",
		Password:           "s3cret-pass",
		Name:               student.Name{FirstName: "John", LastName: "Doe"},
		Gender:             student.GenderMale,
		DateOfBirth:        "2001-04-12",
		Email:              "john.doe@example.com",
		ContactNo:          "01710000000",
		EmergencyContactNo: "01810000000",
		BloodGroup:         student.BloodGroupOPos,
		PresentAddress:     "12 College Road",
		PermanentAddress:   "7 River Lane",
		Guardian: student.Guardian{
			FatherName:       "Richard",
			FatherOccupation: "Engineer",
			FatherContactNo:  "01910000000",
			MotherName:       "Mary",
			MotherOccupation: "Teacher",
			MotherContactNo:  "01610000000",
		},
		LocalGuardian: student.LocalGuardian{
			Name:       "Alan",
			Occupation: "Merchant",
			ContactNo:  "01510000000",
			Address:    "3 Market Street",
		},
	}
}
