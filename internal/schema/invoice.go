package schema

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/money"
)

// InvoiceRequest is the explicit schema for the invoice request body: the
// six nested entities, their field kinds, and the rules they must satisfy.
var InvoiceRequest = []Field{
	{Name: "autoSchool", Kind: KindObject, Fields: []Field{
		{Name: "name", Kind: KindString, Rule: "required"},
		{Name: "website", Kind: KindString, Rule: "required"},
		{Name: "phone", Kind: KindString, Rule: "required"},
		{Name: "email", Kind: KindString, Rule: "required"},
	}},
	{Name: "student", Kind: KindObject, Fields: []Field{
		{Name: "firstName", Kind: KindString, Rule: "required"},
		{Name: "lastName", Kind: KindString, Rule: "required"},
		{Name: "email", Kind: KindString, Rule: "required"},
		{Name: "phone", Kind: KindString, Rule: "required"},
		{Name: "cnp", Kind: KindString, Optional: true},
	}},
	{Name: "file", Kind: KindObject, Fields: []Field{
		{Name: "scholarshipStartDate", Kind: KindDate},
		{Name: "criminalRecordExpiryDate", Kind: KindDate},
		{Name: "medicalRecordExpiryDate", Kind: KindDate},
		{Name: "status", Kind: KindString, Rule: "required"},
	}},
	{Name: "teachingCategory", Kind: KindObject, Fields: []Field{
		{Name: "type", Kind: KindString, Rule: "required"},
		{Name: "sessionCost", Kind: KindDecimal, Rule: "gte=0"},
		{Name: "sessionDuration", Kind: KindInt, Rule: "gt=0"},
		{Name: "scholarshipPrice", Kind: KindDecimal, Rule: "gte=0"},
		{Name: "minDrivingLessonsReq", Kind: KindInt, Rule: "gte=0"},
	}},
	{Name: "vehicle", Kind: KindObject, Fields: []Field{
		{Name: "licensePlateNumber", Kind: KindString, Rule: "required"},
		{Name: "transmissionType", Kind: KindString, Rule: "required"},
		{Name: "color", Kind: KindString, Rule: "required"},
		{Name: "licenseType", Kind: KindString, Rule: "required"},
	}},
	{Name: "instructor", Kind: KindObject, Fields: []Field{
		{Name: "fullName", Kind: KindString, Rule: "required"},
	}},
	{Name: "payment", Kind: KindObject, Fields: []Field{
		{Name: "sessionsPayed", Kind: KindInt, Rule: "gte=0"},
		{Name: "scholarshipBasePayment", Kind: KindBool},
	}},
}

// ParseRequest validates raw JSON against the invoice request schema and
// decodes it into a typed request. On failure it returns a ValidationError
// listing every violated field.
func ParseRequest(raw []byte) (*model.InvoiceRequest, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, model.NewValidationError([]Violation{
			{Field: "$", Rule: "json", Message: "request body is not a JSON object"},
		})
	}

	if violations := Validate(doc, InvoiceRequest); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	return Decode(doc), nil
}

// Decode turns a clean document into the typed request. Call it only after
// Validate passed; lookups cannot fail then, and absent optional fields
// decode to their zero values.
func Decode(doc map[string]any) *model.InvoiceRequest {
	school := object(doc, "autoSchool")
	student := object(doc, "student")
	file := object(doc, "file")
	category := object(doc, "teachingCategory")
	vehicle := object(doc, "vehicle")
	instructor := object(doc, "instructor")
	payment := object(doc, "payment")

	return &model.InvoiceRequest{
		AutoSchool: model.SchoolInfo{
			Name:    str(school, "name"),
			Website: str(school, "website"),
			Phone:   str(school, "phone"),
			Email:   str(school, "email"),
		},
		Student: model.StudentInfo{
			FirstName: str(student, "firstName"),
			LastName:  str(student, "lastName"),
			Email:     str(student, "email"),
			Phone:     str(student, "phone"),
			CNP:       str(student, "cnp"),
		},
		File: model.EnrollmentFile{
			ScholarshipStartDate:     str(file, "scholarshipStartDate"),
			CriminalRecordExpiryDate: str(file, "criminalRecordExpiryDate"),
			MedicalRecordExpiryDate:  str(file, "medicalRecordExpiryDate"),
			Status:                   str(file, "status"),
		},
		TeachingCategory: model.TeachingCategory{
			Type:                 str(category, "type"),
			SessionCost:          amount(category, "sessionCost"),
			SessionDuration:      integer(category, "sessionDuration"),
			ScholarshipPrice:     amount(category, "scholarshipPrice"),
			MinDrivingLessonsReq: integer(category, "minDrivingLessonsReq"),
		},
		Vehicle: model.Vehicle{
			LicensePlateNumber: str(vehicle, "licensePlateNumber"),
			TransmissionType:   str(vehicle, "transmissionType"),
			Color:              str(vehicle, "color"),
			LicenseType:        str(vehicle, "licenseType"),
		},
		Instructor: model.Instructor{
			FullName: str(instructor, "fullName"),
		},
		Payment: model.PaymentInfo{
			SessionsPayed:          integer(payment, "sessionsPayed"),
			ScholarshipBasePayment: boolean(payment, "scholarshipBasePayment"),
		},
	}
}

func object(doc map[string]any, key string) map[string]any {
	obj, _ := doc[key].(map[string]any)
	return obj
}

func str(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

func amount(obj map[string]any, key string) decimal.Decimal {
	n, ok := obj[key].(json.Number)
	if !ok {
		return money.Zero
	}
	d, err := money.FromJSONNumber(n)
	if err != nil {
		return money.Zero
	}
	return d
}

func integer(obj map[string]any, key string) int {
	n, ok := obj[key].(json.Number)
	if !ok {
		return 0
	}
	v, err := n.Int64()
	if err != nil {
		return 0
	}
	return int(v)
}

func boolean(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}
