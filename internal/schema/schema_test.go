package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/money"
	"github.com/rezonia/df-accountant/internal/schema"
)

const validRequest = `{
  "autoSchool": {
    "name": "DiamondAuto",
    "website": "https://diamondauto.ro",
    "phone": "+40723111222",
    "email": "office@diamondauto.ro"
  },
  "student": {
    "firstName": "Ioana",
    "lastName": "Marin",
    "email": "ioana.marin@student.ro",
    "phone": "0734567890"
  },
  "file": {
    "scholarshipStartDate": "2025-01-10",
    "criminalRecordExpiryDate": "2026-01-10",
    "medicalRecordExpiryDate": "2025-07-10",
    "status": "completed"
  },
  "teachingCategory": {
    "type": "B",
    "sessionCost": 150,
    "sessionDuration": 120,
    "scholarshipPrice": 2250,
    "minDrivingLessonsReq": 15
  },
  "vehicle": {
    "licensePlateNumber": "CJ-456-ABC",
    "transmissionType": "M",
    "color": "blue",
    "licenseType": "B"
  },
  "instructor": {
    "fullName": "Andrei Popescu"
  },
  "payment": {
    "sessionsPayed": 30,
    "scholarshipBasePayment": true
  }
}`

func TestParseRequest_Valid(t *testing.T) {
	req, err := schema.ParseRequest([]byte(validRequest))
	require.NoError(t, err)
	require.NotNil(t, req)

	assert.Equal(t, "DiamondAuto", req.AutoSchool.Name)
	assert.Equal(t, "Ioana", req.Student.FirstName)
	assert.Equal(t, "Marin", req.Student.LastName)
	assert.Empty(t, req.Student.CNP)
	assert.Equal(t, "2025-01-10", req.File.ScholarshipStartDate)
	assert.Equal(t, "completed", req.File.Status)
	assert.Equal(t, "B", req.TeachingCategory.Type)
	assert.True(t, req.TeachingCategory.SessionCost.Equal(money.FromInt(150)))
	assert.True(t, req.TeachingCategory.ScholarshipPrice.Equal(money.FromInt(2250)))
	assert.Equal(t, 120, req.TeachingCategory.SessionDuration)
	assert.Equal(t, 15, req.TeachingCategory.MinDrivingLessonsReq)
	assert.Equal(t, "CJ-456-ABC", req.Vehicle.LicensePlateNumber)
	assert.Equal(t, "Andrei Popescu", req.Instructor.FullName)
	assert.Equal(t, 30, req.Payment.SessionsPayed)
	assert.True(t, req.Payment.ScholarshipBasePayment)
}

func TestParseRequest_OptionalCNP(t *testing.T) {
	body := []byte(`{
  "autoSchool": {"name": "A", "website": "w", "phone": "p", "email": "e"},
  "student": {"firstName": "F", "lastName": "L", "email": "e", "phone": "p", "cnp": "1990101123456"},
  "file": {"scholarshipStartDate": "2025-01-10", "criminalRecordExpiryDate": "2026-01-10", "medicalRecordExpiryDate": "2025-07-10", "status": "active"},
  "teachingCategory": {"type": "B", "sessionCost": 100, "sessionDuration": 90, "scholarshipPrice": 2000, "minDrivingLessonsReq": 15},
  "vehicle": {"licensePlateNumber": "X", "transmissionType": "M", "color": "red", "licenseType": "B"},
  "instructor": {"fullName": "I"},
  "payment": {"sessionsPayed": 0, "scholarshipBasePayment": false}
}`)
	req, err := schema.ParseRequest(body)
	require.NoError(t, err)
	assert.Equal(t, "1990101123456", req.Student.CNP)
}

func TestParseRequest_NotJSON(t *testing.T) {
	_, err := schema.ParseRequest([]byte("not json at all"))
	require.Error(t, err)

	var vErr *model.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 1)
	assert.Equal(t, "json", vErr.Violations[0].Rule)
}

func TestParseRequest_MissingStudentObject(t *testing.T) {
	doc := map[string]any{}
	require.NoError(t, jsonUnmarshal(validRequest, &doc))
	delete(doc, "student")

	violations := schema.Validate(doc, schema.InvoiceRequest)
	require.Len(t, violations, 1)
	assert.Equal(t, "student", violations[0].Field)
	assert.Equal(t, "required", violations[0].Rule)
}

func TestValidate_BadDates(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{"day-month-year order", "10-01-2025"},
		{"slash separators", "2025/01/10"},
		{"impossible calendar date", "2025-13-40"},
		{"unpadded month", "2025-1-10"},
		{"trailing text", "2025-01-10x"},
		{"not a date", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := map[string]any{}
			require.NoError(t, jsonUnmarshal(validRequest, &doc))
			doc["file"].(map[string]any)["medicalRecordExpiryDate"] = tt.date

			violations := schema.Validate(doc, schema.InvoiceRequest)
			require.Len(t, violations, 1)
			assert.Equal(t, "file.medicalRecordExpiryDate", violations[0].Field)
			assert.Equal(t, "date", violations[0].Rule)
		})
	}
}

func TestValidate_ReportsAllViolationsInOnePass(t *testing.T) {
	doc := map[string]any{}
	require.NoError(t, jsonUnmarshal(validRequest, &doc))
	delete(doc, "instructor")
	doc["student"].(map[string]any)["firstName"] = json.Number("42")
	doc["file"].(map[string]any)["scholarshipStartDate"] = "10-01-2025"
	doc["teachingCategory"].(map[string]any)["sessionDuration"] = json.Number("0")

	violations := schema.Validate(doc, schema.InvoiceRequest)
	require.Len(t, violations, 4)

	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, v.Field)
	}
	assert.Contains(t, fields, "instructor")
	assert.Contains(t, fields, "student.firstName")
	assert.Contains(t, fields, "file.scholarshipStartDate")
	assert.Contains(t, fields, "teachingCategory.sessionDuration")
}

func TestValidate_WrongTypes(t *testing.T) {
	doc := map[string]any{}
	require.NoError(t, jsonUnmarshal(validRequest, &doc))
	doc["payment"].(map[string]any)["scholarshipBasePayment"] = "yes"
	doc["payment"].(map[string]any)["sessionsPayed"] = "30"
	doc["teachingCategory"].(map[string]any)["sessionCost"] = true

	violations := schema.Validate(doc, schema.InvoiceRequest)
	require.Len(t, violations, 3)
	for _, v := range violations {
		assert.Equal(t, "type", v.Rule)
	}
}

func TestValidate_NegativeAmounts(t *testing.T) {
	doc := map[string]any{}
	require.NoError(t, jsonUnmarshal(validRequest, &doc))
	doc["teachingCategory"].(map[string]any)["scholarshipPrice"] = json.Number("-1")
	doc["payment"].(map[string]any)["sessionsPayed"] = json.Number("-5")

	violations := schema.Validate(doc, schema.InvoiceRequest)
	require.Len(t, violations, 2)
	assert.Equal(t, "teachingCategory.scholarshipPrice", violations[0].Field)
	assert.Equal(t, "payment.sessionsPayed", violations[1].Field)
}

func TestValidate_EmptyRequiredString(t *testing.T) {
	doc := map[string]any{}
	require.NoError(t, jsonUnmarshal(validRequest, &doc))
	doc["autoSchool"].(map[string]any)["name"] = ""

	violations := schema.Validate(doc, schema.InvoiceRequest)
	require.Len(t, violations, 1)
	assert.Equal(t, "autoSchool.name", violations[0].Field)
}

func TestValidate_UnknownFieldsIgnored(t *testing.T) {
	doc := map[string]any{}
	require.NoError(t, jsonUnmarshal(validRequest, &doc))
	doc["somethingExtra"] = "ignored"
	doc["student"].(map[string]any)["nickname"] = "Io"

	assert.Empty(t, schema.Validate(doc, schema.InvoiceRequest))
}

func TestValidate_NonObjectEntity(t *testing.T) {
	doc := map[string]any{}
	require.NoError(t, jsonUnmarshal(validRequest, &doc))
	doc["vehicle"] = "CJ-456-ABC"

	violations := schema.Validate(doc, schema.InvoiceRequest)
	require.Len(t, violations, 1)
	assert.Equal(t, "vehicle", violations[0].Field)
	assert.Equal(t, "type", violations[0].Rule)
}

// jsonUnmarshal decodes with UseNumber, matching how ParseRequest reads
// request bodies.
func jsonUnmarshal(s string, doc *map[string]any) error {
	d := json.NewDecoder(strings.NewReader(s))
	d.UseNumber()
	return d.Decode(doc)
}
