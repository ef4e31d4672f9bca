package invoice_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/df-accountant/internal/invoice"
	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/money"
)

var fixedTime = time.Date(2025, 1, 10, 14, 30, 0, 0, time.UTC)

func testRequest() *model.InvoiceRequest {
	return &model.InvoiceRequest{
		AutoSchool: model.SchoolInfo{Name: "DiamondAuto", Website: "https://diamondauto.ro", Phone: "+40723111222", Email: "office@diamondauto.ro"},
		Student:    model.StudentInfo{FirstName: "Ioana", LastName: "Marin", Email: "ioana.marin@student.ro", Phone: "0734567890"},
		File: model.EnrollmentFile{
			ScholarshipStartDate:     "2025-01-10",
			CriminalRecordExpiryDate: "2026-01-10",
			MedicalRecordExpiryDate:  "2025-07-10",
			Status:                   "completed",
		},
		TeachingCategory: model.TeachingCategory{
			Type:                 "B",
			SessionCost:          money.FromInt(150),
			SessionDuration:      120,
			ScholarshipPrice:     money.FromInt(2250),
			MinDrivingLessonsReq: 15,
		},
		Vehicle:    model.Vehicle{LicensePlateNumber: "CJ-456-ABC", TransmissionType: "M", Color: "blue", LicenseType: "B"},
		Instructor: model.Instructor{FullName: "Andrei Popescu"},
		Payment:    model.PaymentInfo{SessionsPayed: 30, ScholarshipBasePayment: true},
	}
}

func TestBuild_ScholarshipAndSessions(t *testing.T) {
	calc := invoice.NewCalculator(clockwork.NewFakeClockAt(fixedTime))
	inv := calc.Build(testRequest())

	require.Len(t, inv.Items, 2)

	scholarship := inv.Items[0]
	assert.Equal(t, 1, scholarship.Number)
	assert.Equal(t, "Școlarizare pentru categoria B", scholarship.Description)
	assert.Equal(t, 1, scholarship.Quantity)
	assert.Equal(t, "2250.00 RON", money.Format(scholarship.LineTotal))

	sessions := inv.Items[1]
	assert.Equal(t, 2, sessions.Number)
	assert.Equal(t, "Ședințe de conducere (120 min)", sessions.Description)
	assert.Equal(t, 30, sessions.Quantity)
	assert.Equal(t, "150.00 RON", money.Format(sessions.UnitPrice))
	assert.Equal(t, "4500.00 RON", money.Format(sessions.LineTotal))

	// 2250 + 30*150 = 6750
	assert.Equal(t, "6750.00 RON", money.Format(inv.Total))
}

func TestBuild_SessionsOnly(t *testing.T) {
	req := testRequest()
	req.Payment.ScholarshipBasePayment = false

	calc := invoice.NewCalculator(clockwork.NewFakeClockAt(fixedTime))
	inv := calc.Build(req)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, 1, inv.Items[0].Number)
	assert.Equal(t, "Ședințe de conducere (120 min)", inv.Items[0].Description)
	assert.Equal(t, "4500.00 RON", money.Format(inv.Total))
}

func TestBuild_ScholarshipOnly(t *testing.T) {
	req := testRequest()
	req.Payment.SessionsPayed = 0

	calc := invoice.NewCalculator(clockwork.NewFakeClockAt(fixedTime))
	inv := calc.Build(req)

	require.Len(t, inv.Items, 1)
	assert.Equal(t, 1, inv.Items[0].Number)
	assert.Equal(t, "Școlarizare pentru categoria B", inv.Items[0].Description)
	assert.Equal(t, "2250.00 RON", money.Format(inv.Total))
}

func TestBuild_NothingPaid(t *testing.T) {
	req := testRequest()
	req.Payment.SessionsPayed = 0
	req.Payment.ScholarshipBasePayment = false

	calc := invoice.NewCalculator(clockwork.NewFakeClockAt(fixedTime))
	inv := calc.Build(req)

	assert.Empty(t, inv.Items)
	assert.Equal(t, "0.00", money.FormatPlain(inv.Total))
}

func TestBuild_Deterministic(t *testing.T) {
	calc := invoice.NewCalculator(clockwork.NewFakeClockAt(fixedTime))

	first := calc.Build(testRequest())
	second := calc.Build(testRequest())

	assert.Equal(t, first.Number, second.Number)
	assert.Equal(t, first.IssueDate, second.IssueDate)
	require.Equal(t, len(first.Items), len(second.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].Description, second.Items[i].Description)
		assert.True(t, first.Items[i].LineTotal.Equal(second.Items[i].LineTotal))
	}
	assert.True(t, first.Total.Equal(second.Total))
}

func TestNumber(t *testing.T) {
	student := model.StudentInfo{FirstName: "Ioana", LastName: "Marin"}
	assert.Equal(t, "INV-20250110-MARIOA", invoice.Number(fixedTime, student))
}

func TestNumber_ShortNames(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"two-rune surname", "Wei", "Li", "INV-20250110-LIWEI"},
		{"single-rune names", "A", "B", "INV-20250110-BA"},
		{"empty names", "", "", "INV-20250110-"},
		{"multibyte runes", "Ștefan", "Țară", "INV-20250110-ȚARȘTE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := model.StudentInfo{FirstName: tt.first, LastName: tt.last}
			assert.Equal(t, tt.expected, invoice.Number(fixedTime, student))
		})
	}
}
