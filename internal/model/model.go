// Package model defines the invoice request entities, the derived invoice
// representation, and the error taxonomy shared by all pipeline stages.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchoolInfo identifies the driving school issuing the invoice.
type SchoolInfo struct {
	Name    string `json:"name"`
	Website string `json:"website"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// StudentInfo identifies the invoiced student. CNP is the optional national
// identifier.
type StudentInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CNP       string `json:"cnp,omitempty"`
}

// EnrollmentFile holds the student's enrollment record. The three dates are
// kept as their validated YYYY-MM-DD strings; they carry no ordering
// relationship to each other.
type EnrollmentFile struct {
	ScholarshipStartDate     string `json:"scholarshipStartDate"`
	CriminalRecordExpiryDate string `json:"criminalRecordExpiryDate"`
	MedicalRecordExpiryDate  string `json:"medicalRecordExpiryDate"`
	Status                   string `json:"status"`
}

// TeachingCategory describes the pricing of one license category.
type TeachingCategory struct {
	Type                 string          `json:"type"`
	SessionCost          decimal.Decimal `json:"sessionCost"`
	SessionDuration      int             `json:"sessionDuration"`
	ScholarshipPrice     decimal.Decimal `json:"scholarshipPrice"`
	MinDrivingLessonsReq int             `json:"minDrivingLessonsReq"`
}

// Vehicle describes the training vehicle shown on the invoice.
type Vehicle struct {
	LicensePlateNumber string `json:"licensePlateNumber"`
	TransmissionType   string `json:"transmissionType"`
	Color              string `json:"color"`
	LicenseType        string `json:"licenseType"`
}

// Instructor identifies the assigned instructor.
type Instructor struct {
	FullName string `json:"fullName"`
}

// PaymentInfo describes what the student is paying for on this invoice.
type PaymentInfo struct {
	SessionsPayed          int  `json:"sessionsPayed"`
	ScholarshipBasePayment bool `json:"scholarshipBasePayment"`
}

// InvoiceRequest is the sole unit of input to the pipeline. It has no
// identity beyond the request itself and is immutable once validated.
type InvoiceRequest struct {
	AutoSchool       SchoolInfo       `json:"autoSchool"`
	Student          StudentInfo      `json:"student"`
	File             EnrollmentFile   `json:"file"`
	TeachingCategory TeachingCategory `json:"teachingCategory"`
	Vehicle          Vehicle          `json:"vehicle"`
	Instructor       Instructor       `json:"instructor"`
	Payment          PaymentInfo      `json:"payment"`
}

// LineItem is one billable row on the invoice.
type LineItem struct {
	Number      int             `json:"number"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Invoice is the fully computed, display-ready invoice: number, issue date,
// line items in calculation order, grand total, and the request entities
// needed for display.
type Invoice struct {
	Number    string          `json:"number"`
	IssueDate time.Time       `json:"issueDate"`
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Request   InvoiceRequest  `json:"request"`
}
