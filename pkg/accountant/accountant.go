// Package accountant provides a public API for generating driving-school
// invoices from JSON requests.
//
// Example usage:
//
//	svc := accountant.NewService(accountant.Options{AssetsDir: "static/logo"})
//	doc, err := svc.Generate(ctx, body)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(doc.Filename, doc.Data, 0o644)
package accountant

import "github.com/rezonia/df-accountant/internal/model"

// Re-export core types for public API
type (
	InvoiceRequest   = model.InvoiceRequest
	SchoolInfo       = model.SchoolInfo
	StudentInfo      = model.StudentInfo
	EnrollmentFile   = model.EnrollmentFile
	TeachingCategory = model.TeachingCategory
	Vehicle          = model.Vehicle
	Instructor       = model.Instructor
	PaymentInfo      = model.PaymentInfo
	Invoice          = model.Invoice
	LineItem         = model.LineItem
)

// Re-export error types
type (
	Violation       = model.Violation
	ValidationError = model.ValidationError
	RenderError     = model.RenderError
)
