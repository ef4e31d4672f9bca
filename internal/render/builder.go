package render

import (
	"strconv"

	"github.com/rezonia/df-accountant/internal/assets"
	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/money"
)

// issueDateLayout is how the issue date appears on the printed invoice.
const issueDateLayout = "02.01.2006"

// BuildDocument binds one invoice and the branding assets into the
// generic document tree. All money formatting happens here; the formatter
// never touches decimals.
func BuildDocument(inv *model.Invoice, branding assets.Branding) Document {
	req := inv.Request

	doc := Document{
		Lang:      "ro",
		Title:     "Factură " + inv.Number,
		Logo:      branding.Logo,
		Watermark: branding.Watermark,
		Heading: Heading{
			Title: "Factură",
			Subtitle: []Field{
				{Label: "Număr", Value: inv.Number},
				{Label: "Data emiterii", Value: inv.IssueDate.Format(issueDateLayout)},
			},
		},
	}

	doc.Sections = append(doc.Sections, Section{
		Title: "Școala de șoferi",
		Fields: []Field{
			{Label: "Nume", Value: req.AutoSchool.Name},
			{Label: "Website", Value: req.AutoSchool.Website},
			{Label: "Telefon", Value: req.AutoSchool.Phone},
			{Label: "Email", Value: req.AutoSchool.Email},
		},
	})

	student := Section{
		Title: "Student",
		Fields: []Field{
			{Label: "Nume", Value: req.Student.FirstName + " " + req.Student.LastName},
			{Label: "Email", Value: req.Student.Email},
			{Label: "Telefon", Value: req.Student.Phone},
		},
	}
	if req.Student.CNP != "" {
		student.Fields = append(student.Fields, Field{Label: "CNP", Value: req.Student.CNP})
	}
	doc.Sections = append(doc.Sections, student)

	doc.Sections = append(doc.Sections,
		Section{
			Title: "Dosar",
			Fields: []Field{
				{Label: "Început școlarizare", Value: req.File.ScholarshipStartDate},
				{Label: "Expirare cazier", Value: req.File.CriminalRecordExpiryDate},
				{Label: "Expirare fișă medicală", Value: req.File.MedicalRecordExpiryDate},
				{Label: "Status", Value: req.File.Status},
			},
		},
		Section{
			Title: "Categoria",
			Fields: []Field{
				{Label: "Tip", Value: req.TeachingCategory.Type},
				{Label: "Cost ședință", Value: money.Format(req.TeachingCategory.SessionCost)},
				{Label: "Durată ședință", Value: strconv.Itoa(req.TeachingCategory.SessionDuration) + " min"},
				{Label: "Preț școlarizare", Value: money.Format(req.TeachingCategory.ScholarshipPrice)},
				{Label: "Ședințe minime", Value: strconv.Itoa(req.TeachingCategory.MinDrivingLessonsReq)},
			},
		},
		Section{
			Title: "Vehicul",
			Fields: []Field{
				{Label: "Număr înmatriculare", Value: req.Vehicle.LicensePlateNumber},
				{Label: "Transmisie", Value: req.Vehicle.TransmissionType},
				{Label: "Culoare", Value: req.Vehicle.Color},
				{Label: "Categorie permis", Value: req.Vehicle.LicenseType},
			},
		},
		Section{
			Title: "Instructor",
			Fields: []Field{
				{Label: "Nume", Value: req.Instructor.FullName},
			},
		},
		Section{
			Title: "Servicii facturate",
			Table: itemsTable(inv),
		},
	)

	return doc
}

func itemsTable(inv *model.Invoice) *Table {
	t := &Table{
		Columns: []string{"Nr.", "Descriere", "Cantitate", "Preț unitar", "Total"},
		Footer:  []string{"", "", "", "Total de plată", money.Format(inv.Total)},
	}
	for _, item := range inv.Items {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(item.Number),
			item.Description,
			strconv.Itoa(item.Quantity),
			money.Format(item.UnitPrice),
			money.Format(item.LineTotal),
		})
	}
	return t
}
