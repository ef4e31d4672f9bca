// Package invoice derives billable line items, the grand total, and the
// invoice number from a validated request.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/rezonia/df-accountant/internal/model"
	"github.com/rezonia/df-accountant/internal/money"
)

// numberPrefix starts every invoice number.
const numberPrefix = "INV"

// Calculator turns validated requests into display-ready invoices. The
// clock is injected so the invoice number and issue date are deterministic
// under a fixed clock.
type Calculator struct {
	clock clockwork.Clock
}

// NewCalculator creates a calculator. A nil clock means wall time.
func NewCalculator(clock clockwork.Clock) *Calculator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Calculator{clock: clock}
}

// Build computes the ordered line items and grand total for one request.
// A request paying for nothing yields zero items and a zero total, which
// is a valid invoice, not an error.
func (c *Calculator) Build(req *model.InvoiceRequest) *model.Invoice {
	now := c.clock.Now()

	inv := &model.Invoice{
		Number:    Number(now, req.Student),
		IssueDate: now,
		Total:     money.Zero,
		Request:   *req,
	}

	if req.Payment.ScholarshipBasePayment {
		item := model.LineItem{
			Number:      1,
			Description: fmt.Sprintf("Școlarizare pentru categoria %s", req.TeachingCategory.Type),
			Quantity:    1,
			UnitPrice:   req.TeachingCategory.ScholarshipPrice,
			LineTotal:   req.TeachingCategory.ScholarshipPrice,
		}
		inv.Items = append(inv.Items, item)
		inv.Total = inv.Total.Add(item.LineTotal)
	}

	if req.Payment.SessionsPayed > 0 {
		item := model.LineItem{
			Number:      len(inv.Items) + 1,
			Description: fmt.Sprintf("Ședințe de conducere (%d min)", req.TeachingCategory.SessionDuration),
			Quantity:    req.Payment.SessionsPayed,
			UnitPrice:   req.TeachingCategory.SessionCost,
			LineTotal:   money.Mul(req.TeachingCategory.SessionCost, money.FromInt(int64(req.Payment.SessionsPayed))),
		}
		inv.Items = append(inv.Items, item)
		inv.Total = inv.Total.Add(item.LineTotal)
	}

	return inv
}

// Number derives the invoice number from the generation date and the first
// three characters of the student's last and first names, upper-cased.
// Names shorter than three runes use whatever prefix is available.
func Number(at time.Time, student model.StudentInfo) string {
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s%s",
		numberPrefix,
		at.Format("20060102"),
		prefixRunes(student.LastName, 3),
		prefixRunes(student.FirstName, 3),
	))
}

func prefixRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
