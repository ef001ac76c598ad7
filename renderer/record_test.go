package renderer

import (
	"strings"
	"testing"

	"github.com/finsage/intake"
)

func sampleRecord() *intake.Record {
	return &intake.Record{
		MonthlyNetIncome: 120000,
		Commitments: intake.ItemList{
			{Type: "rent", Amount: 15000},
			{Type: "groceries", Amount: 8000},
		},
		EMIs: intake.ItemList{
			{Type: "home_loan", Amount: 25000},
		},
		Investments:        intake.ItemList{},
		SavingsPerMonth:    15000,
		EmergencyFund:      240000,
		HasLifeInsurance:   true,
		HasHealthInsurance: false,
	}
}

func TestRecordMarkdown(t *testing.T) {
	md := RecordMarkdown(sampleRecord())

	wants := []string{
		"# Financial intake summary",
		"| Net monthly income | 120000.00 |",
		"| Savings per month | 15000.00 |",
		"| Emergency fund | 240000.00 |",
		"## Commitments",
		"| rent | 15000.00 |",
		"| groceries | 8000.00 |",
		"| Total | 23000.00 |",
		"## EMIs",
		"| home_loan | 25000.00 |",
		"| Total | 25000.00 |",
		"## Investment contributions",
		"None declared.",
		"| Life insurance | Yes |",
		"| Health insurance | No |",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	// Rows come out in list order.
	if strings.Index(md, "| rent |") > strings.Index(md, "| groceries |") {
		t.Error("commitment rows out of order")
	}
}

func TestFieldErrorsMarkdown(t *testing.T) {
	errs := intake.FieldErrors{
		intake.FieldSavings:   "savings per month cannot be negative",
		intake.FieldNetIncome: "no value provided",
	}
	md := FieldErrorsMarkdown(errs)

	wants := []string{
		"| Field | Problem |",
		"| monthly_net_income | no value provided |",
		"| savings_per_month | savings per month cannot be negative |",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	// Rows are sorted by field identifier for stable output.
	if strings.Index(md, "monthly_net_income") > strings.Index(md, "savings_per_month") {
		t.Error("field error rows out of order")
	}
}
