package intake

import (
	"fmt"
	"sort"
	"strings"
)

// Stable field identifiers, used as keys in FieldErrors and in payloads.
// They never change even if display wording does.
const (
	FieldNetIncome       = "monthly_net_income"
	FieldCommitments     = "monthly_commitments"
	FieldEMIs            = "monthly_emi_per_debt_type"
	FieldInvestments     = "investment_contributions"
	FieldSavings         = "savings_per_month"
	FieldEmergencyFund   = "emergency_fund_amount"
	FieldLifeInsurance   = "has_life_insurance"
	FieldHealthInsurance = "has_health_insurance"
)

// RawFieldSet holds the eight raw strings as collected from the user, one
// per essential financial field.
type RawFieldSet struct {
	MonthlyNetIncome   string
	MonthlyCommitments string
	MonthlyEMIs        string
	Investments        string
	SavingsPerMonth    string
	EmergencyFund      string
	HasLifeInsurance   string
	HasHealthInsurance string
}

// FieldErrors maps a failing field identifier to a human-readable message.
// A field appears here or in the Record, never both.
type FieldErrors map[string]string

// Error implements the error interface, listing the failing fields.
func (e FieldErrors) Error() string {
	return fmt.Sprintf("validation failed for %d field(s): %s",
		len(e), strings.Join(e.Fields(), ", "))
}

// Fields returns the failing field identifiers in sorted order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Record is the normalized output of a successful validation. Totals are
// not stored: they are recomputed from the item lists on demand.
type Record struct {
	MonthlyNetIncome   float64
	Commitments        ItemList
	EMIs               ItemList
	Investments        ItemList
	SavingsPerMonth    float64
	EmergencyFund      float64
	HasLifeInsurance   bool
	HasHealthInsurance bool
}

// MarshalJSON writes the record with a fixed field order, each list field
// immediately followed by its recomputed total.
func (r *Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("monthly_net_income", r.MonthlyNetIncome)
	w.Append("commitments", r.Commitments)
	w.Append("total_commitments", r.Commitments.Total())
	w.Append("emis", r.EMIs)
	w.Append("total_emi", r.EMIs.Total())
	w.Append("investments", r.Investments)
	w.Append("total_investment_contributions", r.Investments.Total())
	w.Append("savings_per_month", r.SavingsPerMonth)
	w.Append("emergency_fund_amount", r.EmergencyFund)
	w.Append("has_life_insurance", r.HasLifeInsurance)
	w.Append("has_health_insurance", r.HasHealthInsurance)
	return w.MarshalJSON()
}

// Validate parses and validates all eight essential fields in one pass.
// Every field is evaluated unconditionally so the caller learns about all
// failing fields at once. Exactly one of the results is non-nil.
func Validate(raw RawFieldSet) (*Record, FieldErrors) {
	errs := FieldErrors{}
	rec := &Record{}
	nonNegative := ListOptions{NonNegative: true}

	if v, err := ParseAmount(raw.MonthlyNetIncome); err != nil {
		errs[FieldNetIncome] = err.Error()
	} else if v <= 0 {
		errs[FieldNetIncome] = "monthly net income must be greater than 0"
	} else {
		rec.MonthlyNetIncome = v
	}

	if items, err := ParseItems(raw.MonthlyCommitments, nonNegative); err != nil {
		errs[FieldCommitments] = err.Error()
	} else {
		rec.Commitments = items
	}

	if items, err := ParseItems(raw.MonthlyEMIs, nonNegative); err != nil {
		errs[FieldEMIs] = err.Error()
	} else {
		rec.EMIs = items
	}

	if items, err := ParseItems(raw.Investments, nonNegative); err != nil {
		errs[FieldInvestments] = err.Error()
	} else {
		rec.Investments = items
	}

	if v, err := ParseAmount(raw.SavingsPerMonth); err != nil {
		errs[FieldSavings] = err.Error()
	} else if v < 0 {
		errs[FieldSavings] = "savings per month cannot be negative"
	} else {
		rec.SavingsPerMonth = v
	}

	if v, err := ParseAmount(raw.EmergencyFund); err != nil {
		errs[FieldEmergencyFund] = err.Error()
	} else if v < 0 {
		errs[FieldEmergencyFund] = "emergency fund total cannot be negative"
	} else {
		rec.EmergencyFund = v
	}

	if v, err := ParseYesNo(raw.HasLifeInsurance, FieldLifeInsurance); err != nil {
		errs[FieldLifeInsurance] = err.Error()
	} else {
		rec.HasLifeInsurance = v
	}

	if v, err := ParseYesNo(raw.HasHealthInsurance, FieldHealthInsurance); err != nil {
		errs[FieldHealthInsurance] = err.Error()
	} else {
		rec.HasHealthInsurance = v
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return rec, nil
}
