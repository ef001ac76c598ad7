package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/finsage/intake"
	"github.com/finsage/intake/renderer"
	"github.com/google/subcommands"
)

type checkCmd struct {
	raw     intake.RawFieldSet
	jsonOut bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate the eight essential financial fields" }
func (*checkCmd) Usage() string {
	return `fsi check -income <v> -commitments <v> -emis <v> -investments <v> -savings <v> -emergency-fund <v> -life-insurance <v> -health-insurance <v> [-json]

  Runs the full validation pipeline on the given raw field values and
  prints either the normalized record or every failing field. Values may
  use any format described in 'fsi topic formats' and 'fsi topic lists'.

Usage Examples:
# Everything valid, rendered as markdown.
$ fsi check -income "₹1,20,000" -commitments "rent:15000, groceries:8000" \
    -emis '{"home_loan": 25000}' -investments "10000, 5000" \
    -savings 15k -emergency-fund 2.4M -life-insurance yes -health-insurance no

# Raw payload envelope, as a tool or agent would receive it.
$ fsi check -json -income 80k ...

`
}

func (p *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.raw.MonthlyNetIncome, "income", "", "Net monthly income.")
	f.StringVar(&p.raw.MonthlyCommitments, "commitments", "", "Monthly commitments (list).")
	f.StringVar(&p.raw.MonthlyEMIs, "emis", "", "EMIs per debt type (list).")
	f.StringVar(&p.raw.Investments, "investments", "", "Investment contributions (list).")
	f.StringVar(&p.raw.SavingsPerMonth, "savings", "", "Savings per month.")
	f.StringVar(&p.raw.EmergencyFund, "emergency-fund", "", "Emergency fund amount.")
	f.StringVar(&p.raw.HasLifeInsurance, "life-insurance", "", "Life insurance held (Yes/No).")
	f.StringVar(&p.raw.HasHealthInsurance, "health-insurance", "", "Health insurance held (Yes/No).")
	f.BoolVar(&p.jsonOut, "json", false, "Print the raw payload envelope instead of markdown.")
}

func (p *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result := intake.ValidateAll(p.raw)

	if p.jsonOut {
		payload, err := json.Marshal(result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling payload: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(payload))
		if !result.OK() {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if !result.OK() {
		printMarkdown(renderer.FieldErrorsMarkdown(result.FieldErrors()))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RecordMarkdown(result.Record()))
	return subcommands.ExitSuccess
}
