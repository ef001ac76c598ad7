package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsage/intake"
	"github.com/google/subcommands"
)

type amountCmd struct {
	symbols flagList
}

// flagList collects repeated -symbol flags.
type flagList []string

func (l *flagList) String() string { return fmt.Sprint([]string(*l)) }
func (l *flagList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func (*amountCmd) Name() string     { return "amount" }
func (*amountCmd) Synopsis() string { return "parse loosely formatted amounts" }
func (*amountCmd) Usage() string {
	return `fsi amount [-symbol <code>]... <value>...

  Parses each value with the tolerant amount parser and prints the
  normalized number, one per line. Useful to check how an input will be
  read before sending it through the full pipeline.

Usage Examples:
$ fsi amount "₹1,20,000" 5k 1.2M
120000
5000
1200000

# restrict the currency-symbol allow-list to yen
$ fsi amount -symbol JPY "¥9,800"
9800

`
}

func (p *amountCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&p.symbols, "symbol", "ISO currency code to allow (repeatable). Defaults to INR, USD, EUR, GBP.")
}

func (p *amountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no values to parse.")
		return subcommands.ExitUsageError
	}

	symbols := intake.DefaultSymbols
	if len(p.symbols) > 0 {
		symbols = intake.NewSymbols(p.symbols...)
	}

	status := subcommands.ExitSuccess
	for _, arg := range f.Args() {
		v, err := symbols.ParseAmount(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = subcommands.ExitFailure
			continue
		}
		// Trailing zeros carry no information here.
		fmt.Println(formatAmount(v))
	}
	return status
}

// formatAmount prints an amount without a spurious fractional part.
func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
