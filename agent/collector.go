package agent

import (
	"context"
	"fmt"

	"github.com/finsage/intake"
	"github.com/finsage/intake/docs"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// NewCollector configures the financial data collector: an empathetic
// assistant that gathers the user's profile and the eight essential
// financial fields, validates them with the validate_essential_data tool,
// and assembles the financial state object.
func NewCollector() *Expert {
	lib := []Function{ValidateEssentialData}

	return &Expert{
		Name: "Collector",
		Description: `Collects personal data (name, age, working or retired status, email)
		and the essential financial data, validates it, and initializes the
		financial state object.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the Empathetic Data Collector and financial state object initializer.
				Your only job: collect and validate data, then package everything. Tone: warm,
				empathetic, trust-focused.

				First, in a single clear message, ask for: the client's name, age, whether they
				are currently Working or Retired, and their email.

				Then ask one structured question listing all eight financial fields:
				monthly net income (for Retired clients, their monthly pension or drawdown),
				monthly commitments, EMIs per debt type, investment contributions,
				savings per month, emergency fund amount, and whether they hold
				life insurance and health insurance (Yes/No each).

				When the user replies, immediately call validate_essential_data with the raw
				field values. Do not reformat or compute anything yourself; send the user's
				wording as-is. If the tool returns status "error", explain in friendly plain
				language what needs fixing, ask only for the failing fields, and call the tool
				again. Repeat until it returns status "success".

				On success, output only the financial_state_object JSON: the three personal
				fields at the top level, and the tool's data under "base_financial_data".
				No extra commentary after the JSON.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// fieldParam declares one raw string parameter of the validation tool.
func fieldParam(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc}
}

// ValidateEssentialData exposes the intake pipeline as a tool: it takes
// the eight raw field strings and returns the success or error envelope.
var ValidateEssentialData = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "validate_essential_data",
		Description: `Validates and normalizes all essential financial inputs in a single call.

		Pass the user's raw wording for each field. Accepted numeric formats:

		` + must(docs.Topic("formats")),
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				intake.FieldNetIncome:       fieldParam("Net monthly income (or pension/drawdown for retired clients)."),
				intake.FieldCommitments:     fieldParam("Fixed or recurring monthly obligations (rent, school fees, ...)."),
				intake.FieldEMIs:            fieldParam("EMIs per debt type."),
				intake.FieldInvestments:     fieldParam("Monthly contributions into investments (SIPs, RDs, ...)."),
				intake.FieldSavings:         fieldParam("Amount actually saved per month (liquid savings)."),
				intake.FieldEmergencyFund:   fieldParam("Current total emergency fund corpus."),
				intake.FieldLifeInsurance:   fieldParam("Yes/No: does the user hold life insurance."),
				intake.FieldHealthInsurance: fieldParam("Yes/No: does the user hold health insurance."),
			},
			Required: []string{
				intake.FieldNetIncome,
				intake.FieldCommitments,
				intake.FieldEMIs,
				intake.FieldInvestments,
				intake.FieldSavings,
				intake.FieldEmergencyFund,
				intake.FieldLifeInsurance,
				intake.FieldHealthInsurance,
			},
		},
		Response: &genai.Schema{
			Type: genai.TypeObject,
			Description: `On success: {"status":"success","data":"<compact JSON of the validated record>"}.
			On failure: {"status":"error","error_message":"<JSON mapping each failing field to its problem>"}.
			Re-ask the user only for the fields named in error_message.`,
		},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		raw, err := rawFieldSet(args)
		if err != nil {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "validate_essential_data",
				Response: map[string]any{
					"status":        "error",
					"error_message": err.Error(),
				},
			}
		}

		return &genai.FunctionResponse{
			ID:       id,
			Name:     "validate_essential_data",
			Response: intake.ValidateAll(raw).Payload(),
		}
	},
}

// rawFieldSet extracts the eight raw strings from the tool arguments.
// Missing arguments default to empty strings and fail validation with a
// per-field message, which is more useful to the model than a hard error.
func rawFieldSet(args map[string]any) (intake.RawFieldSet, error) {
	get := func(name string) (string, error) {
		v, ok := args[name]
		if !ok || v == nil {
			return "", nil
		}
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("argument %q is not a string as expected but %T", name, v)
		}
		return s, nil
	}

	var raw intake.RawFieldSet
	var err error
	if raw.MonthlyNetIncome, err = get(intake.FieldNetIncome); err != nil {
		return raw, err
	}
	if raw.MonthlyCommitments, err = get(intake.FieldCommitments); err != nil {
		return raw, err
	}
	if raw.MonthlyEMIs, err = get(intake.FieldEMIs); err != nil {
		return raw, err
	}
	if raw.Investments, err = get(intake.FieldInvestments); err != nil {
		return raw, err
	}
	if raw.SavingsPerMonth, err = get(intake.FieldSavings); err != nil {
		return raw, err
	}
	if raw.EmergencyFund, err = get(intake.FieldEmergencyFund); err != nil {
		return raw, err
	}
	if raw.HasLifeInsurance, err = get(intake.FieldLifeInsurance); err != nil {
		return raw, err
	}
	if raw.HasHealthInsurance, err = get(intake.FieldHealthInsurance); err != nil {
		return raw, err
	}
	return raw, nil
}
