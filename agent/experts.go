package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/etnz/giltladder"
	"github.com/etnz/giltladder/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is a UK investor planning a gilt ladder across SIPP and ISA accounts.
			Learn about the expert skills you can reach through the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions for the experts and come up with the best response.
			Never invent gilt prices or tax figures yourself: the Strategist knows the market,
			the Planner runs the actual ladder calculations.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStrategist returns the market expert, grounded with search.
func NewStrategist() *Expert {
	return &Expert{
		Name: "Strategist",
		Description: `An expert on the UK gilt market:
		current gilt prices and yields, DMO issuance, Bank of England rates,
		and recent fixed income news. Ask the Strategist whenever you need
		recent or grounding market information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in UK fixed income. You can search and find anything
			related to gilts, the Debt Management Office, the Bank of England and
			bond markets in general. Leverage Google Search to ground your
			assertions; always prefer a sourced current yield over a guessed one.
				`}}},
		},
	}
}

// NewPlanner returns the expert that runs ladder and tax calculations.
func NewPlanner() *Expert {
	lib := []Function{computeLadderFunc, assessTaxFunc}

	return &Expert{
		Name: "Planner",
		Description: `The Planner runs the gilt ladder calculator. He can
		allocate a SIPP/ISA portfolio into a ladder, project its income and
		estimate UK income tax on a gross income.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You run ladder calculations for the user's portfolio. Use the
				available tools for every figure: never compute allocations or
				tax by hand. Report the tool's markdown output faithfully.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

// number reads a float argument, falling back to def when absent.
func number(args map[string]any, key string, def float64) (float64, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("argument %q is not a number but %T", key, v)
	}
	return f, nil
}

var computeLadderFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "ComputeLadder",
		Description: `ComputeLadder allocates a SIPP/ISA portfolio into a gilt
		ladder of equal rungs and projects its annual income, surplus or
		shortfall against the target, and estimated tax drag. Amounts are GBP.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"sipp_value":           {Type: genai.TypeNumber, Description: "Current SIPP value in GBP."},
				"isa_value":            {Type: genai.TypeNumber, Description: "Current ISA value in GBP."},
				"target_income":        {Type: genai.TypeNumber, Description: "Desired annual income in GBP."},
				"ladder_years":         {Type: genai.TypeNumber, Description: "Number of rungs, at least 1."},
				"yield":                {Type: genai.TypeNumber, Description: "Assumed flat gross yield in percent, e.g. 4.5."},
				"other_pension_income": {Type: genai.TypeNumber, Description: "Other annual pension income in GBP. Optional, default 0."},
				"isa_premium":          {Type: genai.TypeNumber, Description: "Extra yield on ISA rungs in percent. Optional, default 0."},
				"cash_buffer":          {Type: genai.TypeNumber, Description: "Share of each account kept in cash, in percent. Optional, default 0."},
			},
			Required: []string{"sipp_value", "isa_value", "target_income", "ladder_years", "yield"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown report of the ladder and its income summary.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		read := func(key string, def float64) float64 {
			v, _ := number(args, key, def)
			return v
		}
		for _, key := range []string{"sipp_value", "isa_value", "target_income", "ladder_years", "yield"} {
			if _, err := number(args, key, 0); err != nil {
				return errResponse(id, "ComputeLadder", err)
			}
		}

		input := giltladder.PortfolioInput{
			SIPPValue:          giltladder.GBP(read("sipp_value", 0)),
			ISAValue:           giltladder.GBP(read("isa_value", 0)),
			TargetAnnualIncome: giltladder.GBP(read("target_income", 0)),
			OtherPensionIncome: giltladder.GBP(read("other_pension_income", 0)),
			LadderYears:        int(read("ladder_years", 0)),
			StartYear:          time.Now().Year(),
		}
		spec := giltladder.LadderSpec{
			Curve:           giltladder.Flat(giltladder.Percent(read("yield", 0))),
			Tax:             giltladder.UKTax2024(),
			ISAYieldPremium: giltladder.Percent(read("isa_premium", 0)),
			CashBuffer:      giltladder.Percent(read("cash_buffer", 0)),
		}

		result, err := giltladder.ComputeLadder(input, spec)
		if err != nil {
			return errResponse(id, "ComputeLadder", err)
		}

		report := renderer.LadderMarkdown(result) + "\n" +
			renderer.SummaryMarkdown(giltladder.NewIncomeSummary(result, input))
		return &genai.FunctionResponse{
			ID:   id,
			Name: "ComputeLadder",
			Response: map[string]any{
				"output": report,
			},
		}
	},
}

var assessTaxFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "AssessTax",
		Description: `AssessTax computes UK income tax (2024/25 schedule) on a
		gross annual income in GBP: liability, net income and effective rate.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"income": {Type: genai.TypeNumber, Description: "Gross annual income in GBP."},
			},
			Required: []string{"income"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "A markdown table of the tax assessment.",
		},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		income, err := number(args, "income", 0)
		if err != nil {
			return errResponse(id, "AssessTax", err)
		}
		a := giltladder.UKTax2024().Assess(giltladder.GBP(income))
		return &genai.FunctionResponse{
			ID:   id,
			Name: "AssessTax",
			Response: map[string]any{
				"output": renderer.TaxMarkdown(a),
			},
		}
	},
}
