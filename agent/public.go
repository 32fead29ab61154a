package agent

import (
	"context"
	"fmt"

	"github.com/etnz/compound"
	"github.com/etnz/compound/docs"
	"github.com/etnz/compound/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand long term growth: how stock markets and inflation
			compound over decades, and what that would mean for an amount invested today.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Always distinguish nominal growth from inflation.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounding answers in web search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of financial markets, index providers and macroeconomic news.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets, you can search and find about anything
			related to stock indices, ETFs, inflation and central bank data.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert operating the datasets. Every growth
// figure in a conversation should come from it.
func NewAnalyst(service *compound.Service) *Expert {

	lib := []Function{newDatasetFunc(service), newOverviewFunc(service), newTablesFunc()}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of the historical growth datasets:
		S&P 500, US total market, global market and US inflation.
		He can compound any of them over a horizon and project an initial amount through it.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of historical growth datasets.
				You know how to use the Tools to fetch any dataset as a compounded growth series,
				and to project an initial investment through it.
				You are part of a team of experts, yours is everything about the numbers.
				Never invent a growth figure, always fetch the dataset.

				Use the available tools to get
				  - one dataset over a horizon in years
				  - the overview of all four datasets side by side
				  - the static fallback tables served when a provider is down
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// datasets maps the tool-facing dataset names to the service calls.
var datasets = map[string]struct {
	title string
	fetch func(s *compound.Service, years int) compound.GrowthSeries
}{
	"sp500":           {"S&P 500", func(s *compound.Service, years int) compound.GrowthSeries { return s.SP500(years) }},
	"us_total_market": {"US Total Market", func(s *compound.Service, years int) compound.GrowthSeries { return s.USTotalMarket(years) }},
	"global_market":   {"Global Market", func(s *compound.Service, years int) compound.GrowthSeries { return s.GlobalMarket(years) }},
	"inflation":       {"US Inflation", func(s *compound.Service, years int) compound.GrowthSeries { return s.Inflation(years) }},
}

func newDatasetFunc(service *compound.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dataset",
			Description: `Dataset returns one historical dataset as a markdown table of
			compounded growth factors, one row per year, starting at 1.0.

			` + must(docs.GetTopic("methodology")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"dataset": {
						Type:        genai.TypeString,
						Enum:        []string{"sp500", "us_total_market", "global_market", "inflation"},
						Description: "The dataset to fetch.",
					},
					"years": {
						Type:        genai.TypeInteger,
						Description: "The lookback horizon in years. 20 is the default.",
					},
					"initial_amount": {
						Type:        genai.TypeNumber,
						Description: "An optional initial amount in USD to project through the series.",
					},
				},
				Required: []string{"dataset"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the growth factors per year, with the projected value when an initial amount was given.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, ok := args["dataset"].(string)
			if !ok {
				return errResponse(id, "Dataset", fmt.Errorf("argument 'dataset' is not a string as expected but %T", args["dataset"]))
			}
			ds, ok := datasets[name]
			if !ok {
				return errResponse(id, "Dataset", fmt.Errorf("unknown dataset %q", name))
			}

			years, err := parseYears(args)
			if err != nil {
				return errResponse(id, "Dataset", err)
			}
			initial, err := parseInitialAmount(args)
			if err != nil {
				return errResponse(id, "Dataset", err)
			}

			series := ds.fetch(service, years)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Dataset",
				Response: map[string]any{
					"output": renderer.GrowthMarkdown(ds.title, series, initial),
				},
			}
		},
	}
}

func newOverviewFunc(service *compound.Service) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Overview",
			Description: `Overview returns all four datasets side by side in a single markdown table,
			one column per dataset, on the union of their years.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"years": {
						Type:        genai.TypeInteger,
						Description: "The lookback horizon in years. 20 is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table with one column per dataset.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			years, err := parseYears(args)
			if err != nil {
				return errResponse(id, "Overview", err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Overview",
				Response: map[string]any{
					"output": renderer.DatasetsMarkdown(service.Datasets(years)),
				},
			}
		},
	}
}

func newTablesFunc() *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "FallbackTables",
			Description: `FallbackTables returns the static rate tables compiled into the program,
			the ones served when a live provider is unreachable: well-known S&P 500 annual
			returns shared by every equity dataset, and US CPI inflation rates.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"years": {
						Type:        genai.TypeInteger,
						Description: "The lookback horizon in years. 20 is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Two markdown-formatted tables of annual percentage rates.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			years, err := parseYears(args)
			if err != nil {
				return errResponse(id, "FallbackTables", err)
			}
			stocks, _ := compound.SampleStockReturns.AnnualRates(years)
			inflation, _ := compound.SampleInflationRates.AnnualRates(years)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "FallbackTables",
				Response: map[string]any{
					"output": renderer.RatesMarkdown("Equity Fallback Rates", stocks) + "\n" +
						renderer.RatesMarkdown("Inflation Fallback Rates", inflation),
				},
			}
		},
	}
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

func parseYears(args map[string]any) (int, error) {
	iyears, hasYears := args["years"]
	if !hasYears {
		return compound.DefaultYears, nil
	}
	years, ok := iyears.(float64)
	if !ok {
		return compound.DefaultYears, fmt.Errorf("argument 'years' is not a number as expected but %T", iyears)
	}
	return int(years), nil
}

func parseInitialAmount(args map[string]any) (compound.Money, error) {
	iamount, hasAmount := args["initial_amount"]
	if !hasAmount {
		return compound.Money{}, nil
	}
	amount, ok := iamount.(float64)
	if !ok {
		return compound.Money{}, fmt.Errorf("argument 'initial_amount' is not a number as expected but %T", iamount)
	}
	return compound.M(amount, "USD"), nil
}
