package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/coinledger"
	"github.com/etnz/coinledger/docs"
	"github.com/etnz/coinledger/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// NewCurator returns the expert in charge of the coin collection. Its
// functions read and stage coins through the live keeper.
func NewCurator(k *coinledger.Keeper) *Expert {
	lib := []Function{summaryFunc(k), lookupFunc(k), stageFunc(k), pickFunc(k)}
	return &Expert{
		Name:      "Curator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the curator of a physical euro coin collection.
				Use the available tools to answer questions about the collection:
				completion summaries, individual coin lookups, staging a coin that
				a collector found. Coin countries are lowercase english names.
				Prefer tables when listing several coins.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func is a Function implemented by a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func respond(id, name string, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": output}}
}

func fail(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

func summaryFunc(k *coinledger.Keeper) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Summary",
			Description: "Summary reports the completion of the collection, overall and by country, year and value.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type: genai.TypeString,
						Description: `The date on which to compute the summary. Now is the default.

						` + must(docs.GetTopic("dates")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report of the collection completion.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			date, err := parseDate(args)
			if err != nil {
				return fail(id, "Summary", err)
			}
			s := coinledger.NewSummary(k.Current(), date)
			return respond(id, "Summary", renderer.SummaryMarkdown(s))
		},
	}
}

func lookupFunc(k *coinledger.Keeper) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Lookup",
			Description: "Lookup finds coins by country, year, value or name and reports their status and mint counts.",
			Parameters:  filterSchema(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the matching coins.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			filters, err := parseFilters(args)
			if err != nil {
				return fail(id, "Lookup", err)
			}
			var coins []coinledger.Coin
			for c := range k.Current().Coins(filters...) {
				coins = append(coins, c)
			}
			return respond(id, "Lookup", renderer.LookupMarkdown(coins))
		},
	}
}

func stageFunc(k *coinledger.Keeper) *Func {
	schema := filterSchema()
	schema.Properties["collector"] = &genai.Schema{
		Type:        genai.TypeString,
		Description: "The name of the collector who found the coin.",
	}
	schema.Required = []string{"collector"}
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Stage",
			Description: "Stage marks exactly one coin as found by a collector, pending its physical collection. The filters must match a single coin.",
			Parameters:  schema,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A confirmation naming the staged coin.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			collector, _ := args["collector"].(string)
			if collector == "" {
				return fail(id, "Stage", fmt.Errorf("argument 'collector' is required"))
			}
			filters, err := parseFilters(args)
			if err != nil {
				return fail(id, "Stage", err)
			}
			staged, err := k.Stage(collector, filters...)
			if err != nil {
				return fail(id, "Stage", err)
			}
			return respond(id, "Stage", fmt.Sprintf("%s is now staged by %s", staged.Label(), collector))
		},
	}
}

// pickFunc lets the model extract raw values from the matching coin records
// with a JSONPath expression, for questions the fixed reports cannot answer.
func pickFunc(k *coinledger.Keeper) *Func {
	schema := filterSchema()
	schema.Properties["path"] = &genai.Schema{
		Type:        genai.TypeString,
		Description: `A JSONPath expression evaluated on the array of matching coin records, like $[0].Amount or $[?(@.Status == 3)].Country.`,
	}
	schema.Required = []string{"path"}
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Pick",
			Description: "Pick evaluates a JSONPath expression over the matching coin records and returns the raw result.",
			Parameters:  schema,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The JSON encoding of the extracted value.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			path, _ := args["path"].(string)
			if path == "" {
				return fail(id, "Pick", fmt.Errorf("argument 'path' is required"))
			}
			filters, err := parseFilters(args)
			if err != nil {
				return fail(id, "Pick", err)
			}
			var coins []coinledger.Coin
			for c := range k.Current().Coins(filters...) {
				coins = append(coins, c)
			}
			raw, err := json.Marshal(coins)
			if err != nil {
				return fail(id, "Pick", err)
			}
			var doc any
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fail(id, "Pick", err)
			}
			picked, err := jsonpath.Get(path, doc)
			if err != nil {
				return fail(id, "Pick", fmt.Errorf("could not evaluate %q: %w", path, err))
			}
			out, err := json.Marshal(picked)
			if err != nil {
				return fail(id, "Pick", err)
			}
			return respond(id, "Pick", string(out))
		},
	}
}

func filterSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"country": {
				Type:        genai.TypeString,
				Description: "The lowercase english country name, like 'germany' or 'france'.",
			},
			"year": {
				Type:        genai.TypeNumber,
				Description: "The minting year.",
			},
			"value": {
				Type:        genai.TypeString,
				Description: "The denomination, like '50 cent' or '2 euro'.",
			},
			"name": {
				Type:        genai.TypeString,
				Description: "Part of a commemorative coin's name.",
			},
		},
	}
}

func parseFilters(args map[string]any) ([]func(coinledger.Coin) bool, error) {
	var filters []func(coinledger.Coin) bool
	if v, ok := args["country"]; ok {
		country, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("argument 'country' is not a string but %T", v)
		}
		filters = append(filters, coinledger.ByCountry(country))
	}
	if v, ok := args["year"]; ok {
		year, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("argument 'year' is not a number but %T", v)
		}
		filters = append(filters, coinledger.ByYear(int(year)))
	}
	if v, ok := args["value"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("argument 'value' is not a string but %T", v)
		}
		value, err := coinledger.ParseDenomination(s)
		if err != nil {
			return nil, err
		}
		filters = append(filters, coinledger.ByValue(value))
	}
	if v, ok := args["name"]; ok {
		name, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("argument 'name' is not a string but %T", v)
		}
		filters = append(filters, coinledger.ByName(name))
	}
	return filters, nil
}

func parseDate(args map[string]any) (coinledger.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return coinledger.Date{}, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return coinledger.Date{}, fmt.Errorf("argument 'date' is not a string but %T", idate)
	}
	date, err := coinledger.ParseDate(sdate)
	if err != nil {
		return coinledger.Date{}, fmt.Errorf("argument 'date' must be a valid date, got %q:\n\n%s", sdate, must(docs.GetTopic("dates")))
	}
	return date, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
