package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/flightplan"
	"github.com/etnz/flightplan/docs"
	"github.com/etnz/flightplan/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
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

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here to understand how his life decisions (marriage, buying a home or a car,
			children, going back to school) change his long-term financial trajectory.
			If he sounds worried about a decision, name the month where his plan is the most fragile
			and what drives it, before giving any advice.

			Devise a plan of questions to ask to each experts and come up with the best response to the user's request.

			The user will assume that you know his scenarios, check them first to understand his plans.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert grounding answers with Google Search:
// salary levels, mortgage rates, cost of living, tuition.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert researcher,
		very well aware of salary levels by occupation and location,
		of current mortgage and loan rates, tuition and cost of living.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in careers and personal finance research. You can search and find
			about anything related to salaries, occupations, interest rates, housing markets and
			education costs. You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest figures too, and you know how to relate them to the user's plans.
				`}}},
		},
	}
}

// NewPlanner returns the expert in charge of the user's scenarios: he can
// list them, read them, and project them over any horizon.
func NewPlanner(plansDir string) *Expert {
	lib := []Function{scenariosFunc(plansDir), projectionFunc(plansDir)}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner. He is in charge of reading the user's scenario files and
		projecting them month by month. He can compute net worth trajectories, the lowest point of
		a plan, taxes paid and savings rates, for any scenario and horizon.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial planner in charge of the user's scenarios.
				You know how to use the Tools to read the user's plans and project their outcomes.
				You are part of a team of experts, yours is everything about the user's scenarios.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the user's plans:
				  - the list of scenarios and their milestones
				  - month-by-month projections over a horizon

				When you assess a plan, always report the final net worth, the lowest point
				and what milestone causes it.
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

// failure builds the error response of a function call.
func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func scenariosFunc(plansDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Scenarios",
			Description: `Scenarios lists all the user's scenarios with their profile and milestones.

			Each scenario is a plan: a financial profile and the dated life events on top of it.

			` + must(docs.GetTopic("scenarios")),
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted description of every scenario: its profile and its milestones.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			scenarios, err := flightplan.FindScenarios(plansDir, "")
			if err != nil {
				return failure(id, "Scenarios", fmt.Errorf("could not load scenarios: %w", err))
			}
			var b strings.Builder
			for _, s := range scenarios {
				b.WriteString(renderer.ScenarioMarkdown(s))
				b.WriteString("\n")
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Scenarios",
				Response: map[string]any{
					"output": b.String(),
				},
			}
		},
	}
}

func projectionFunc(plansDir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Projection",
			Description: `Projection computes the month-by-month trajectory of one scenario:
			income, taxes, expenses, cash flow, savings and net worth.

			` + must(docs.GetTopic("projections")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"scenario": {
						Type:        genai.TypeString,
						Description: "The scenario name. The default scenario is used when omitted.",
					},
					"years": {
						Type:        genai.TypeInteger,
						Description: "The projection horizon in years. 10 is the default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary and projection table for the scenario.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name, _ := args["scenario"].(string)
			years := 10
			if y, ok := args["years"].(float64); ok && y > 0 {
				years = int(y)
			}

			s, err := flightplan.FindScenario(plansDir, name)
			if err != nil {
				return failure(id, "Projection", fmt.Errorf("could not load scenario: %w", err))
			}
			r, err := s.Project(12 * years)
			if err != nil {
				return failure(id, "Projection", fmt.Errorf("could not project scenario: %w", err))
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Projection",
				Response: map[string]any{
					"output": renderer.SummaryMarkdown(r) + "\n" + renderer.ProjectionMarkdown(r),
				},
			}
		},
	}
}
