package api

import (
	"github.com/camco-mfg/gauge/internal/config"
	"github.com/camco-mfg/gauge/pkg/openapi"
)

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(schemas())

	categoryParam := openapi.PathParam(
		"category",
		"Part category keyword: housing, shell, or shaft",
	)

	spec.Paths["/tolerances/{category}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List all tolerance specifications for a category",
			Tags:       []string{"tolerances"},
			Parameters: []*openapi.Parameter{categoryParam},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("All designations in the category", "Tolerances"),
				404: openapi.ResponseRef("NotFound"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/tolerances/{category}/standard"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Get the Camco standard specification for a category",
			Tags:       []string{"tolerances"},
			Parameters: []*openapi.Parameter{categoryParam},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Camco standard designation rows", "Specification"),
				404: openapi.ResponseRef("NotFound"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/tolerances/{category}/{designation}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Get one designation's specification for a category",
			Tags:    []string{"tolerances"},
			Parameters: []*openapi.Parameter{
				categoryParam,
				openapi.PathParam("designation", "Tolerance designation, e.g. H7 or h9"),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Designation rows", "Specification"),
				404: openapi.ResponseRef("NotFound"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/evaluations/{category}"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Evaluate one measurement against the Camco standard",
			Tags:        []string{"evaluations"},
			Parameters:  []*openapi.Parameter{categoryParam},
			RequestBody: openapi.RequestBodyJSON("EvaluateCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Evaluation result", "Evaluation"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
				422: openapi.ResponseRef("Unprocessable"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	spec.Paths["/evaluations/{category}/batch"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Evaluate a measurement batch for spec and IT-grade compliance",
			Tags:        []string{"evaluations"},
			Parameters:  []*openapi.Parameter{categoryParam},
			RequestBody: openapi.RequestBodyJSON("EvaluateBatchCommand", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Batch evaluation result", "BatchEvaluation"),
				400: openapi.ResponseRef("BadRequest"),
				404: openapi.ResponseRef("NotFound"),
				422: openapi.ResponseRef("Unprocessable"),
				503: openapi.ResponseRef("ServiceUnavailable"),
			},
		},
	}

	return spec
}

func schemas() map[string]*openapi.Schema {
	number := func(description string) *openapi.Schema {
		return &openapi.Schema{Type: "number", Format: "double", Description: description}
	}

	return map[string]*openapi.Schema{
		"Row": {
			Type:        "object",
			Description: "One diameter bracket's deviations and IT-grade magnitudes, in millimetres",
			Properties: map[string]*openapi.Schema{
				"minimum_diameter": number("Bracket lower edge"),
				"maximum_diameter": number("Bracket upper edge"),
				"upper_deviation":  number("Signed upper deviation from nominal"),
				"lower_deviation":  number("Signed lower deviation from nominal"),
				"it5":              number("IT5 tolerance magnitude"),
				"it6":              number("IT6 tolerance magnitude"),
			},
		},
		"Tolerances": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"type": {Type: "string", Description: "Category name"},
				"specifications": {
					Type:        "object",
					Description: "Designation to row-set map",
				},
			},
		},
		"Specification": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"type":          {Type: "string", Description: "Category name"},
				"designation":   {Type: "string"},
				"grade":         {Type: "string", Description: "IT grade, set for Camco standard lookups"},
				"specification": {Type: "array", Items: openapi.SchemaRef("Row")},
			},
		},
		"EvaluateCommand": {
			Type:     "object",
			Required: []string{"measurement"},
			Properties: map[string]*openapi.Schema{
				"measurement": number("Measured size in millimetres, [0, 1000)"),
				"threshold":   number("Optional nominal-resolution threshold override, (0, 1)"),
			},
		},
		"EvaluateBatchCommand": {
			Type:     "object",
			Required: []string{"measurements"},
			Properties: map[string]*openapi.Schema{
				"measurements": {Type: "array", Items: number("Measured size in millimetres")},
			},
		},
		"Evaluation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"type":        {Type: "string"},
				"measurement": number(""),
				"nominal":     {Type: "integer"},
				"designation": {Type: "string"},
				"row":         openapi.SchemaRef("Row"),
				"bounds": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"upper": number(""),
						"lower": number(""),
					},
				},
				"display_bounds": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"upper": {Type: "string"},
						"lower": {Type: "string"},
					},
				},
				"meets_spec": {Type: "boolean"},
				"outcome": {
					Type: "string",
					Enum: []any{"acceptable", "over-sized", "under-sized"},
				},
				"reason": {Type: "string"},
			},
		},
		"BatchItem": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"measurement": number(""),
				"evaluation":  openapi.SchemaRef("Evaluation"),
				"error":       {Type: "string"},
			},
		},
		"BatchEvaluation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"type":                   {Type: "string"},
				"measurements":           {Type: "array", Items: number("")},
				"items":                  {Type: "array", Items: openapi.SchemaRef("BatchItem")},
				"designation":            {Type: "string"},
				"grade":                  {Type: "string"},
				"reference_nominal":      {Type: "integer"},
				"farthest_measurement":   number("Measurement farthest from the reference nominal"),
				"spread":                 number("Max minus min measurement"),
				"it_magnitude":           number("IT-grade magnitude for the reference bracket"),
				"meets_spec":             {Type: "boolean"},
				"meets_it_tolerance":     {Type: "boolean"},
				"meets_final_compliance": {Type: "boolean"},
				"narrative":              {Type: "string"},
			},
		},
	}
}
