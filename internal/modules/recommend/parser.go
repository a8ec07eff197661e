package recommend

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const resultSchemaJSON = `{
  "type": "object",
  "required": ["recommendations", "explanation"],
  "properties": {
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "reason"],
        "properties": {
          "title": {"type": "string"},
          "reason": {"type": "string"}
        }
      }
    },
    "explanation": {"type": "string"}
  }
}`

var resultSchema = mustSchema(resultSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic("recommend: invalid result schema: " + err.Error())
	}
	return s
}

// ParseRecommendation parses the whole model output as JSON and checks it
// against the result shape. No fence stripping or partial recovery is done;
// any failure returns a *MalformedOutputError holding raw unchanged.
func ParseRecommendation(raw string) (*Result, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Reason: err.Error()}
	}

	res, err := resultSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, &MalformedOutputError{Raw: raw, Reason: err.Error()}
	}
	if !res.Valid() {
		errs := make([]string, len(res.Errors()))
		for i, desc := range res.Errors() {
			errs[i] = desc.String()
		}
		return nil, &MalformedOutputError{Raw: raw, Reason: strings.Join(errs, "; ")}
	}

	var out Result
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &MalformedOutputError{Raw: raw, Reason: err.Error()}
	}
	if out.Recommendations == nil {
		out.Recommendations = []Recommendation{}
	}
	return &out, nil
}
