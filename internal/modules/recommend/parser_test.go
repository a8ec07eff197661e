package recommend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendation(t *testing.T) {
	raw := `{"recommendations":[{"title":"Inception","reason":"matches sci-fi"}],"explanation":"top pick"}`
	res, err := ParseRecommendation(raw)
	require.NoError(t, err)
	assert.Equal(t, &Result{
		Recommendations: []Recommendation{{Title: "Inception", Reason: "matches sci-fi"}},
		Explanation:     "top pick",
	}, res)
}

func TestParseRecommendationEmptyList(t *testing.T) {
	res, err := ParseRecommendation(" {\"recommendations\": [], \"explanation\": \"nothing fits\"}\n")
	require.NoError(t, err)
	assert.NotNil(t, res.Recommendations)
	assert.Empty(t, res.Recommendations)
}

func TestParseRecommendationMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"prose", "Sure! Here are some movies you might like."},
		{"fenced", "```json\n{\"recommendations\":[],\"explanation\":\"x\"}\n```"},
		{"trailing text", `{"recommendations":[],"explanation":"x"} hope this helps`},
		{"truncated", `{"recommendations":[{"title":"Heat"`},
		{"array root", `[{"title":"Heat","reason":"r"}]`},
		{"missing explanation", `{"recommendations":[]}`},
		{"missing recommendations", `{"explanation":"x"}`},
		{"recommendations not array", `{"recommendations":"Heat","explanation":"x"}`},
		{"item without reason", `{"recommendations":[{"title":"Heat"}],"explanation":"x"}`},
		{"title not string", `{"recommendations":[{"title":7,"reason":"r"}],"explanation":"x"}`},
		{"null explanation", `{"recommendations":[],"explanation":null}`},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ParseRecommendation(tt.raw)
			assert.Nil(t, res)
			require.ErrorIs(t, err, ErrMalformedOutput)

			var malformed *MalformedOutputError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.raw, malformed.Raw)
			assert.NotEmpty(t, malformed.Reason)
		})
	}
}
