package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionValidate(t *testing.T) {
	cases := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"short text ok", Question{Type: QuestionShortText, Label: "Fonction"}, false},
		{"long text ok", Question{Type: QuestionLongText, Label: "Contexte", Required: true}, false},
		{"checkbox ok", Question{Type: QuestionCheckbox, Label: "Décideur ?"}, false},
		{"select ok", Question{Type: QuestionSelect, Label: "Effectif", Options: []string{"1-10", "11-50"}}, false},
		{"radio ok", Question{Type: QuestionRadio, Label: "Budget", Options: []string{"< 10k", "> 10k"}}, false},
		{"empty label", Question{Type: QuestionShortText, Label: "   "}, true},
		{"select without options", Question{Type: QuestionSelect, Label: "Effectif"}, true},
		{"radio with blank option", Question{Type: QuestionRadio, Label: "Budget", Options: []string{"< 10k", " "}}, true},
		{"options on text question", Question{Type: QuestionShortText, Label: "Fonction", Options: []string{"a"}}, true},
		{"unknown type", Question{Type: "dropdown", Label: "Effectif", Options: []string{"a"}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.q.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuestionListScanValue(t *testing.T) {
	list := QuestionList{
		{Type: QuestionSelect, Label: "Effectif", Required: true, Options: []string{"1-10", "11-50"}},
		{Type: QuestionShortText, Label: "Fonction"},
	}

	val, err := list.Value()
	require.NoError(t, err)

	var decoded QuestionList
	require.NoError(t, decoded.Scan(val))
	assert.Equal(t, list, decoded)

	// A null column scans to an empty list, not nil semantics.
	var empty QuestionList
	require.NoError(t, empty.Scan(nil))
	assert.Equal(t, QuestionList{}, empty)
}

func TestQuestionListJSONShape(t *testing.T) {
	list := QuestionList{{Type: QuestionRadio, Label: "Budget", Options: []string{"< 10k"}}}
	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"radio","label":"Budget","required":false,"options":["< 10k"]}]`, string(raw))
}
