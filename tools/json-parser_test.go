package tools

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"testing"
)

func parseField(field string, dst *string) func(string) error {
	return func(s string) error {
		value := gjson.Get(s, field)
		if !value.Exists() {
			return fmt.Errorf("no %s field", field)
		}
		*dst = value.String()
		return nil
	}
}

func TestParseJSON(t *testing.T) {
	replies := map[string]string{
		"plain":          `{"action": "FetchNews"}`,
		"fenced":         "Sure!\n```json\n{\"action\": \"FetchNews\"}\n```\nanything else?",
		"trailing text":  `I will do {"action": "FetchNews"} now.`,
		"missing brace":  `{"thought": "x", "action": "FetchNews"`,
		"nested objects": `{"thought": {"a": 1}, "action": "FetchNews"}`,
		"escaped pipe":   `{"action": "Fetch\|News"}`,
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			var action string
			require.NoError(t, ParseJSON(reply, parseField("action", &action)))
			if name == "escaped pipe" {
				assert.Equal(t, "Fetch|News", action)
			} else {
				assert.Equal(t, "FetchNews", action)
			}
		})
	}
}

func TestParseJSONFailures(t *testing.T) {
	var action string
	assert.Error(t, ParseJSON("", parseField("action", &action)))
	assert.Error(t, ParseJSON("no json at all", parseField("action", &action)))
	assert.Error(t, ParseJSON(`{"other": 1}`, parseField("action", &action)))
	assert.Empty(t, action)
}

func TestParseJSONSkipsInnerObjectWhenOuterIsBroken(t *testing.T) {
	var answer string
	err := ParseJSON(`{"broken": [ {"final-answer": "ok"}`, parseField("final-answer", &answer))
	require.NoError(t, err)
	assert.Equal(t, "ok", answer)
}
