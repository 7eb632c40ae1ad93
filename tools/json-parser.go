package tools

import (
	"fmt"
	"github.com/tidwall/gjson"
	"strings"
)

// ParseJSON looks for a JSON object somewhere in an LLM reply and hands
// the first one that parses to parser. Models like to wrap JSON in code
// fences, add text around it or lose the closing brace, all of it is tolerated.
func ParseJSON(sourceData string, parser func(string) error) error {
	sourceData = cleanJSONString(sourceData)
	sourceData = strings.TrimSpace(strings.ReplaceAll(sourceData, "\\|", "|"))

	if len(sourceData) < 2 {
		return fmt.Errorf("json is too short")
	}

	var err = fmt.Errorf("no json object found")
	for start := strings.Index(sourceData, "{"); start != -1; {
		err = actualParse(strings.TrimSpace(sourceData[start:]), parser)
		if err == nil {
			return nil
		}

		next := strings.Index(sourceData[start+1:], "{")
		if next == -1 {
			break
		}
		start += next + 1
	}

	return err
}

func cleanJSONString(input string) string {
	input = strings.ReplaceAll(input, "<0x0A>", "\n")
	input = strings.ReplaceAll(input, "```json", "")
	return strings.ReplaceAll(input, "```", "")
}

func actualParse(newSourceData string, parser func(string) error) error {
	// cutting the tail one symbol at a time until the object becomes valid
	for i := len(newSourceData); i > 1; i-- {
		candidate := newSourceData[:i]
		if !strings.HasSuffix(candidate, "}") || !gjson.Valid(candidate) {
			continue
		}

		if err := parser(candidate); err == nil {
			return nil
		}
	}

	// truncated replies often miss only the last brace
	candidate := newSourceData + "}"
	if gjson.Valid(candidate) {
		if err := parser(candidate); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to parse json: %.64s", newSourceData)
}
