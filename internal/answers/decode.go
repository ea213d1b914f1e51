package answers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/abhisek/archetype/internal/quiz"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed answers.schema.json
var schemaDoc []byte

const schemaURL = "schema://answers.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Decode validates a JSON answers document against the answers schema and
// converts it. The "answers" member is either an object keyed by 1-based
// question number or an array of letters in quiz order. Other top-level
// members are ignored, so exported result documents decode too.
func Decode(raw []byte) (quiz.AnswerSet, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidDocument{
			Content: raw,
			Err:     fmt.Errorf("invalid JSON: %w", err),
		}
	}

	compiled, err := answersSchema()
	if err != nil {
		return nil, &ErrInvalidDocument{
			Content: raw,
			Err:     fmt.Errorf("compile schema: %w", err),
		}
	}

	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidDocument{
			Content: raw,
			Err:     fmt.Errorf("schema validation failed: %w", err),
		}
	}

	var doc struct {
		Answers json.RawMessage `json:"answers"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ErrInvalidDocument{Content: raw, Err: err}
	}
	return fromRaw(doc.Answers)
}

func fromRaw(raw json.RawMessage) (quiz.AnswerSet, error) {
	set := make(quiz.AnswerSet)

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for i, o := range list {
			set[i] = o
		}
		return set, nil
	}

	var byNumber map[string]string
	if err := json.Unmarshal(raw, &byNumber); err != nil {
		return nil, &ErrInvalidDocument{Content: raw, Err: err}
	}
	for key, o := range byNumber {
		n, err := strconv.Atoi(key)
		if err != nil {
			return nil, &ErrInvalidDocument{Content: raw, Err: fmt.Errorf("question key %q: %w", key, err)}
		}
		set[n-1] = o
	}
	return set, nil
}

// answersSchema compiles the embedded schema on first use.
func answersSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal(schemaDoc, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
