package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadPack reads an author-supplied lesson pack from a JSON file,
// validates it against the pack schema, and checks the structural
// invariants the schema can't express.
func LoadPack(path string) (Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Pack{}, fmt.Errorf("read pack: %w", err)
	}
	return ParsePack(raw)
}

// ParsePack validates and decodes raw JSON pack data.
func ParsePack(raw []byte) (Pack, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Pack{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getSchema()
	if err != nil {
		return Pack{}, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return Pack{}, fmt.Errorf("pack schema validation: %w", err)
	}

	var pack Pack
	if err := json.Unmarshal(raw, &pack); err != nil {
		return Pack{}, fmt.Errorf("decode pack: %w", err)
	}

	if err := Validate(pack); err != nil {
		return Pack{}, err
	}
	return pack, nil
}

// Validate checks the structural invariants of a pack: exactly ten
// questions each with exactly one correct option and unique option ids,
// exactly four applications, and sane parameter ranges.
func Validate(p Pack) error {
	if len(p.Questions) != QuestionCount {
		return fmt.Errorf("pack %q: %d questions, want %d", p.ID, len(p.Questions), QuestionCount)
	}
	if len(p.Applications) != ApplicationCount {
		return fmt.Errorf("pack %q: %d applications, want %d", p.ID, len(p.Applications), ApplicationCount)
	}

	for i, q := range p.Questions {
		correct := 0
		seen := make(map[string]bool)
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
			if seen[o.ID] {
				return fmt.Errorf("pack %q question %d: duplicate option id %q", p.ID, i, o.ID)
			}
			seen[o.ID] = true
		}
		if correct != 1 {
			return fmt.Errorf("pack %q question %d: %d correct options, want 1", p.ID, i, correct)
		}
	}

	for _, s := range p.Params {
		if s.Min >= s.Max {
			return fmt.Errorf("pack %q param %q: min %v >= max %v", p.ID, s.Name, s.Min, s.Max)
		}
		if s.Default < s.Min || s.Default > s.Max {
			return fmt.Errorf("pack %q param %q: default %v outside [%v, %v]", p.ID, s.Name, s.Default, s.Min, s.Max)
		}
	}

	return nil
}

// getSchema compiles the pack schema once and caches it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(packSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://lesson-pack.json"
		if err := c.AddResource(url, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
