package store

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kaptinlin/jsonschema"

	"github.com/liftlog-dev/liftlog/internal/workout"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	workoutsSchema *jsonschema.Schema
	planSchema     *jsonschema.Schema
	schemaErr      error
)

func compileSchemas() {
	compiler := jsonschema.NewCompiler()
	workoutsSchema, schemaErr = compileSchema(compiler, "schemas/workouts.json")
	if schemaErr != nil {
		return
	}
	planSchema, schemaErr = compileSchema(compiler, "schemas/plan.json")
}

func compileSchema(compiler *jsonschema.Compiler, path string) (*jsonschema.Schema, error) {
	data, err := schemaFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", path, err)
	}
	schema, err := compiler.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", path, err)
	}
	return schema, nil
}

// validate checks data against the compiled schema for the given record
// key. Schemas compile lazily on first use, so the lookup must happen
// after the once fires.
func validate(key string, data []byte) error {
	schemaOnce.Do(compileSchemas)
	if schemaErr != nil {
		return schemaErr
	}
	var schema *jsonschema.Schema
	switch key {
	case KeyWorkouts:
		schema = workoutsSchema
	case KeyPlan:
		schema = planSchema
	default:
		return fmt.Errorf("no schema for record %q", key)
	}
	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("schema validation failed: %v", result.Errors)
}

// LoadEntries reads the workout-entry collection. Malformed or
// schema-invalid payloads are logged and degrade to an empty collection;
// load never fails.
func LoadEntries(ctx context.Context, s Store, logger *slog.Logger) []workout.Entry {
	data, err := s.Get(ctx, KeyWorkouts)
	if err != nil {
		logger.Warn("load workouts failed, starting empty", "error", err)
		return nil
	}
	if data == nil {
		return nil
	}

	if err := validate(KeyWorkouts, data); err != nil {
		logger.Warn("workouts record invalid, starting empty", "error", err)
		return nil
	}

	var entries []workout.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Warn("workouts record unreadable, starting empty", "error", err)
		return nil
	}
	return entries
}

// SaveEntries persists the workout-entry collection.
func SaveEntries(ctx context.Context, s Store, entries []workout.Entry) error {
	if entries == nil {
		entries = []workout.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode workouts: %w", err)
	}
	if err := s.Set(ctx, KeyWorkouts, data); err != nil {
		return fmt.Errorf("save workouts: %w", err)
	}
	return nil
}

// LoadPlan reads the weekly-plan record. Malformed or schema-invalid
// payloads are logged and degrade to an empty plan; load never fails.
func LoadPlan(ctx context.Context, s Store, logger *slog.Logger) workout.Plan {
	data, err := s.Get(ctx, KeyPlan)
	if err != nil {
		logger.Warn("load plan failed, starting empty", "error", err)
		return workout.NewPlan()
	}
	if data == nil {
		return workout.NewPlan()
	}

	if err := validate(KeyPlan, data); err != nil {
		logger.Warn("plan record invalid, starting empty", "error", err)
		return workout.NewPlan()
	}

	var plan workout.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		logger.Warn("plan record unreadable, starting empty", "error", err)
		return workout.NewPlan()
	}
	if plan.Week == nil {
		plan.Week = make(map[string][]workout.PlannedExercise)
	}
	return plan
}

// SavePlan persists the weekly-plan record.
func SavePlan(ctx context.Context, s Store, plan workout.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := s.Set(ctx, KeyPlan, data); err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}
