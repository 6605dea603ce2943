package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"listing-service/internal/core/domain"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

const (
	FeedRecordSchema     = "FeedRecord"
	IngestReportEvent    = "IngestReportEvent"
	CurrentSchemaVersion = "1.0.0"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	// Сначала добавляем все схемы как ресурсы, чтобы работали ссылки $ref
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("failed to add schema resource %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and adding schema resources: %v", err)
	}

	err = fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		schema, err := compiler.Compile(path)
		if err != nil {
			return fmt.Errorf("could not compile schema %s: %w", path, err)
		}
		if key := generateKeyFromPath(path); key != "" {
			compiledSchemas[key] = schema
		}
		return nil
	})
	if err != nil {
		log.Fatalf("error walking and compiling schemas: %v", err)
	}
}

// generateKeyFromPath преобразует путь вида "schemas/events/ingest-report/v1.json"
// в ключ "IngestReportEvent/1.0.0", а "schemas/records/feed-record/v1.json" в "FeedRecord/1.0.0".
func generateKeyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")

	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return ""
	}
	kind, name, version := parts[0], parts[1], parts[2]

	caser := cases.Title(language.English)
	var nameBuilder strings.Builder
	for _, p := range strings.Split(name, "-") {
		nameBuilder.WriteString(caser.String(p))
	}
	if kind == "events" {
		nameBuilder.WriteString("Event")
	}

	return fmt.Sprintf("%s/%s.0.0", nameBuilder.String(), strings.TrimPrefix(version, "v"))
}

func lookupSchema(schemaType, version string) (*jsonschema.Schema, error) {
	key := fmt.Sprintf("%s/%s", schemaType, version)
	schema, ok := compiledSchemas[key]
	if !ok {
		return nil, fmt.Errorf("schema '%s' version '%s' not found", schemaType, version)
	}
	return schema, nil
}

// ValidateEvent проверяет тело исходящего сообщения по схеме
func ValidateEvent(eventType, eventVersion string, body []byte) error {
	schema, err := lookupSchema(eventType, eventVersion)
	if err != nil {
		return err
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("message body is not a valid JSON: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("JSON schema validation failed: %w", err)
	}
	return nil
}

// FeedRecordValidator проверяет внешнюю форму записи фида до нормализации.
type FeedRecordValidator struct {
	schema *jsonschema.Schema
}

func NewFeedRecordValidator() (*FeedRecordValidator, error) {
	schema, err := lookupSchema(FeedRecordSchema, CurrentSchemaVersion)
	if err != nil {
		return nil, err
	}
	return &FeedRecordValidator{schema: schema}, nil
}

func (v *FeedRecordValidator) ValidateRecord(record domain.RawRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is null", domain.ErrInvalidRecord)
	}
	if err := v.schema.Validate(map[string]interface{}(record)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}
	return nil
}
