package script

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/tasklist/internal/utils"
)

const schemaURL = "https://github.com/nibzard/tasklist/script.schema.json"

//go:embed script.schema.json
var schemaSource string

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Schema returns the JSON Schema scripts are validated against.
func Schema() string {
	return schemaSource
}

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
			compileErr = fmt.Errorf("add script schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateDocument validates a decoded JSON document and returns one error per
// failing leaf.
func validateDocument(doc interface{}) []*ValidationError {
	schema, err := compiled()
	if err != nil {
		return []*ValidationError{{Err: err}}
	}
	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []*ValidationError{{Err: err}}
	}
	var out []*ValidationError
	collectSchemaErrors(&out, ve)
	return out
}

func collectSchemaErrors(out *[]*ValidationError, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		*out = append(*out, &ValidationError{
			Path: utils.JSONPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(out, cause)
	}
}
