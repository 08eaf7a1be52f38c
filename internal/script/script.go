package script

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nibzard/tasklist/internal/todo"
)

// Op names a script action.
type Op string

const (
	OpAdd      Op = "add"
	OpRemove   Op = "remove"
	OpToggle   Op = "toggle"
	OpPriority Op = "priority"
	OpMove     Op = "move"
)

// Script is a decoded action script.
type Script struct {
	SchemaVersion int      `json:"schema_version"`
	Actions       []Action `json:"actions"`
}

// Action is one recorded user action.
type Action struct {
	Op        Op              `json:"op"`
	Text      string          `json:"text,omitempty"`
	Priority  *todo.Priority  `json:"priority,omitempty"`
	Task      string          `json:"task,omitempty"`
	Index     *int            `json:"index,omitempty"`
	Direction *todo.Direction `json:"direction,omitempty"`
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // dotted path to the error location, e.g. actions[2].direction
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InvalidError is returned when a script fails schema validation.
type InvalidError struct {
	Errors []*ValidationError
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Error())
	}
	return "invalid script: " + strings.Join(msgs, "; ")
}

// Load reads, validates and decodes a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

// Parse validates data against the script schema and decodes it.
// Schema failures are reported as *InvalidError.
func Parse(data []byte) (*Script, error) {
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}

	if errs := validateDocument(doc); len(errs) > 0 {
		return nil, &InvalidError{Errors: errs}
	}

	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

// Validate checks the script's current actions against the schema.
func (s *Script) Validate() error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal script: %w", err)
	}
	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("unmarshal script: %w", err)
	}
	if errs := validateDocument(doc); len(errs) > 0 {
		return &InvalidError{Errors: errs}
	}
	return nil
}
