package stencil

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common failure classes. Concrete error types
// below match these through errors.Is.
var (
	// ErrConfig indicates invalid generator or language configuration.
	// Configuration errors are reported before any generation begins.
	ErrConfig = errors.New("stencil: invalid configuration")

	// ErrStructure indicates an inconsistent input model, such as two types
	// resolving to the same output path. Structural errors fail the whole
	// run before any file is written.
	ErrStructure = errors.New("stencil: malformed input model")

	// ErrGeneration indicates a per-node pipeline failure.
	ErrGeneration = errors.New("stencil: generation failed")

	// ErrOverwrite is returned when an output file already exists and the
	// generator was not given permission to replace it.
	ErrOverwrite = errors.New("stencil: refusing to overwrite existing file")

	// ErrUnknownLanguage is returned when a named target language has no
	// registered descriptor.
	ErrUnknownLanguage = errors.New("stencil: unknown language")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("stencil: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("stencil: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// StructureError represents an inconsistency in the resolved type model
// handed over by the schema front end.
type StructureError struct {
	Type    string // fully qualified type name, if known
	Path    string // output path involved in the conflict, if any
	Message string
}

// Error implements the error interface.
func (e *StructureError) Error() string {
	var b strings.Builder
	b.WriteString("stencil: structure error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Path != "" {
		b.WriteString(" (path: ")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for StructureError.
func (e *StructureError) Is(target error) bool {
	return target == ErrStructure
}

// NewStructureError creates a new StructureError.
func NewStructureError(typeName, path, message string) *StructureError {
	return &StructureError{
		Type:    typeName,
		Path:    path,
		Message: message,
	}
}

// GenerationError represents a per-node pipeline failure. It always carries
// the fully qualified name of the output node and the stage at which the
// pipeline failed, so diagnosis does not require re-running with tracing.
type GenerationError struct {
	Node    string // fully qualified name of the output node
	Stage   string // pipeline stage: render, file-postprocess, line-postprocess, commit
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("stencil: generation error")
	if e.Node != "" {
		b.WriteString(" on node ")
		b.WriteString(e.Node)
	}
	if e.Stage != "" {
		b.WriteString(" in stage ")
		b.WriteString(e.Stage)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(node, stage, message string, cause error) *GenerationError {
	return &GenerationError{
		Node:    node,
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsStructureError reports whether the error is a StructureError.
func IsStructureError(err error) bool {
	var structErr *StructureError
	return errors.As(err, &structErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}
