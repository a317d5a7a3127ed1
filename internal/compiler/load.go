package compiler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// Format is a definition file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// FormatOf returns the format implied by path's extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".json":
		return FormatJSON, true
	case ".cue":
		return FormatCUE, true
	}
	return "", false
}

// LoadFile reads and decodes the definition at path. Decoding problems are
// returned as ValidationError with code ErrUnsupportedFormat or ErrParse.
func LoadFile(path string) (*Definition, error) {
	format, ok := FormatOf(path)
	if !ok {
		return nil, ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("unsupported definition file extension %q", filepath.Ext(path)),
			Code:    ErrUnsupportedFormat,
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(path, format, data)
}

// Parse decodes data in format. name is used in CUE positions.
// Unknown fields are rejected.
func Parse(name string, format Format, data []byte) (*Definition, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data)
	case FormatJSON:
		return parseJSON(data)
	case FormatCUE:
		return parseCUE(name, data)
	}
	return nil, ValidationError{
		Field:   "file",
		Message: fmt.Sprintf("unsupported format %q", format),
		Code:    ErrUnsupportedFormat,
	}
}

func parseYAML(data []byte) (*Definition, error) {
	var def Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseError("empty document", 0)
		}
		return nil, parseError(err.Error(), 0)
	}
	return &def, nil
}

func parseJSON(data []byte) (*Definition, error) {
	var def Definition
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	// keeps integers exact for ir.FromAny
	decoder.UseNumber()
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, parseError("empty document", 0)
		}
		return nil, parseError(err.Error(), 0)
	}
	return &def, nil
}

// parseCUE evaluates the file, requires every field to be concrete, then
// decodes the exported JSON form.
func parseCUE(name string, data []byte) (*Definition, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(name))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	exported, err := v.MarshalJSON()
	if err != nil {
		return nil, formatCUEError(err)
	}
	return parseJSON(exported)
}

func parseError(msg string, line int) ValidationError {
	return ValidationError{Field: "file", Message: msg, Code: ErrParse, Line: line}
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return parseError(err.Error(), 0)
	}

	// Report the first error with position info
	first := errs[0]
	line := 0
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		line = positions[0].Line()
	}
	return parseError(first.Error(), line)
}
