// Package config loads the optional HCL run-settings file.
//
// Every attribute is optional:
//
//	input   = "inputs/6.txt"   # relative to the file's directory; "-" is stdin
//	workers = cpus             # cpus is the machine's logical CPU count
//	render  = true
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package config

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/guardpatrol/internal/ctxlog"
)

// File is the decoded settings file. nil fields were not set.
type File struct {
	Input   *string `hcl:"input,optional"`
	Workers *int    `hcl:"workers,optional"`
	Render  *bool   `hcl:"render,optional"`
	Log     *Log    `hcl:"log,block"`
}

// Log is the optional log block.
type Log struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// evalContext exposes the variables settings expressions may reference.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// Load parses and decodes the settings file at path. A relative input is
// resolved against the file's directory.
func Load(ctx context.Context, path string) (*File, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}
	out, err := decode(f, path)
	if err != nil {
		return nil, err
	}
	if out.Input != nil && *out.Input != "-" && !filepath.IsAbs(*out.Input) {
		resolved := filepath.Join(filepath.Dir(path), *out.Input)
		out.Input = &resolved
	}
	logger.Debug("Settings file loaded.", "path", path)
	return out, nil
}

// Parse decodes settings from src. filename is used in diagnostics only.
// Relative inputs are returned unchanged.
func Parse(src []byte, filename string) (*File, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, name string) (*File, error) {
	var out File
	if diags := gohcl.DecodeBody(f.Body, evalContext(), &out); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings %s: %w", name, diags)
	}
	return &out, nil
}
