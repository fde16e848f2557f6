package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/unitgrid/internal/ctxlog"
	"github.com/vk/unitgrid/internal/model"
	"github.com/vk/unitgrid/internal/urn"
)

// fileRoot decodes the top-level blocks of a registry file.
type fileRoot struct {
	Users  []*userBlock `hcl:"user,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type userBlock struct {
	URN   string       `hcl:"urn,label"`
	Units []*unitBlock `hcl:"unit,block"`
}

type unitBlock struct {
	Name string `hcl:"name,label"`
	Spec string `hcl:"spec"`
}

// LoadFiles reads users and units from every .hcl file found under paths.
// Directories are walked recursively; paths that do not exist are skipped.
func (r *Registry) LoadFiles(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("No .hcl registry files found.", "paths", paths)
		return nil
	}

	parser := hclparse.NewParser()
	units := 0
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		n, err := r.loadBody(hclFile.Body, file)
		if err != nil {
			return err
		}
		units += n
		logger.Debug("Loaded registry file.", "file", file, "units", n)
	}

	logger.Info("Registry loaded successfully.", "files", len(files), "units", units)
	return nil
}

// LoadSource reads users and units from HCL source held in memory.
func (r *Registry) LoadSource(src []byte, filename string) error {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	_, err := r.loadBody(hclFile.Body, filename)
	return err
}

func (r *Registry) loadBody(body hcl.Body, filename string) (int, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return 0, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	units := 0
	for _, block := range root.Users {
		id, err := urn.Parse(block.URN)
		if err != nil {
			return 0, fmt.Errorf("in %s: %w", filename, err)
		}
		user := r.Add(id)
		for _, unit := range block.Units {
			if err := user.Define(unit.Name, model.NewSpec(unit.Spec)); err != nil {
				return 0, fmt.Errorf("in %s: %w", filename, err)
			}
			units++
		}
	}
	return units, nil
}

// findHCLFiles walks all given paths and returns a flat, de-duplicated list
// of .hcl files.
func findHCLFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				add(path)
			}
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(p) == ".hcl" {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
