package pattern

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

//go:embed builtin/*.rle
var builtinFS embed.FS

// Names lists the built-in patterns.
func Names() []string {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".rle"))
	}
	slices.Sort(names)
	return names
}

// Builtin returns a built-in pattern by name.
func Builtin(name string) (*Pattern, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	data, err := builtinFS.ReadFile("builtin/" + key + ".rle")
	if err != nil {
		return nil, fmt.Errorf("unknown pattern %q (have %s)", name, strings.Join(Names(), ", "))
	}
	p, err := Parse(bytes.NewReader(data), FormatRLE)
	if err != nil {
		return nil, fmt.Errorf("builtin %s: %w", key, err)
	}
	return p, nil
}

// Resolve returns the built-in pattern called ref, or loads ref as a file.
// A bare name that is not a file is looked up in dirs as name, name.rle and
// name.cells, in that order.
func Resolve(ref string, dirs ...string) (*Pattern, error) {
	if slices.Contains(Names(), strings.ToLower(strings.TrimSpace(ref))) {
		return Builtin(ref)
	}
	if _, err := os.Stat(ref); err == nil || strings.ContainsRune(ref, filepath.Separator) {
		return Load(ref)
	}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		for _, ext := range []string{"", ".rle", ".cells"} {
			path := filepath.Join(dir, ref+ext)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return Load(path)
			}
		}
	}
	return Load(ref)
}

// UserNames lists the pattern files in dir by the name Resolve accepts.
func UserNames(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".rle", ".cells":
			names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		}
	}
	slices.Sort(names)
	return names
}
