package pagemap

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and parses JSON/YAML page-map files.
// Later files may not redefine a section declared by an earlier one; the
// duplicate is reported instead of silently shadowed.
func LoadFS(fsys fs.FS) (*Map, error) {
	m := &Map{sections: make(map[string]Section)}
	if fsys == nil {
		return m, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isMapFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("pagemap: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Sections {
			id := strings.TrimSpace(name)
			if id == "" {
				return fmt.Errorf("pagemap: file %s defines an empty section name", path)
			}
			if _, exists := m.sections[id]; exists {
				return fmt.Errorf("pagemap: duplicate section %q (file %s)", id, path)
			}

			section, err := normaliseSection(raw, id, path)
			if err != nil {
				return err
			}
			m.sections[id] = section
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

type documentFile struct {
	Sections map[string]Section `json:"sections" yaml:"sections"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("pagemap: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("pagemap: parse %s: invalid JSON or YAML", source)
}

func normaliseSection(raw Section, id, source string) (Section, error) {
	if len(raw.Slots) == 0 {
		return Section{}, fmt.Errorf("pagemap: section %q (file %s) declares no slots", id, source)
	}

	out := Section{Slots: make(map[string]string, len(raw.Slots))}
	for slot, ref := range raw.Slots {
		name := strings.TrimSpace(slot)
		if name == "" {
			return Section{}, fmt.Errorf("pagemap: section %q (file %s) declares an empty slot name", id, source)
		}
		value := strings.TrimSpace(ref)
		if value == "" {
			return Section{}, fmt.Errorf("pagemap: section %q (file %s) slot %q has no element reference", id, source, name)
		}
		out.Slots[name] = value
	}
	return out, nil
}

func isMapFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
