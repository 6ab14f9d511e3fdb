package messages

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseYAML parses YAML content keyed by language code.
func parseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		transMap, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		result[strings.ToLower(lang)] = transMap
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no translations found", ErrInvalidCatalog)
	}
	return result, nil
}

// loadFS reads every .yaml/.yml file in dir and merges the languages they define.
func loadFS(fsys fs.FS, dir string) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadCatalog, err)
	}

	all := make(map[string]map[string]any)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFailedToReadCatalog, entry.Name(), err)
		}

		translations, err := parseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		for lang, trans := range translations {
			if existing, ok := all[lang]; ok {
				mergeTranslations(existing, trans)
				continue
			}
			all[lang] = trans
		}
	}
	return all, nil
}

// mergeTranslations deep-merges src into dst; src wins on conflicting leaves.
func mergeTranslations(dst, src map[string]any) {
	for key, val := range src {
		srcMap, srcIsMap := val.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeTranslations(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[key] = maps.Clone(srcMap)
			continue
		}
		dst[key] = val
	}
}
