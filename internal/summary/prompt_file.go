package summary

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadPromptFile reads prompt overrides from a YAML file with optional
// shared_prompt and instructions keys. Missing keys keep the defaults.
func LoadPromptFile(path string) (PromptTemplate, error) {
	if path == "" {
		return DefaultPromptTemplate(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return PromptTemplate{}, fmt.Errorf("read prompt file: %w", err)
	}
	var tmpl PromptTemplate
	if err := yaml.UnmarshalStrict(data, &tmpl); err != nil {
		return PromptTemplate{}, fmt.Errorf("parse prompt file %s: %w", path, err)
	}
	return tmpl.withDefaults(), nil
}
