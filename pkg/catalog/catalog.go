// Package catalog maps public model selectors to upstream model ids. The
// catalog is plain YAML so deployments can expose a curated subset of the
// upstream's models under stable names.
package catalog

import (
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/promptgate/promptgate/pkg/dto"
)

type ModelConfig struct {
	Upstream    string `yaml:"upstream"`
	Description string `yaml:"description"`
	Default     bool   `yaml:"default"`
}

type ModelCatalog interface {
	LookupModel(selector string) (ModelConfig, bool)
	GetModels() []dto.Model
}

type YamlModelCatalog struct {
	cat          map[string]ModelConfig
	defaultModel string
}

func NewYamlModelCatalog(data []byte) (*YamlModelCatalog, error) {
	var doc struct {
		Models map[string]ModelConfig `yaml:"models"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Models) == 0 {
		return nil, errors.New("model catalog is empty")
	}

	var def string
	for name, cfg := range doc.Models {
		if cfg.Upstream == "" {
			return nil, errors.Errorf("model %s has no upstream id", name)
		}
		if cfg.Default {
			if def != "" {
				return nil, errors.Errorf("multiple default models: %s and %s", def, name)
			}
			def = name
		}
	}
	return &YamlModelCatalog{cat: doc.Models, defaultModel: def}, nil
}

// LookupModel resolves a selector; an empty selector resolves to the default
// model when the catalog declares one.
func (c *YamlModelCatalog) LookupModel(selector string) (ModelConfig, bool) {
	if selector == "" {
		selector = c.defaultModel
	}
	cfg, ok := c.cat[selector]
	return cfg, ok
}

func (c *YamlModelCatalog) GetModels() []dto.Model {
	result := make([]dto.Model, 0, len(c.cat))
	for name, cfg := range c.cat {
		result = append(result, dto.Model{
			Name:        name,
			Upstream:    cfg.Upstream,
			Description: cfg.Description,
			Default:     name == c.defaultModel,
		})
	}
	slices.SortFunc(result, func(a, b dto.Model) int {
		if a.Name < b.Name {
			return -1
		} else if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return result
}
