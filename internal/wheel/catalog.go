package wheel

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	MinScore = 0
	MaxScore = 10

	maxReflectionLength = 2000
)

var (
	ErrUnknownWheelType = errors.New("unknown wheel type")
	ErrUnknownArea      = errors.New("unknown wheel area")
	ErrUnknownQuestion  = errors.New("unknown reflection question")
	ErrReflectionLength = errors.New("reflection answer too long")
)

//go:embed catalog.yaml
var catalogYAML []byte

type Definition struct {
	Type      string   `yaml:"type" json:"type"`
	Title     string   `yaml:"title" json:"title"`
	Areas     []string `yaml:"areas" json:"areas"`
	Questions []string `yaml:"questions" json:"questions"`
}

type Catalog struct {
	definitions []Definition
	byType      map[string]Definition
}

type catalogFile struct {
	Wheels []Definition `yaml:"wheels"`
}

func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse wheel catalog: %w", err)
	}
	if len(file.Wheels) == 0 {
		return nil, errors.New("wheel catalog is empty")
	}

	catalog := &Catalog{
		definitions: make([]Definition, 0, len(file.Wheels)),
		byType:      make(map[string]Definition, len(file.Wheels)),
	}
	for _, definition := range file.Wheels {
		definition.Type = strings.TrimSpace(definition.Type)
		if definition.Type == "" {
			return nil, errors.New("wheel catalog entry without type")
		}
		if _, exists := catalog.byType[definition.Type]; exists {
			return nil, fmt.Errorf("duplicate wheel type %s", definition.Type)
		}
		if len(definition.Areas) == 0 {
			return nil, fmt.Errorf("wheel %s has no areas", definition.Type)
		}
		catalog.definitions = append(catalog.definitions, definition)
		catalog.byType[definition.Type] = definition
	}
	return catalog, nil
}

// DefaultCatalog returns the embedded catalog. It panics only if the embedded
// file is malformed, which the package tests guard.
func DefaultCatalog() *Catalog {
	catalog, err := ParseCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (catalog *Catalog) Definitions() []Definition {
	definitions := make([]Definition, len(catalog.definitions))
	copy(definitions, catalog.definitions)
	return definitions
}

func (catalog *Catalog) Lookup(wheelType string) (Definition, error) {
	definition, ok := catalog.byType[strings.TrimSpace(wheelType)]
	if !ok {
		return Definition{}, ErrUnknownWheelType
	}
	return definition, nil
}

func ClampScore(score int) int {
	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

func ColorForScore(score int) string {
	switch {
	case score >= 0 && score <= 3:
		return "#ef4444"
	case score >= 4 && score <= 6:
		return "#eab308"
	case score >= 7 && score <= 8:
		return "#84cc16"
	case score >= 9 && score <= 10:
		return "#16a34a"
	default:
		return "#6b7280"
	}
}

// Normalize rejects areas and questions outside the definition, clamps scores,
// and fills unanswered areas with zero.
func (definition Definition) Normalize(scores map[string]int, reflections map[string]string) (map[string]int, map[string]string, error) {
	known := make(map[string]struct{}, len(definition.Areas))
	for _, area := range definition.Areas {
		known[area] = struct{}{}
	}
	for area := range scores {
		if _, ok := known[area]; !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownArea, area)
		}
	}

	normalizedScores := make(map[string]int, len(definition.Areas))
	for _, area := range definition.Areas {
		normalizedScores[area] = ClampScore(scores[area])
	}

	normalizedReflections := make(map[string]string, len(reflections))
	for key, answer := range reflections {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 || index >= len(definition.Questions) || strconv.Itoa(index) != key {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, key)
		}
		trimmed := strings.TrimSpace(answer)
		if len([]rune(trimmed)) > maxReflectionLength {
			return nil, nil, ErrReflectionLength
		}
		if trimmed == "" {
			continue
		}
		normalizedReflections[strconv.Itoa(index)] = trimmed
	}

	return normalizedScores, normalizedReflections, nil
}

type Slice struct {
	Area  string `json:"name"`
	Score int    `json:"value"`
	Color string `json:"color"`
}

// Chart lists the definition's areas in catalog order with their colour band.
func (definition Definition) Chart(scores map[string]int) []Slice {
	slices := make([]Slice, 0, len(definition.Areas))
	for _, area := range definition.Areas {
		score := scores[area]
		slices = append(slices, Slice{Area: area, Score: score, Color: ColorForScore(score)})
	}
	return slices
}
