package services

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codewithtanvir/railsheba-premium/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the read-only reference data: stations, seat classes and
// trains with per-class fares.
type Catalog struct {
	Stations []models.Station `yaml:"stations"`
	Classes  []string         `yaml:"classes"`
	Trains   []models.Train   `yaml:"trains"`
}

// LoadCatalog reads the catalog from path, or the embedded default when
// path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading catalog: %w", err)
		}
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes YAML catalog data and checks that train routes
// name known stations and that class types are unique per train.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("error decoding catalog: %w", err)
	}

	known := make(map[string]bool, len(catalog.Stations))
	for _, s := range catalog.Stations {
		known[s.Name] = true
	}

	ids := make(map[string]bool, len(catalog.Trains))
	for _, train := range catalog.Trains {
		if ids[train.ID] {
			return nil, fmt.Errorf("duplicate train id %s", train.ID)
		}
		ids[train.ID] = true

		if !known[train.From] || !known[train.To] {
			return nil, fmt.Errorf("train %s: %w: %s -> %s", train.ID, models.ErrUnknownStation, train.From, train.To)
		}

		seen := make(map[string]bool, len(train.Classes))
		for _, class := range train.Classes {
			if seen[class.Type] {
				return nil, fmt.Errorf("train %s lists class %s twice", train.ID, class.Type)
			}
			if class.Fare <= 0 || class.Available < 0 {
				return nil, fmt.Errorf("train %s class %s: invalid fare or availability", train.ID, class.Type)
			}
			seen[class.Type] = true
		}
	}

	return &catalog, nil
}

// StationNames returns every station name for the search pickers
func (c *Catalog) StationNames() []string {
	names := make([]string, len(c.Stations))
	for i, s := range c.Stations {
		names[i] = s.Name
	}
	return names
}

// FindStation finds a station by name or code: exact (case-insensitive)
// first, then the first substring match.
func (c *Catalog) FindStation(query string) (models.Station, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return models.Station{}, fmt.Errorf("%w: empty query", models.ErrUnknownStation)
	}

	for _, s := range c.Stations {
		if strings.EqualFold(s.Name, q) || strings.EqualFold(s.Code, q) {
			return s, nil
		}
	}

	lower := strings.ToLower(q)
	for _, s := range c.Stations {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			return s, nil
		}
	}

	return models.Station{}, fmt.Errorf("%w: %s", models.ErrUnknownStation, query)
}

// FilterStations returns station names containing query, for the
// station picker's search box.
func (c *Catalog) FilterStations(query string) []string {
	lower := strings.ToLower(query)
	var out []string
	for _, s := range c.Stations {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			out = append(out, s.Name)
		}
	}
	return out
}

// SearchTrains returns the trains running exactly from -> to
func (c *Catalog) SearchTrains(from, to string) []models.Train {
	var results []models.Train
	for _, train := range c.Trains {
		if train.From == from && train.To == to {
			results = append(results, train)
		}
	}
	return results
}

// Train retrieves a train by id
func (c *Catalog) Train(id string) (models.Train, error) {
	for _, train := range c.Trains {
		if train.ID == id {
			return train, nil
		}
	}
	return models.Train{}, fmt.Errorf("%w: %s", models.ErrUnknownTrain, id)
}
