package tool

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/lagos.yaml
var lagosYAML []byte

// Attraction describes a single point of interest. Optional fields are
// omitted from tool output when empty, so entries keep the shape of the
// underlying data.
type Attraction struct {
	Name       string  `yaml:"name" json:"name"`
	Rating     float64 `yaml:"rating" json:"rating"`
	Price      string  `yaml:"price,omitempty" json:"price,omitempty"`
	PriceRange string  `yaml:"price_range,omitempty" json:"price_range,omitempty"`
	Cuisine    string  `yaml:"cuisine,omitempty" json:"cuisine,omitempty"`
	Entry      string  `yaml:"entry,omitempty" json:"entry,omitempty"`
	Hours      string  `yaml:"hours,omitempty" json:"hours,omitempty"`
	Tip        string  `yaml:"tip,omitempty" json:"tip,omitempty"`
}

// AttractionGroup holds the attractions for one (location, category,
// budget) combination.
type AttractionGroup struct {
	Location string       `yaml:"location"`
	Category string       `yaml:"category"`
	Budget   string       `yaml:"budget"`
	Entries  []Attraction `yaml:"entries"`
}

// SafetyZone holds day/night safety scores and advice for one area.
type SafetyZone struct {
	Day    int      `yaml:"day" json:"day"`
	Night  int      `yaml:"night" json:"night"`
	Alerts []string `yaml:"alerts" json:"alerts"`
	Tip    string   `yaml:"tip" json:"tip"`
}

// SafetyData covers all known zones plus the fallback for unknown areas.
type SafetyData struct {
	Zones             map[string]SafetyZone `yaml:"zones"`
	Default           SafetyZone            `yaml:"default"`
	EmergencyContacts map[string]string     `yaml:"emergency_contacts"`
}

// Hotel describes one accommodation option. PricePerNight keeps the
// display string; numeric cost estimation parses the digits out of it.
type Hotel struct {
	Name          string   `yaml:"name" json:"name"`
	PricePerNight string   `yaml:"price_per_night" json:"price_per_night"`
	Rating        float64  `yaml:"rating" json:"rating"`
	Amenities     []string `yaml:"amenities" json:"amenities"`
	BookingURL    string   `yaml:"booking_url,omitempty" json:"booking_url,omitempty"`
}

// HotelGroup holds the hotels for one (location, budget) combination.
type HotelGroup struct {
	Location string  `yaml:"location"`
	Budget   string  `yaml:"budget"`
	Entries  []Hotel `yaml:"entries"`
}

// TipsData holds insider tips grouped by category.
type TipsData struct {
	Updated    string              `yaml:"updated"`
	Source     string              `yaml:"source"`
	Categories map[string][]string `yaml:"categories"`
}

// Dataset is the static reference data the capability tools answer
// from. It is immutable after loading and safe for concurrent reads.
type Dataset struct {
	Attractions []AttractionGroup `yaml:"attractions"`
	Safety      SafetyData        `yaml:"safety"`
	Hotels      []HotelGroup      `yaml:"hotels"`
	Tips        TipsData          `yaml:"tips"`
}

// DefaultDataset returns the embedded Lagos reference data.
func DefaultDataset() *Dataset {
	ds, err := ParseDataset(lagosYAML)
	if err != nil {
		// The embedded file is validated by tests; a parse failure here
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded dataset invalid: %v", err))
	}
	return ds
}

// LoadDataset reads a dataset from a YAML file on disk.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return ReadDataset(f)
}

// ReadDataset reads a dataset from YAML content on r.
func ReadDataset(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return ParseDataset(raw)
}

// ParseDataset decodes YAML bytes into a Dataset.
func ParseDataset(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return &ds, nil
}

// FindAttractions returns the attractions matching location, category
// and budget. A miss returns an empty slice, never an error.
func (d *Dataset) FindAttractions(location, category, budget string) []Attraction {
	for _, group := range d.Attractions {
		if strings.EqualFold(group.Location, location) &&
			strings.EqualFold(group.Category, category) &&
			strings.EqualFold(group.Budget, budget) {
			return group.Entries
		}
	}
	return nil
}

// SafetyFor returns the safety zone for location, falling back to the
// dataset default for unknown areas.
func (d *Dataset) SafetyFor(location string) (SafetyZone, bool) {
	for name, zone := range d.Safety.Zones {
		if strings.EqualFold(name, location) {
			return zone, true
		}
	}
	return d.Safety.Default, false
}

// FindHotels returns the hotels matching location and budget. A miss
// returns an empty slice, never an error.
func (d *Dataset) FindHotels(location, budget string) []Hotel {
	for _, group := range d.Hotels {
		if strings.EqualFold(group.Location, location) && strings.EqualFold(group.Budget, budget) {
			return group.Entries
		}
	}
	return nil
}

// TipsFor returns the tips for a category. Unknown categories return an
// empty slice.
func (d *Dataset) TipsFor(category string) []string {
	for name, tips := range d.Tips.Categories {
		if strings.EqualFold(name, category) {
			return tips
		}
	}
	return nil
}
