package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateLayout is the wire format for event dates. Day resolution only; no
// time or timezone component.
const DateLayout = "2006-01-02"

// Event is one dated temple occasion. Immutable after load.
type Event struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Date        string `yaml:"date" json:"date"` // YYYY-MM-DD
	Description string `yaml:"description" json:"description"`

	// When is the parsed Date, populated during validation.
	When time.Time `yaml:"-" json:"-"`
}

// PoojaService is one bookable ritual offering.
type PoojaService struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Duration    string `yaml:"duration" json:"duration"`
	Price       int    `yaml:"price" json:"price"`
	Image       string `yaml:"image" json:"image"`
}

// Slide is one hero carousel entry on the home page.
type Slide struct {
	ID       int    `yaml:"id" json:"id"`
	Image    string `yaml:"image" json:"image"`
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
}

// GalleryImage is one photo gallery entry.
type GalleryImage struct {
	ID      string `yaml:"id" json:"id"`
	Image   string `yaml:"image" json:"image"`
	Caption string `yaml:"caption" json:"caption"`
}

// Catalog is the static site content: festivals, services, slides and
// gallery. Loaded once at startup and treated as read-only afterwards.
type Catalog struct {
	Festivals []Event        `yaml:"festivals" json:"festivals"`
	Services  []PoojaService `yaml:"services" json:"services"`
	Slides    []Slide        `yaml:"slides" json:"slides"`
	Gallery   []GalleryImage `yaml:"gallery" json:"gallery"`
}

// Load reads the catalog from the given YAML path. An empty path or a
// missing file yields the built-in default catalog; any other read or
// parse failure is returned to the caller. Malformed event dates and
// duplicate event IDs are load-time errors, the calendar engine assumes
// every event it sees carries a valid date.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog yaml: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate parses every event date and enforces ID uniqueness.
func (c *Catalog) validate() error {
	seen := make(map[string]struct{}, len(c.Festivals))
	for i := range c.Festivals {
		ev := &c.Festivals[i]
		if ev.ID == "" {
			return fmt.Errorf("festival %q has empty id", ev.Title)
		}
		if _, dup := seen[ev.ID]; dup {
			return fmt.Errorf("duplicate festival id %q", ev.ID)
		}
		seen[ev.ID] = struct{}{}

		when, err := time.Parse(DateLayout, ev.Date)
		if err != nil {
			return fmt.Errorf("festival %q has invalid date %q: %w", ev.ID, ev.Date, err)
		}
		ev.When = when
	}
	return nil
}

// EventByID returns the festival with the given id, or nil.
func (c *Catalog) EventByID(id string) *Event {
	for i := range c.Festivals {
		if c.Festivals[i].ID == id {
			return &c.Festivals[i]
		}
	}
	return nil
}
