package models

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrDuplicateBrand is returned when a catalogue names the same brand twice
var ErrDuplicateBrand = errors.New("duplicate brand")

// Variant is the leaf spec record for one bike configuration.
// Known spec fields are typed; anything else lands in Extra.
type Variant struct {
	Name         string
	Motor        string // e.g. "6000W peak / 3000W nominal"
	Battery      string
	TopSpeed     string
	Weight       string
	Range        string
	Price        string // e.g. "$4,500-5,200"
	Availability string
	Suspension   string
	Brakes       string
	Tires        string
	Notes        string
	Extra        map[string]string
}

// Model groups the variants sold under one model name
type Model struct {
	Name     string    `yaml:"model"`
	Variants []Variant `yaml:"variants"`
}

// Brand is one catalogue entry
type Brand struct {
	Name         string  `yaml:"-"`
	Country      string  `yaml:"country"`
	Website      string  `yaml:"website,omitempty"`
	Founded      *int    `yaml:"founded,omitempty"`
	Headquarters string  `yaml:"headquarters,omitempty"`
	Models       []Model `yaml:"models"`
}

// VariantCount returns the number of variants across all of the brand's models
func (b *Brand) VariantCount() int {
	n := 0
	for _, m := range b.Models {
		n += len(m.Variants)
	}
	return n
}

// Catalogue is the brand -> model -> variant dataset. Brand order is the
// order the brands were added in. A Catalogue is not modified after construction.
type Catalogue struct {
	brands []Brand
	index  map[string]int
}

// NewCatalogue builds a catalogue from brands in the given order
func NewCatalogue(brands ...Brand) (*Catalogue, error) {
	c := &Catalogue{index: make(map[string]int, len(brands))}
	for _, b := range brands {
		if err := c.add(b); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalogue) add(b Brand) error {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if _, exists := c.index[b.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateBrand, b.Name)
	}
	c.index[b.Name] = len(c.brands)
	c.brands = append(c.brands, b)
	return nil
}

// Brands returns the brands in catalogue order
func (c *Catalogue) Brands() []Brand {
	if c == nil {
		return nil
	}
	return c.brands
}

// Brand looks up a brand by exact name
func (c *Catalogue) Brand(name string) (*Brand, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return &c.brands[i], true
}

// Len returns the number of brands
func (c *Catalogue) Len() int {
	if c == nil {
		return 0
	}
	return len(c.brands)
}

// UnmarshalYAML decodes a brand-name keyed mapping, keeping document order.
func (c *Catalogue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: catalogue must be a mapping of brand names", node.Line)
	}
	*c = Catalogue{index: make(map[string]int, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var b Brand
		if err := node.Content[i+1].Decode(&b); err != nil {
			return fmt.Errorf("brand %q: %w", node.Content[i].Value, err)
		}
		b.Name = node.Content[i].Value
		if err := c.add(b); err != nil {
			return fmt.Errorf("line %d: %w", node.Content[i].Line, err)
		}
	}
	return nil
}

// UnmarshalYAML maps known spec keys onto fields and collects the rest in Extra
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: variant must be a mapping", node.Line)
	}
	*v = Variant{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: variant field %q must be a scalar", val.Line, key)
		}
		if val.Tag == "!!null" {
			continue
		}
		if f := v.field(key); f != nil {
			*f = val.Value
			continue
		}
		if v.Extra == nil {
			v.Extra = make(map[string]string)
		}
		v.Extra[key] = val.Value
	}
	return nil
}

func (v *Variant) field(key string) *string {
	switch key {
	case "name":
		return &v.Name
	case "motor":
		return &v.Motor
	case "battery":
		return &v.Battery
	case "topSpeed":
		return &v.TopSpeed
	case "weight":
		return &v.Weight
	case "range":
		return &v.Range
	case "price":
		return &v.Price
	case "availability":
		return &v.Availability
	case "suspension":
		return &v.Suspension
	case "brakes":
		return &v.Brakes
	case "tires":
		return &v.Tires
	case "notes":
		return &v.Notes
	}
	return nil
}

// FlatVariant is one (brand, model, variant) tuple of a flattened catalogue
type FlatVariant struct {
	Brand   string
	Model   string
	Variant string
	Specs   Variant
}
