// Package data holds the embedded bike catalogue and brand metadata datasets.
package data

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bikenode/models"
)

// ErrEmptyDataset is returned when a dataset source decodes to nothing
var ErrEmptyDataset = errors.New("empty dataset")

//go:embed ebikes.yaml
var ebikesYAML []byte

//go:embed brands.json
var brandsJSON []byte

// DecodeCatalogue reads a brand-keyed YAML catalogue
func DecodeCatalogue(r io.Reader) (*models.Catalogue, error) {
	var cat models.Catalogue
	if err := yaml.NewDecoder(r).Decode(&cat); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	if cat.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	return &cat, nil
}

// LoadCatalogueFile reads a YAML catalogue from disk
func LoadCatalogueFile(path string) (*models.Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalogue: %w", err)
	}
	defer f.Close()
	return DecodeCatalogue(f)
}

// Catalogue returns the embedded e-bike catalogue
func Catalogue() (*models.Catalogue, error) {
	return DecodeCatalogue(bytes.NewReader(ebikesYAML))
}

// DecodeBrandMetadata reads a JSON array of brand metadata records
func DecodeBrandMetadata(r io.Reader) ([]models.BrandMetadata, error) {
	var brands []models.BrandMetadata
	if err := json.NewDecoder(r).Decode(&brands); err != nil {
		return nil, fmt.Errorf("decode brand metadata: %w", err)
	}
	if len(brands) == 0 {
		return nil, ErrEmptyDataset
	}
	return brands, nil
}

// BrandMetadata returns the embedded brand metadata dataset
func BrandMetadata() ([]models.BrandMetadata, error) {
	return DecodeBrandMetadata(bytes.NewReader(brandsJSON))
}
