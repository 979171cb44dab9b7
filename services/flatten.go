package services

import "bikenode/models"

// Flatten lists every variant of the catalogue as a (brand, model, variant) tuple,
// in brand -> model -> variant order
func Flatten(cat *models.Catalogue) []models.FlatVariant {
	out := make([]models.FlatVariant, 0)
	for _, b := range cat.Brands() {
		for _, m := range b.Models {
			for _, v := range m.Variants {
				out = append(out, models.FlatVariant{
					Brand:   b.Name,
					Model:   m.Name,
					Variant: v.Name,
					Specs:   v,
				})
			}
		}
	}
	return out
}
