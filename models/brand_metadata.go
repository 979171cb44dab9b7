package models

// Founding describes when a brand was established
type Founding struct {
	Year    *int   `json:"year,omitempty"`
	Founder string `json:"founder,omitempty"`
}

// Headquarters is where a brand is based
type Headquarters struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// SocialMedia holds optional platform URLs
type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// BrandMetadata is one record of the brand metadata dataset used by the search tool
type BrandMetadata struct {
	BrandID             string       `json:"brand_id"`
	BrandName           string       `json:"brand_name"`
	Founding            Founding     `json:"founding"`
	Headquarters        Headquarters `json:"headquarters"`
	Industry            string       `json:"industry,omitempty"`
	IndustrySubcategory string       `json:"industry_subcategory,omitempty"`
	Website             string       `json:"website,omitempty"`
	SocialMedia         SocialMedia  `json:"social_media"`
	Description         string       `json:"description,omitempty"`
}

// FoundingYear returns the founding year and whether it is known
func (b *BrandMetadata) FoundingYear() (int, bool) {
	if b.Founding.Year == nil {
		return 0, false
	}
	return *b.Founding.Year, true
}

// HasSocialMedia reports whether any of facebook, instagram or twitter is set
func (b *BrandMetadata) HasSocialMedia() bool {
	s := b.SocialMedia
	return s.Facebook != "" || s.Instagram != "" || s.Twitter != ""
}
