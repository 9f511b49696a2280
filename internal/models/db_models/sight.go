package db_models

type Sight struct {
	BaseModel
	Name      string
	Category  string
	Latitude  float64
	Longitude float64

	// Descriptions keyed by ISO language code ("en", "de", ...).
	Descriptions map[string]string `gorm:"serializer:json"`

	// Popularity signals from the places provider. Nullable: absence
	// means the provider returned nothing, not zero.
	Rating      *float64
	ReviewCount *int
	OpenNow     *bool

	Favorites []Favorite `gorm:"foreignKey:SightID"`
}

// Description returns the text for lang, falling back to English and
// then to any available language.
func (s *Sight) Description(lang string) string {
	if d, ok := s.Descriptions[lang]; ok {
		return d
	}
	if d, ok := s.Descriptions["en"]; ok {
		return d
	}
	for _, d := range s.Descriptions {
		return d
	}
	return ""
}
