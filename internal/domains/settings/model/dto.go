package model

// UpdateSettingsRequest - PUT /admin/settings
// nil fields keep the stored value
type UpdateSettingsRequest struct {
	WhatsappNumber *string   `json:"whatsapp_number"`
	AuthorName     *string   `json:"author_name"`
	AuthorBio      *string   `json:"author_bio"`
	AuthorImage    *string   `json:"author_image"`
	Categories     *[]string `json:"categories"`
	HeroBookID     *string   `json:"hero_book_id"`
}

func (r UpdateSettingsRequest) Apply(s *Settings) {
	if r.WhatsappNumber != nil {
		s.WhatsappNumber = *r.WhatsappNumber
	}
	if r.AuthorName != nil {
		s.AuthorName = *r.AuthorName
	}
	if r.AuthorBio != nil {
		s.AuthorBio = *r.AuthorBio
	}
	if r.AuthorImage != nil {
		s.AuthorImage = *r.AuthorImage
	}
	if r.Categories != nil {
		s.Categories = append([]string(nil), (*r.Categories)...)
	}
	if r.HeroBookID != nil {
		s.HeroBookID = *r.HeroBookID
	}
}

// CategoryRequest - POST /admin/settings/categories
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
