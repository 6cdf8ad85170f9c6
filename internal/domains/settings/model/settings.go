package model

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Settings is the storefront singleton
type Settings struct {
	WhatsappNumber string   `json:"whatsapp_number"`
	AuthorName     string   `json:"author_name"`
	AuthorBio      string   `json:"author_bio"`
	AuthorImage    string   `json:"author_image"`
	Categories     []string `json:"categories"`
	HeroBookID     string   `json:"hero_book_id,omitempty"`
}

// Defaults is used while no settings row exists. It is never written
// until an explicit save.
func Defaults() *Settings {
	return &Settings{
		AuthorName:  "Lumina",
		AuthorBio:   "Escritora independiente. Pronto más sobre su obra.",
		AuthorImage: "https://picsum.photos/seed/author/400/400",
		Categories:  []string{"General"},
	}
}

// Clone returns a deep copy
func (s *Settings) Clone() *Settings {
	c := *s
	c.Categories = append([]string(nil), s.Categories...)
	return &c
}

// HasCategory is an exact, case-sensitive match
func (s *Settings) HasCategory(name string) bool {
	for _, c := range s.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// AddCategory appends a trimmed name
func (s *Settings) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCategoryBlank
	}
	if s.HasCategory(name) {
		return ErrCategoryExists
	}
	s.Categories = append(s.Categories, name)
	return nil
}

// RemoveCategory drops name; books using it are left untouched
func (s *Settings) RemoveCategory(name string) error {
	for i, c := range s.Categories {
		if c == name {
			s.Categories = append(s.Categories[:i:i], s.Categories[i+1:]...)
			return nil
		}
	}
	return ErrCategoryNotFound
}

var phonePattern = regexp.MustCompile(`^[0-9+()\s-]*$`)

func (s *Settings) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.WhatsappNumber, validation.Match(phonePattern).Error("must contain digits only")),
		validation.Field(&s.AuthorName, validation.Length(0, 120)),
		validation.Field(&s.Categories, validation.By(uniqueNonBlank)),
	)
}

func uniqueNonBlank(value interface{}) error {
	names, _ := value.([]string)
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return ErrCategoryBlank
		}
		if _, dup := seen[n]; dup {
			return ErrCategoryExists
		}
		seen[n] = struct{}{}
	}
	return nil
}

// HandoffNumber strips everything but digits, as expected by wa.me links
func (s *Settings) HandoffNumber() string {
	var b strings.Builder
	for _, r := range s.WhatsappNumber {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var (
	ErrCategoryBlank    = errors.New("category name cannot be blank")
	ErrCategoryExists   = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrHeroBookNotFound = errors.New("hero book does not exist")
)
