package service

import (
	"context"
	"errors"
	"testing"

	bookModel "lumina-storefront/internal/domains/book/model"
	"lumina-storefront/internal/domains/settings/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	stored  *model.Settings
	saves   int
	saveErr error
}

func (f *fakeRepo) Get(ctx context.Context) (*model.Settings, error) {
	if f.stored == nil {
		return nil, nil
	}
	return f.stored.Clone(), nil
}

func (f *fakeRepo) Save(ctx context.Context, s *model.Settings) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.stored = s.Clone()
	return nil
}

type fakeBooks map[string]bookModel.Book

func (f fakeBooks) GetByID(ctx context.Context, id string) (*bookModel.Book, error) {
	b, ok := f[id]
	if !ok {
		return nil, bookModel.ErrBookNotFound
	}
	return &b, nil
}

func TestGetSettings_DefaultsWithoutWrite(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewSettingsService(repo, fakeBooks{})

	s, err := svc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, s.AuthorName)
	assert.NotEmpty(t, s.AuthorBio)
	assert.NotEmpty(t, s.AuthorImage)
	assert.Equal(t, []string{"General"}, s.Categories)
	assert.Empty(t, s.WhatsappNumber)
	assert.Zero(t, repo.saves)
}

func TestAddCategory_PersistsOncePerAdd(t *testing.T) {
	repo := &fakeRepo{stored: &model.Settings{Categories: []string{"Ficción"}}}
	svc := NewSettingsService(repo, fakeBooks{})
	ctx := context.Background()

	s, err := svc.AddCategory(ctx, "Poesía")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ficción", "Poesía"}, s.Categories)
	assert.Equal(t, 1, repo.saves)

	_, err = svc.AddCategory(ctx, "Histórica")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.saves)

	_, err = svc.AddCategory(ctx, "Poesía")
	assert.ErrorIs(t, err, model.ErrCategoryExists)
	_, err = svc.AddCategory(ctx, " ")
	assert.ErrorIs(t, err, model.ErrCategoryBlank)
	assert.Equal(t, 2, repo.saves)
}

func TestRemoveCategory(t *testing.T) {
	repo := &fakeRepo{stored: &model.Settings{Categories: []string{"Ficción", "Poesía"}}}
	svc := NewSettingsService(repo, fakeBooks{})

	s, err := svc.RemoveCategory(context.Background(), "Ficción")
	require.NoError(t, err)
	assert.Equal(t, []string{"Poesía"}, s.Categories)
	assert.Equal(t, []string{"Poesía"}, repo.stored.Categories)

	_, err = svc.RemoveCategory(context.Background(), "Ficción")
	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
}

func TestSaveSettings(t *testing.T) {
	heroID := "5d1c5f9e-2b1f-4f7e-8d55-2d1b0b7a0c01"
	repo := &fakeRepo{}
	svc := NewSettingsService(repo, fakeBooks{heroID: {ID: heroID}})
	ctx := context.Background()

	number := "541172023171"
	name := "Elena Valente"
	s, err := svc.SaveSettings(ctx, model.UpdateSettingsRequest{
		WhatsappNumber: &number,
		AuthorName:     &name,
		HeroBookID:     &heroID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Elena Valente", s.AuthorName)
	assert.Equal(t, []string{"General"}, s.Categories)
	assert.Equal(t, 1, repo.saves)

	t.Run("unknown hero book", func(t *testing.T) {
		missing := "00000000-0000-0000-0000-000000000000"
		_, err := svc.SaveSettings(ctx, model.UpdateSettingsRequest{HeroBookID: &missing})
		assert.ErrorIs(t, err, model.ErrHeroBookNotFound)
	})

	t.Run("invalid number", func(t *testing.T) {
		bad := "whatsapp me"
		_, err := svc.SaveSettings(ctx, model.UpdateSettingsRequest{WhatsappNumber: &bad})
		var verrs validation.Errors
		assert.True(t, errors.As(err, &verrs))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		repo.saveErr = errors.New("connection refused")
		_, err := svc.SaveSettings(ctx, model.UpdateSettingsRequest{AuthorName: &name})
		assert.EqualError(t, err, "connection refused")
	})
}
