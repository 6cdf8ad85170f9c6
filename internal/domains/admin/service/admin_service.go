package service

import (
	"context"
	"fmt"
	"time"

	"lumina-storefront/internal/domains/admin/model"
	orderModel "lumina-storefront/internal/domains/order/model"
	"lumina-storefront/internal/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type TokenIssuer interface {
	GenerateAdminToken(userID, email string) (string, time.Time, error)
}

type Counter interface {
	Count(ctx context.Context) (int, error)
}

type OrderSummarizer interface {
	Summary(ctx context.Context) (*orderModel.Summary, error)
}

type ImageProcessor interface {
	Process(data []byte) ([]byte, error)
}

// ImageStore uploads processed images. Nil means images are embedded.
type ImageStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type ServiceInterface interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Stats(ctx context.Context) (*model.Stats, error)
	// UploadImage processes a cover or author image; folder is the object prefix
	UploadImage(ctx context.Context, folder string, data []byte) (*model.UploadedImage, error)
}

type AdminService struct {
	auth    Authenticator
	tokens  TokenIssuer
	books   Counter
	reviews Counter
	orders  OrderSummarizer
	images  ImageProcessor
	store   ImageStore
}

func NewAdminService(
	auth Authenticator,
	tokens TokenIssuer,
	books Counter,
	reviews Counter,
	orders OrderSummarizer,
	images ImageProcessor,
	store ImageStore,
) ServiceInterface {
	return &AdminService{
		auth:    auth,
		tokens:  tokens,
		books:   books,
		reviews: reviews,
		orders:  orders,
		images:  images,
		store:   store,
	}
}

func (s *AdminService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	identity, err := s.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("Admin login failed")
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateAdminToken(identity.UserID, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	log.Info().Str("user_id", identity.UserID).Msg("Admin logged in")
	return &model.LoginResponse{Token: token, ExpiresAt: expiresAt, Admin: *identity}, nil
}

func (s *AdminService) Stats(ctx context.Context) (*model.Stats, error) {
	var (
		stats   model.Stats
		summary *orderModel.Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Books, err = s.books.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Reviews, err = s.reviews.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary, err = s.orders.Summary(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.Orders = summary.Count
	stats.Pending = summary.Pending
	stats.Revenue = summary.Revenue
	return &stats, nil
}

func (s *AdminService) UploadImage(ctx context.Context, folder string, data []byte) (*model.UploadedImage, error) {
	if len(data) == 0 {
		return nil, model.ErrNoImage
	}

	processed, err := s.images.Process(data)
	if err != nil {
		return nil, err
	}

	if s.store == nil {
		return &model.UploadedImage{
			URL:      storage.DataURI("image/jpeg", processed),
			Embedded: true,
			Size:     len(processed),
		}, nil
	}

	key := fmt.Sprintf("%s/%s.jpg", folder, uuid.NewString())
	url, err := s.store.Upload(ctx, key, processed, "image/jpeg")
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	log.Info().Str("key", key).Int("size", len(processed)).Msg("Image uploaded")
	return &model.UploadedImage{URL: url, Size: len(processed)}, nil
}
