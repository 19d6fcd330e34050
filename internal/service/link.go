package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"linkhub/internal/config"
	"linkhub/internal/model"
	"linkhub/pkg/util"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrValidation is returned when a request is missing fields or carries bad values
	ErrValidation = errors.New("validation failed")
	// ErrLinkNotFound is returned when the link does not exist
	ErrLinkNotFound = errors.New("link not found")
	// ErrStorage is returned when the underlying store fails
	ErrStorage = errors.New("storage failure")
)

func storageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}

// LinkService handles link store operations
type LinkService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	settings  Settings
	now       func() time.Time
	newID     func() string
}

// NewLinkService creates a new Link Service. redisRepo may be nil, in which
// case the link list is always read from MySQL.
func NewLinkService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface, settings Settings) *LinkService {
	return &LinkService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		settings:  settings,
		now:       time.Now,
		newID:     util.GenerateUUID,
	}
}

// List returns every link, oldest first
func (s *LinkService) List(ctx context.Context) ([]model.Link, error) {
	if s.redisRepo != nil {
		links, err := s.redisRepo.GetLinks(ctx)
		if err == nil {
			return links, nil
		}
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("Failed to read cached links")
		}
	}

	links, err := s.mysqlRepo.ListLinks(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list links")
		return nil, storageError("list links", err)
	}
	if links == nil {
		links = []model.Link{}
	}

	if s.redisRepo != nil {
		if err := s.redisRepo.SaveLinks(ctx, links, s.settings.LinksCacheTTL); err != nil {
			log.Warn().Err(err).Msg("Failed to cache links")
		}
	}

	return links, nil
}

// Create validates and stores a new link with a zero click count
func (s *LinkService) Create(ctx context.Context, req *model.CreateLinkRequest) (*model.Link, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrValidation)
	}

	title := strings.TrimSpace(req.Title)
	url := strings.TrimSpace(req.URL)
	if title == "" || url == "" || req.Type == "" {
		return nil, fmt.Errorf("%w: title, url and type are required", ErrValidation)
	}
	linkType := model.LinkType(req.Type)
	if !linkType.Valid() {
		return nil, fmt.Errorf("%w: unknown link type %q", ErrValidation, req.Type)
	}

	gradient := req.Gradient
	if gradient == "" {
		gradient = s.settings.DefaultGradient
	}

	now := s.now()
	link := &model.Link{
		ID:         s.newID(),
		Title:      title,
		URL:        url,
		Type:       linkType,
		ClickCount: 0,
		Gradient:   gradient,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.mysqlRepo.CreateLink(ctx, link); err != nil {
		log.Error().Err(err).Str("title", title).Msg("Failed to create link")
		return nil, storageError("create link", err)
	}

	s.invalidateCache(ctx)
	log.Info().Str("link_id", link.ID).Str("title", link.Title).Msg("Link created")

	return link, nil
}

// Update applies the supplied fields of req to an existing link
func (s *LinkService) Update(ctx context.Context, id string, req *model.UpdateLinkRequest) (*model.Link, error) {
	if req == nil {
		req = &model.UpdateLinkRequest{}
	}

	fields := make(map[string]interface{})
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		fields["title"] = title
	}
	if req.URL != nil {
		url := strings.TrimSpace(*req.URL)
		if url == "" {
			return nil, fmt.Errorf("%w: url must not be empty", ErrValidation)
		}
		fields["url"] = url
	}
	if req.Type != nil {
		linkType := model.LinkType(*req.Type)
		if !linkType.Valid() {
			return nil, fmt.Errorf("%w: unknown link type %q", ErrValidation, *req.Type)
		}
		fields["type"] = linkType
	}
	if req.Gradient != nil {
		if *req.Gradient == "" {
			return nil, fmt.Errorf("%w: gradient must not be empty", ErrValidation)
		}
		fields["gradient"] = *req.Gradient
	}

	link, err := s.getLink(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return link, nil
	}

	now := s.now()
	fields["updated_at"] = now
	if err := s.mysqlRepo.UpdateLink(ctx, link, fields); err != nil {
		log.Error().Err(err).Str("link_id", id).Msg("Failed to update link")
		return nil, storageError("update link", err)
	}

	if v, ok := fields["title"].(string); ok {
		link.Title = v
	}
	if v, ok := fields["url"].(string); ok {
		link.URL = v
	}
	if v, ok := fields["type"].(model.LinkType); ok {
		link.Type = v
	}
	if v, ok := fields["gradient"].(string); ok {
		link.Gradient = v
	}
	link.UpdatedAt = now

	s.invalidateCache(ctx)

	return link, nil
}

// Delete removes a link and then, best effort, its click events
func (s *LinkService) Delete(ctx context.Context, id string) error {
	affected, err := s.mysqlRepo.DeleteLink(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("link_id", id).Msg("Failed to delete link")
		return storageError("delete link", err)
	}
	if affected == 0 {
		return ErrLinkNotFound
	}

	s.invalidateCache(ctx)

	removed, err := s.mysqlRepo.DeleteClickEvents(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("link_id", id).Msg("Failed to delete click events of removed link")
		return nil
	}

	log.Info().Str("link_id", id).Int64("click_events", removed).Msg("Link deleted")
	return nil
}

// SeedDefaults inserts seeds when the store holds no links and reports how
// many were inserted. Seeds with an unknown type are skipped.
func (s *LinkService) SeedDefaults(ctx context.Context, seeds []config.SeedLink) (int, error) {
	if len(seeds) == 0 {
		return 0, nil
	}

	count, err := s.mysqlRepo.CountLinks(ctx)
	if err != nil {
		return 0, storageError("count links", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := s.now()
	links := make([]model.Link, 0, len(seeds))
	for _, seed := range seeds {
		linkType := model.LinkType(seed.Type)
		if seed.Title == "" || seed.URL == "" || !linkType.Valid() {
			log.Warn().Str("title", seed.Title).Str("type", seed.Type).Msg("Skipping invalid seed link")
			continue
		}

		gradient := seed.Gradient
		if gradient == "" {
			gradient = s.settings.DefaultGradient
		}

		// one second apart so the configured order survives created_at ordering
		createdAt := now.Add(time.Duration(len(links)) * time.Second)
		links = append(links, model.Link{
			ID:        s.newID(),
			Title:     seed.Title,
			URL:       seed.URL,
			Type:      linkType,
			Gradient:  gradient,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		})
	}

	if err := s.mysqlRepo.CreateLinks(ctx, links); err != nil {
		return 0, storageError("seed links", err)
	}
	s.invalidateCache(ctx)

	return len(links), nil
}

func (s *LinkService) getLink(ctx context.Context, id string) (*model.Link, error) {
	link, err := s.mysqlRepo.GetLink(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		log.Error().Err(err).Str("link_id", id).Msg("Failed to load link")
		return nil, storageError("get link", err)
	}
	return link, nil
}

func (s *LinkService) invalidateCache(ctx context.Context) {
	if s.redisRepo == nil {
		return
	}
	if err := s.redisRepo.InvalidateLinks(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to invalidate links cache")
	}
}
