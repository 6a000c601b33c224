package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smallbizniz/support-portal/internal/domain"
	"github.com/smallbizniz/support-portal/internal/persistence"
	"github.com/smallbizniz/support-portal/internal/repository"
	apperrors "github.com/smallbizniz/support-portal/pkg/util"
)

const settingsCacheTTL = 5 * time.Minute

// SettingsService serves the singleton configuration documents with safe
// defaults and a Redis read-through cache. Cache failures fall back to the
// store; store misses fall back to defaults.
type SettingsService struct {
	settings repository.SettingsRepository
	cache    *persistence.Redis
	logger   *zap.Logger
}

// NewSettingsService constructs the service. cache may be nil.
func NewSettingsService(settings repository.SettingsRepository, cache *persistence.Redis, logger *zap.Logger) *SettingsService {
	return &SettingsService{settings: settings, cache: cache, logger: logger}
}

// LandingContent returns the marketing-page document or its default.
func (s *SettingsService) LandingContent(ctx context.Context) (domain.LandingContent, error) {
	content := domain.DefaultLandingContent()
	err := s.load(ctx, repository.SettingsLanding, &content)
	return content, err
}

// UpdateLandingContent merges the document and invalidates the cache.
func (s *SettingsService) UpdateLandingContent(ctx context.Context, content domain.LandingContent) error {
	return s.store(ctx, repository.SettingsLanding, content)
}

// SEOConfig returns the search-metadata document or its default.
func (s *SettingsService) SEOConfig(ctx context.Context) (domain.SEOConfig, error) {
	cfg := domain.DefaultSEOConfig()
	err := s.load(ctx, repository.SettingsSEO, &cfg)
	return cfg, err
}

// UpdateSEOConfig merges the document and invalidates the cache.
func (s *SettingsService) UpdateSEOConfig(ctx context.Context, cfg domain.SEOConfig) error {
	return s.store(ctx, repository.SettingsSEO, cfg)
}

// CalendarConfig returns the business-hours document or its default.
func (s *SettingsService) CalendarConfig(ctx context.Context) (domain.CalendarConfig, error) {
	cfg := domain.DefaultCalendarConfig()
	err := s.load(ctx, repository.SettingsCalendar, &cfg)
	return cfg, err
}

// UpdateCalendarConfig merges the document and invalidates the cache.
func (s *SettingsService) UpdateCalendarConfig(ctx context.Context, cfg domain.CalendarConfig) error {
	return s.store(ctx, repository.SettingsCalendar, cfg)
}

// IsBlackoutDate reports whether the date is blacked out.
func (s *SettingsService) IsBlackoutDate(ctx context.Context, date time.Time) (bool, error) {
	cfg, err := s.CalendarConfig(ctx)
	if err != nil {
		return false, err
	}
	dateStr := date.Format("2006-01-02")
	for _, blackout := range cfg.BlackoutDates {
		if blackout == dateStr {
			return true, nil
		}
	}
	return false, nil
}

// ServiceHours resolves opening hours for a date. Special availability
// overrides the weekday schedule.
func (s *SettingsService) ServiceHours(ctx context.Context, date time.Time) (*domain.DayHours, error) {
	cfg, err := s.CalendarConfig(ctx)
	if err != nil {
		return nil, err
	}

	dateStr := date.Format("2006-01-02")
	for _, special := range cfg.SpecialAvailability {
		if special.Date == dateStr {
			return &domain.DayHours{Open: special.Open, Close: special.Close, Closed: special.Closed}, nil
		}
	}

	weekday := strings.ToLower(date.Weekday().String())
	if hours, ok := cfg.HoursOfOperation[weekday]; ok {
		return &hours, nil
	}
	return nil, nil
}

func (s *SettingsService) load(ctx context.Context, key string, dest any) error {
	if data, ok := s.cacheGet(ctx, key); ok {
		if err := json.Unmarshal(data, dest); err == nil {
			return nil
		}
	}

	err := s.settings.Get(ctx, key, dest)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil // defaults stand
	}
	if err != nil {
		return apperrors.MapError(err)
	}

	s.cacheSet(ctx, key, dest)
	return nil
}

func (s *SettingsService) store(ctx context.Context, key string, doc any) error {
	if err := s.settings.Merge(ctx, key, doc); err != nil {
		return apperrors.MapError(err)
	}
	s.cacheDel(ctx, key)
	return nil
}

func (s *SettingsService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil || s.cache.Client == nil {
		return nil, false
	}
	data, err := s.cache.Client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Debug("settings cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

func (s *SettingsService) cacheSet(ctx context.Context, key string, doc any) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, cacheKey(key), data, settingsCacheTTL).Err(); err != nil {
		s.logger.Debug("settings cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *SettingsService) cacheDel(ctx context.Context, key string) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, cacheKey(key)).Err(); err != nil {
		s.logger.Debug("settings cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}

func cacheKey(key string) string {
	return "settings:" + key
}
