package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-admin/internal/forms"
	"github.com/spec-kit/helpdesk-admin/internal/repository"
)

const directoryCacheKey = "directory:departments"

// DirectoryService serves the department listing the agent form pulls its
// options from. Reads go through a Redis cache; any cache failure degrades
// to a direct database read.
type DirectoryService struct {
	departments repository.DepartmentRepository
	cache       *redis.Client
	ttl         time.Duration
	logger      *zap.Logger
}

// NewDirectoryService builds the service. cache may be nil to disable
// caching entirely.
func NewDirectoryService(departments repository.DepartmentRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{departments: departments, cache: cache, ttl: ttl, logger: logger}
}

// List returns the active departments as {id, name} categories. Implements
// forms.CategoryLister.
func (s *DirectoryService) List(ctx context.Context) ([]forms.Category, error) {
	if cached, ok := s.fromCache(ctx); ok {
		return cached, nil
	}

	depts, err := s.departments.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]forms.Category, 0, len(depts))
	for _, dept := range depts {
		categories = append(categories, forms.Category{ID: dept.ID, Name: dept.Name})
	}

	s.toCache(ctx, categories)
	return categories, nil
}

// Invalidate drops the cached listing, forcing the next read through.
func (s *DirectoryService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, directoryCacheKey).Err(); err != nil {
		s.logger.Warn("directory cache invalidate failed", zap.Error(err))
	}
}

func (s *DirectoryService) fromCache(ctx context.Context) ([]forms.Category, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, directoryCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("directory cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var categories []forms.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		s.logger.Warn("directory cache decode failed", zap.Error(err))
		return nil, false
	}
	return categories, true
}

func (s *DirectoryService) toCache(ctx context.Context, categories []forms.Category) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, directoryCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Warn("directory cache write failed", zap.Error(err))
	}
}
