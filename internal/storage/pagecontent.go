package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marianaviana/atelie-catalog/internal/models"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

func (s *GormStore) GetPageContent(ctx context.Context, pageKey string) (*models.PageContent, error) {
	var content models.PageContent
	if err := s.db.WithContext(ctx).Where("page_key = ?", pageKey).First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// UpsertPageContent is a single INSERT ... ON CONFLICT (page_key) DO UPDATE,
// so concurrent upserts for the same key serialize inside the store instead
// of racing a read-then-write. Only the fields present in the request are
// assigned on conflict; updated_at is always refreshed.
func (s *GormStore) UpsertPageContent(ctx context.Context, req transport.UpsertPageContentRequest) (*models.PageContent, error) {
	row := models.PageContent{PageKey: req.PageKey}
	assignments := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != nil {
		row.Title = *req.Title
		assignments["title"] = *req.Title
	}
	if req.Content != nil {
		row.Content = *req.Content
		assignments["content"] = *req.Content
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_key"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller always sees the stored row, whichever branch the
	// upsert took.
	return s.GetPageContent(ctx, req.PageKey)
}
