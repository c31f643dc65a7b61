package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marianaviana/atelie-catalog/internal/models"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

// GetFaqItems returns active items in display order.
func (s *GormStore) GetFaqItems(ctx context.Context) ([]models.FaqItem, error) {
	var items []models.FaqItem
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order(`"order" ASC`).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) CreateFaqItem(ctx context.Context, req transport.CreateFaqItemRequest) (*models.FaqItem, error) {
	item := models.FaqItem{
		Question: req.Question,
		Answer:   req.Answer,
		Active:   true,
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) UpdateFaqItem(ctx context.Context, id uint, req transport.PatchFaqItemRequest) (*models.FaqItem, error) {
	var item models.FaqItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if req.Question != nil {
		item.Question = *req.Question
	}
	if req.Answer != nil {
		item.Answer = *req.Answer
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *GormStore) DeleteFaqItem(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.FaqItem{}, id).Error
}
