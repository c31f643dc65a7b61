package storage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marianaviana/atelie-catalog/internal/models"
	"github.com/marianaviana/atelie-catalog/internal/transport"
)

// GetCategories returns only active categories, name ascending. This is the
// public listing; the slug lookup below intentionally has no active filter so
// the admin can still reach hidden categories.
func (s *GormStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *GormStore) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) CreateCategory(ctx context.Context, req transport.CreateCategoryRequest) (*models.Category, error) {
	category := models.Category{
		Name:   req.Name,
		Slug:   req.Slug,
		Active: true,
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Active != nil {
		category.Active = *req.Active
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *GormStore) UpdateCategory(ctx context.Context, id uint, req transport.PatchCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory fails with the store's foreign-key error while products
// still reference the category (ON DELETE RESTRICT).
func (s *GormStore) DeleteCategory(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Category{}, id).Error
}
