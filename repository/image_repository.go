package repository

import (
	"context"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(ctx context.Context, image *models.Image) error
	FindByID(ctx context.Context, id string) (*models.Image, error)
	List(ctx context.Context) ([]models.Image, error)
	Delete(ctx context.Context, id string) error
}

type imageRepository struct {
	db *gorm.DB
}

func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *models.Image) error {
	return translate(r.db.WithContext(ctx).Create(image).Error)
}

func (r *imageRepository) FindByID(ctx context.Context, id string) (*models.Image, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, "id = ?", uid).Error; err != nil {
		return nil, translate(err)
	}
	return &image, nil
}

func (r *imageRepository) List(ctx context.Context) ([]models.Image, error) {
	var images []models.Image
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, translate(err)
	}
	return images, nil
}

func (r *imageRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).Delete(&models.Image{}, "id = ?", uid)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
