package repository

import (
	"context"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EditImageRepository interface {
	Create(ctx context.Context, editImage *models.EditImage) error
	FindByID(ctx context.Context, id string) (*models.EditImage, error)
	List(ctx context.Context) ([]models.EditImage, error)
	Delete(ctx context.Context, id string) error
}

type editImageRepository struct {
	db *gorm.DB
}

func NewEditImageRepository(db *gorm.DB) EditImageRepository {
	return &editImageRepository{db: db}
}

func (r *editImageRepository) Create(ctx context.Context, editImage *models.EditImage) error {
	return translate(r.db.WithContext(ctx).Create(editImage).Error)
}

func (r *editImageRepository) FindByID(ctx context.Context, id string) (*models.EditImage, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var editImage models.EditImage
	if err := r.db.WithContext(ctx).First(&editImage, "id = ?", uid).Error; err != nil {
		return nil, translate(err)
	}
	return &editImage, nil
}

func (r *editImageRepository) List(ctx context.Context) ([]models.EditImage, error) {
	var editImages []models.EditImage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&editImages).Error; err != nil {
		return nil, translate(err)
	}
	return editImages, nil
}

func (r *editImageRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).Delete(&models.EditImage{}, "id = ?", uid)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
