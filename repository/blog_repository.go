package repository

import (
	"context"

	"github.com/Tahir1605/frame-theory/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *models.Blog) error
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	List(ctx context.Context) ([]models.Blog, error)
	Delete(ctx context.Context, id string) error
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(ctx context.Context, blog *models.Blog) error {
	return translate(r.db.WithContext(ctx).Create(blog).Error)
}

func (r *blogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var blog models.Blog
	if err := r.db.WithContext(ctx).First(&blog, "id = ?", uid).Error; err != nil {
		return nil, translate(err)
	}
	return &blog, nil
}

func (r *blogRepository) List(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, translate(err)
	}
	return blogs, nil
}

func (r *blogRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrNotFound
	}
	res := r.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", uid)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
