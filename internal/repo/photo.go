package repo

import (
	"PhotoVault/internal/apperr"
	"PhotoVault/model"
	"context"

	"gorm.io/gorm"
)

// PhotoRepo is the metadata table: a single insert per photo, one full
// scan for elevated callers and one owner-index query for everyone else.
type PhotoRepo interface {
	Create(ctx context.Context, photo *model.Photo) error
	ListAll(ctx context.Context) ([]model.Photo, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Photo, error)
}

type GormPhotoRepo struct {
	db *gorm.DB
}

// NewPhotoRepo builds a PhotoRepo over a gorm connection.
func NewPhotoRepo(db *gorm.DB) *GormPhotoRepo {
	return &GormPhotoRepo{db: db}
}

// Create inserts a photo record. This is the single commit point of an
// upload; there are no updates afterwards.
func (r *GormPhotoRepo) Create(ctx context.Context, photo *model.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return apperr.Wrap(apperr.MetadataWrite, "create photo record failed", err)
	}
	return nil
}

// ListAll returns every photo record, unscoped.
func (r *GormPhotoRepo) ListAll(ctx context.Context) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.WithContext(ctx).Find(&photos).Error; err != nil {
		return nil, apperr.Wrap(apperr.MetadataRead, "scan photo records failed", err)
	}
	return photos, nil
}

// ListByOwner returns the photo records owned by ownerID, through the
// user_id secondary index.
func (r *GormPhotoRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Photo, error) {
	var photos []model.Photo
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&photos).Error; err != nil {
		return nil, apperr.Wrap(apperr.MetadataRead, "query photo records by owner failed", err)
	}
	return photos, nil
}
