package service

import (
	"PhotoVault/config"
	"PhotoVault/internal/apperr"
	"PhotoVault/internal/dto"
	"PhotoVault/internal/identity"
	"PhotoVault/internal/mq"
	"PhotoVault/internal/repo"
	"PhotoVault/internal/storage"
	"PhotoVault/model"
	"PhotoVault/utils"
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/context"
)

// EventPublisher emits audit events after an upload commits.
type EventPublisher interface {
	PublishPhotoUploaded(ctx context.Context, event mq.PhotoUploadedEvent) error
}

// PhotoService implements the photo list and upload operations. Storage
// handles are injected so tests can substitute fakes.
type PhotoService struct {
	Repo   repo.PhotoRepo
	Store  storage.Store
	Cache  utils.Cache
	Events EventPublisher
	Ext    *identity.Extractor

	Bucket       string
	SignTTL      time.Duration
	SignCacheTTL time.Duration

	Now   func() time.Time
	NewID func() string
}

// NewPhotoService wires a PhotoService from config. Cache and Events may
// be nil; both are optimizations the core operations work without.
func NewPhotoService(photoRepo repo.PhotoRepo, store storage.Store, cache utils.Cache, events EventPublisher) *PhotoService {
	return &PhotoService{
		Repo:         photoRepo,
		Store:        store,
		Cache:        cache,
		Events:       events,
		Ext:          identity.NewExtractor(config.AppConfig.ElevatedRoles, config.AppConfig.DefaultRole),
		Bucket:       config.AppConfig.BucketName,
		SignTTL:      config.AppConfig.SignedURLTTL,
		SignCacheTTL: config.AppConfig.SignedURLCacheTTL,
		Now:          time.Now,
		NewID:        utils.NewPhotoID,
	}
}

// ListPhotos returns the photo records visible to the identity, newest
// first, each paired with a time-limited signed download URL. Elevated
// roles see the full corpus; everyone else sees only their own photos.
func (s *PhotoService) ListPhotos(ctx context.Context, ident identity.Identity) (*dto.ListPhotosResponse, error) {
	elevated := s.Ext.IsElevated(ident)

	var photos []model.Photo
	var err error
	if elevated {
		photos, err = s.Repo.ListAll(ctx)
	} else {
		photos, err = s.Repo.ListByOwner(ctx, ident.SubjectID)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].UploadedAt.After(photos[j].UploadedAt)
	})

	// Sign per-record URLs concurrently, reassembled by index so the
	// sorted order survives. One failed signature fails the whole list:
	// a partial result with missing links would be worse than an error.
	views := make([]dto.PhotoView, len(photos))
	errs := make([]error, len(photos))
	var wg sync.WaitGroup
	for i := range photos {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url, signErr := s.signedURL(ctx, &photos[i])
			if signErr != nil {
				errs[i] = signErr
				return
			}
			views[i] = dto.PhotoView{
				PhotoID:     photos[i].PhotoID,
				UserID:      photos[i].UserID,
				UserEmail:   photos[i].UserEmail,
				FileName:    photos[i].FileName,
				Description: photos[i].Description,
				UploadedAt:  photos[i].UploadedAt,
				FileSize:    photos[i].FileSize,
				URL:         url,
			}
		}(i)
	}
	wg.Wait()
	for _, signErr := range errs {
		if signErr != nil {
			return nil, signErr
		}
	}

	return &dto.ListPhotosResponse{
		Success:    true,
		Photos:     views,
		UserRole:   ident.Role,
		IsAdmin:    elevated,
		TotalCount: len(views),
	}, nil
}

func (s *PhotoService) signedURL(ctx context.Context, photo *model.Photo) (string, error) {
	bucket := photo.BucketName
	if bucket == "" {
		bucket = s.Bucket
	}
	if cached, ok := utils.GetSignedURLFromCache(ctx, s.Cache, bucket, photo.StorageKey); ok {
		return cached, nil
	}
	url, err := s.Store.PresignedGetObject(ctx, bucket, photo.StorageKey, s.SignTTL)
	if err != nil {
		return "", apperr.Wrap(apperr.StorageRead, "sign photo url failed", err)
	}
	if cacheErr := utils.SetSignedURLToCache(ctx, s.Cache, bucket, photo.StorageKey, url, s.SignCacheTTL); cacheErr != nil {
		log.Printf("cache signed url failed: %v", cacheErr)
	}
	return url, nil
}

// UploadPhoto validates and decodes the payload, writes the bytes to the
// object store, then writes the metadata record. The record insert is the
// commit point; a metadata failure after the object write leaves an
// orphaned blob that no record references.
func (s *PhotoService) UploadPhoto(ctx context.Context, ident identity.Identity, req *dto.UploadPhotoRequest) (*dto.UploadPhotoResponse, error) {
	photoID := s.NewID()
	extension := FileExtension(req.FileName)
	storageKey := BuildStorageKey(ident.SubjectID, photoID, extension)

	data, err := DecodeFileContent(req.FileContent)
	if err != nil {
		return nil, err
	}

	putOpts := storage.PutOptions{
		ContentType: req.FileType,
		UserMetadata: map[string]string{
			"user_id":           ident.SubjectID,
			"user_email":        ident.Email,
			"original_filename": req.FileName,
			"description":       req.Description,
		},
	}
	if err := s.Store.PutObject(ctx, s.Bucket, storageKey, bytes.NewReader(data), int64(len(data)), putOpts); err != nil {
		return nil, apperr.Wrap(apperr.StorageWrite, "put photo object failed", err)
	}

	uploadedAt := s.Now().UTC()
	photo := &model.Photo{
		PhotoID:     photoID,
		UserID:      ident.SubjectID,
		UserEmail:   ident.Email,
		FileName:    req.FileName,
		FileType:    req.FileType,
		FileSize:    int64(len(data)),
		StorageKey:  storageKey,
		BucketName:  s.Bucket,
		Description: req.Description,
		UploadedAt:  uploadedAt,
	}
	if err := s.Repo.Create(ctx, photo); err != nil {
		// 对象已写入 此处不回滚 孤儿对象不会被任何记录引用
		return nil, err
	}

	if s.Events != nil {
		event := mq.PhotoUploadedEvent{
			PhotoID:    photoID,
			UserID:     ident.SubjectID,
			StorageKey: storageKey,
			FileSize:   int64(len(data)),
			UploadedAt: uploadedAt,
		}
		if pubErr := s.Events.PublishPhotoUploaded(ctx, event); pubErr != nil {
			log.Printf("publish photo.uploaded failed: %v", pubErr)
		}
	}

	return &dto.UploadPhotoResponse{
		Success: true,
		Message: "Photo uploaded successfully",
		PhotoID: photoID,
		URL:     storage.ObjectURL(s.Bucket, storageKey),
	}, nil
}

// FileExtension derives the extension from the last dot-delimited segment
// of name, defaulting to jpg. It is a naming heuristic, not content
// inspection.
func FileExtension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "jpg"
	}
	return name[idx+1:]
}

// BuildStorageKey derives the object key for a photo. Keys never collide
// for distinct photo ids and are never reused.
func BuildStorageKey(ownerID, photoID, extension string) string {
	return fmt.Sprintf("photos/%s/%s.%s", ownerID, photoID, extension)
}

// DecodeFileContent decodes the data-URI style upload payload: everything
// after the first comma is standard base64.
func DecodeFileContent(content string) ([]byte, error) {
	_, encoded, found := strings.Cut(content, ",")
	if !found {
		return nil, apperr.New(apperr.Validation, "file_content missing base64 separator")
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, apperr.Wrap(apperr.Validation, "file_content is not valid base64", err)
	}
	return data, nil
}
