package model

import "time"

// UploadEvent is an audit row recorded by the worker for each upload.
type UploadEvent struct {
	ID uint64 `gorm:"primaryKey" json:"id,omitempty"`

	PhotoID    string `gorm:"column:photo_id;size:36;not null;index" json:"photo_id"`
	UserID     string `gorm:"column:user_id;size:128;not null;index" json:"user_id"`
	StorageKey string `gorm:"column:storage_key;size:512;not null" json:"storage_key"`
	FileSize   int64  `gorm:"column:file_size;not null" json:"file_size"`

	UploadedAt time.Time `gorm:"column:uploaded_at;not null" json:"uploaded_at"`
	RecordedAt time.Time `gorm:"column:recorded_at;autoCreateTime" json:"recorded_at"`
}

// TableName returns the database table name.
func (UploadEvent) TableName() string {
	return "upload_event"
}
