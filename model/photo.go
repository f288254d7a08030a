package model

import "time"

type Photo struct {
	PhotoID string `gorm:"column:photo_id;primaryKey;size:36" json:"photo_id"`

	UserID    string `gorm:"column:user_id;size:128;not null;index:idx_photo_user" json:"user_id"`
	UserEmail string `gorm:"column:user_email;size:255;not null" json:"user_email"`

	FileName string `gorm:"column:file_name;size:255;not null" json:"file_name"`
	FileType string `gorm:"column:file_type;size:128;not null" json:"file_type"`
	FileSize int64  `gorm:"column:file_size;not null" json:"file_size"`

	StorageKey string `gorm:"column:storage_key;size:512;not null;uniqueIndex" json:"-"`
	BucketName string `gorm:"column:bucket_name;size:64;not null" json:"-"`

	Description string `gorm:"column:description;size:1024" json:"description"`

	UploadedAt time.Time `gorm:"column:uploaded_at;not null" json:"uploaded_at"`
}

// TableName returns the database table name.
func (Photo) TableName() string {
	return "photo"
}

/*
关于主键的选择
photo_id 由服务端生成的 uuid 而不是自增 ID 与对象存储中的 storage_key 一一对应
user_id 来自外部身份服务 所以这里不存在 user 表的外键 仅建立二级索引用于按属主查询
*/
