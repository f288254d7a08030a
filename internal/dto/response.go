package dto

import "time"

// PhotoView is one listed photo enriched with its signed download URL.
type PhotoView struct {
	PhotoID     string    `json:"photo_id"`
	UserID      string    `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	FileName    string    `json:"file_name"`
	Description string    `json:"description"`
	UploadedAt  time.Time `json:"uploaded_at"`
	FileSize    int64     `json:"file_size"`
	URL         string    `json:"url"`
}

// ListPhotosResponse is the list operation's success body.
type ListPhotosResponse struct {
	Success    bool        `json:"success"`
	Photos     []PhotoView `json:"photos"`
	UserRole   string      `json:"user_role"`
	IsAdmin    bool        `json:"is_admin"`
	TotalCount int         `json:"total_count"`
}

// UploadPhotoResponse is the upload operation's success body. URL is the
// stable object reference, not a signed link.
type UploadPhotoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	PhotoID string `json:"photo_id"`
	URL     string `json:"url"`
}
