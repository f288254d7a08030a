package dto

// UploadPhotoRequest is the upload body. FileContent carries a data-URI
// style payload: a descriptive prefix, a comma, then base64 bytes.
type UploadPhotoRequest struct {
	FileContent string `json:"file_content" binding:"required"`
	FileName    string `json:"file_name" binding:"required"`
	FileType    string `json:"file_type" binding:"required"`
	Description string `json:"description"`
}
