package dto

// ContactRequest is a public contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// UploadRequest asks for a presigned attachment upload.
type UploadRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
}

// UploadResponse carries the presigned PUT URL and the storage key the
// client must echo back when creating the ticket.
type UploadResponse struct {
	PresignedURL string `json:"presignedUrl"`
	S3Key        string `json:"s3Key"`
}

// DownloadResponse carries a presigned GET URL.
type DownloadResponse struct {
	URL string `json:"url"`
}

// DomainSearchRequest payload.
type DomainSearchRequest struct {
	Domain string `json:"domain"`
}
