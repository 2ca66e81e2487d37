package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for file storage operations.
type StorageService interface {
	// UploadFile stores the stream and returns the permanent public ID
	// and a delivery URL.
	UploadFile(ctx context.Context, file io.Reader, destFolder, filename string) (string, string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(publicID string) (string, error)
}

// StorageServiceImpl implements StorageService using Cloudinary.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &StorageServiceImpl{
		cld:       cld,
		cloudName: cloudName,
	}
}
