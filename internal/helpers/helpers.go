package helpers

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Cloudinary folders for the image_url fields the admin UI writes.
const (
	DestinationFolder = "destinations"
	PackageFolder     = "packages"
	BlogFolder        = "blogs"
)

// UploadImage pushes one image to Cloudinary and returns its secure URL.
func UploadImage(ctx context.Context, cld *cloudinary.Cloudinary, file io.Reader, folder string) (string, error) {
	result, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"wildwave"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return result.SecureURL, nil
}
