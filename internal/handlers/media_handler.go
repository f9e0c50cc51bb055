package handlers

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"

	"github.com/wildwave/safaris/internal/helpers"
)

// UploadMedia takes a multipart image from the admin UI, pushes it to
// Cloudinary and returns the secure URL to drop into an image_url field.
func UploadMedia(cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cld == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Image uploads not configured"})
			return
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}

		folder := c.DefaultPostForm("folder", helpers.DestinationFolder)

		file, err := fileHeader.Open()
		if err != nil {
			serverError(c, err, "Failed to upload image")
			return
		}
		defer file.Close()

		url, err := helpers.UploadImage(c.Request.Context(), cld, file, folder)
		if err != nil {
			serverError(c, err, "Failed to upload image")
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}
