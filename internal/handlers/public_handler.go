package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wildwave/safaris/internal/models"
	"github.com/wildwave/safaris/internal/services"
)

// Public catalog reads. Only published/active rows leave these handlers; an
// unpublished row is indistinguishable from an absent one.

func ListPublicDestinations(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		destinations, err := s.PublicDestinations(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch destinations")
			return
		}
		c.JSON(http.StatusOK, destinations)
	}
}

func GetPublicDestination(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		destination, err := s.PublicDestination(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to fetch destination")
			return
		}
		c.JSON(http.StatusOK, destination)
	}
}

func ListPublicPackages(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		packages, err := s.PublicPackages(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch packages")
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

func ListPublicBlogs(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := s.PublicBlogs(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch blogs")
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

func GetPublicBlog(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		blog, err := s.PublicBlog(c.Request.Context(), id)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to fetch blog")
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

func ListPublicPromotions(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		promotions, err := s.PublicPromotions(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch promotions")
			return
		}
		c.JSON(http.StatusOK, promotions)
	}
}

// GetPublicContactSettings answers an empty object when the singleton row
// does not exist yet, never an error.
func GetPublicContactSettings(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := s.ContactSettings(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch contact settings")
			return
		}
		if settings == nil {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

func CreateBooking(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.CreateBookingInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		booking, err := s.CreateBooking(c.Request.Context(), &in)
		if err != nil {
			serverError(c, err, "Failed to create booking")
			return
		}
		c.JSON(http.StatusCreated, booking)
	}
}

func CreateEnquiry(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.CreateEnquiryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		enquiry, err := s.CreateEnquiry(c.Request.Context(), &in)
		if err != nil {
			serverError(c, err, "Failed to create enquiry")
			return
		}
		c.JSON(http.StatusCreated, enquiry)
	}
}
