package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wildwave/safaris/internal/models"
	"github.com/wildwave/safaris/internal/services"
)

// Admin surface. Every route here sits behind the bearer gate; none of them
// branch on the claim's role.

func Dashboard(s *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := s.Stats(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch dashboard data")
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// Bookings: list and status update only. Lead rows are never deleted.

func ListBookings(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		bookings, err := s.ListBookings(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch bookings")
			return
		}
		c.JSON(http.StatusOK, bookings)
	}
}

func UpdateBooking(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in models.UpdateStatusInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		booking, err := s.UpdateBookingStatus(c.Request.Context(), id, in.Status)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to update booking")
			return
		}
		c.JSON(http.StatusOK, booking)
	}
}

// Enquiries

func ListEnquiries(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		enquiries, err := s.ListEnquiries(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch enquiries")
			return
		}
		c.JSON(http.StatusOK, enquiries)
	}
}

func UpdateEnquiry(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in models.UpdateStatusInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		enquiry, err := s.UpdateEnquiryStatus(c.Request.Context(), id, in.Status)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to update enquiry")
			return
		}
		c.JSON(http.StatusOK, enquiry)
	}
}

// Destinations

func ListDestinations(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		destinations, err := s.ListDestinations(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch destinations")
			return
		}
		c.JSON(http.StatusOK, destinations)
	}
}

func CreateDestination(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.DestinationInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		destination, err := s.CreateDestination(c.Request.Context(), &in)
		if err != nil {
			serverError(c, err, "Failed to create destination")
			return
		}
		c.JSON(http.StatusCreated, destination)
	}
}

func UpdateDestination(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in models.DestinationInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		destination, err := s.UpdateDestination(c.Request.Context(), id, &in)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to update destination")
			return
		}
		c.JSON(http.StatusOK, destination)
	}
}

func DeleteDestination(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := s.DeleteDestination(c.Request.Context(), id); err != nil {
			serverError(c, err, "Failed to delete destination")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Destination deleted"})
	}
}

// Packages

func ListPackages(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		packages, err := s.ListPackages(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch packages")
			return
		}
		c.JSON(http.StatusOK, packages)
	}
}

func CreatePackage(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.PackageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pkg, err := s.CreatePackage(c.Request.Context(), &in)
		if err != nil {
			serverError(c, err, "Failed to create package")
			return
		}
		c.JSON(http.StatusCreated, pkg)
	}
}

func UpdatePackage(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in models.PackageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		pkg, err := s.UpdatePackage(c.Request.Context(), id, &in)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to update package")
			return
		}
		c.JSON(http.StatusOK, pkg)
	}
}

func DeletePackage(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := s.DeletePackage(c.Request.Context(), id); err != nil {
			serverError(c, err, "Failed to delete package")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Package deleted"})
	}
}

// Blogs

func ListBlogs(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		blogs, err := s.ListBlogs(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch blogs")
			return
		}
		c.JSON(http.StatusOK, blogs)
	}
}

func CreateBlog(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.BlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		blog, err := s.CreateBlog(c.Request.Context(), &in)
		if err != nil {
			serverError(c, err, "Failed to create blog")
			return
		}
		c.JSON(http.StatusCreated, blog)
	}
}

func UpdateBlog(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in models.BlogInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		blog, err := s.UpdateBlog(c.Request.Context(), id, &in)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to update blog")
			return
		}
		c.JSON(http.StatusOK, blog)
	}
}

func DeleteBlog(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := s.DeleteBlog(c.Request.Context(), id); err != nil {
			serverError(c, err, "Failed to delete blog")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Blog deleted"})
	}
}

// Promotions

func ListPromotions(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		promotions, err := s.ListPromotions(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch promotions")
			return
		}
		c.JSON(http.StatusOK, promotions)
	}
}

func CreatePromotion(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.PromotionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		promotion, err := s.CreatePromotion(c.Request.Context(), &in)
		if err != nil {
			serverError(c, err, "Failed to create promotion")
			return
		}
		c.JSON(http.StatusCreated, promotion)
	}
}

func UpdatePromotion(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in models.PromotionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		promotion, err := s.UpdatePromotion(c.Request.Context(), id, &in)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Promotion not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to update promotion")
			return
		}
		c.JSON(http.StatusOK, promotion)
	}
}

func DeletePromotion(s *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := s.DeletePromotion(c.Request.Context(), id); err != nil {
			serverError(c, err, "Failed to delete promotion")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Promotion deleted"})
	}
}

// Contact settings

func GetContactSettings(s *services.LeadsService) gin.HandlerFunc {
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

func UpdateContactSettings(s *services.LeadsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.ContactSettingsInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		settings, err := s.UpdateContactSettings(c.Request.Context(), &in)
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact settings not found"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to update contact settings")
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

// Admin users

func ListUsers(s *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.ListUsers(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch users")
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func CreateUser(s *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.CreateUserInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		user, err := s.CreateUser(c.Request.Context(), &in)
		if errors.Is(err, models.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		if err != nil {
			serverError(c, err, "Failed to create user")
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

func DeleteUser(s *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		if err := s.DeleteUser(c.Request.Context(), id); err != nil {
			serverError(c, err, "Failed to delete user")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// Customers are list-only from the admin side.
func ListCustomers(s *services.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customers, err := s.ListCustomers(c.Request.Context())
		if err != nil {
			serverError(c, err, "Failed to fetch customers")
			return
		}
		c.JSON(http.StatusOK, customers)
	}
}
