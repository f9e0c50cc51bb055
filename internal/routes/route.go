package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wildwave/safaris/internal/container"
	"github.com/wildwave/safaris/internal/handlers"
	"github.com/wildwave/safaris/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container.
func SetupRoutes(appContainer *container.Container) *gin.Engine {
	r := gin.New()

	// Fixed local development origins; credentials allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(appContainer.Logger))
	r.Use(middleware.ErrorHandler(appContainer.Logger))
	r.Use(middleware.Recovery(appContainer.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/login", handlers.AdminLogin(appContainer.AccountService))
	}

	customerAuth := r.Group("/api/customer-auth")
	{
		customerAuth.POST("/signup", handlers.CustomerSignup(appContainer.AccountService))
		customerAuth.POST("/login", handlers.CustomerLogin(appContainer.AccountService))
	}

	public := r.Group("/api/public")
	{
		public.GET("/destinations", handlers.ListPublicDestinations(appContainer.CatalogService))
		public.GET("/destinations/:id", handlers.GetPublicDestination(appContainer.CatalogService))
		public.GET("/packages", handlers.ListPublicPackages(appContainer.CatalogService))
		public.GET("/blogs", handlers.ListPublicBlogs(appContainer.CatalogService))
		public.GET("/blogs/:id", handlers.GetPublicBlog(appContainer.CatalogService))
		public.GET("/promotions", handlers.ListPublicPromotions(appContainer.CatalogService))
		public.GET("/contact-settings", handlers.GetPublicContactSettings(appContainer.LeadsService))
		public.POST("/bookings", handlers.CreateBooking(appContainer.LeadsService))
		public.POST("/enquiries", handlers.CreateEnquiry(appContainer.LeadsService))
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.RequireAuth(appContainer.TokenCodec))
	{
		admin.GET("/dashboard", handlers.Dashboard(appContainer.DashboardService))

		admin.GET("/bookings", handlers.ListBookings(appContainer.LeadsService))
		admin.PUT("/bookings/:id", handlers.UpdateBooking(appContainer.LeadsService))

		admin.GET("/enquiries", handlers.ListEnquiries(appContainer.LeadsService))
		admin.PUT("/enquiries/:id", handlers.UpdateEnquiry(appContainer.LeadsService))

		admin.GET("/destinations", handlers.ListDestinations(appContainer.CatalogService))
		admin.POST("/destinations", handlers.CreateDestination(appContainer.CatalogService))
		admin.PUT("/destinations/:id", handlers.UpdateDestination(appContainer.CatalogService))
		admin.DELETE("/destinations/:id", handlers.DeleteDestination(appContainer.CatalogService))

		admin.GET("/packages", handlers.ListPackages(appContainer.CatalogService))
		admin.POST("/packages", handlers.CreatePackage(appContainer.CatalogService))
		admin.PUT("/packages/:id", handlers.UpdatePackage(appContainer.CatalogService))
		admin.DELETE("/packages/:id", handlers.DeletePackage(appContainer.CatalogService))

		admin.GET("/blogs", handlers.ListBlogs(appContainer.CatalogService))
		admin.POST("/blogs", handlers.CreateBlog(appContainer.CatalogService))
		admin.PUT("/blogs/:id", handlers.UpdateBlog(appContainer.CatalogService))
		admin.DELETE("/blogs/:id", handlers.DeleteBlog(appContainer.CatalogService))

		admin.GET("/promotions", handlers.ListPromotions(appContainer.CatalogService))
		admin.POST("/promotions", handlers.CreatePromotion(appContainer.CatalogService))
		admin.PUT("/promotions/:id", handlers.UpdatePromotion(appContainer.CatalogService))
		admin.DELETE("/promotions/:id", handlers.DeletePromotion(appContainer.CatalogService))

		admin.GET("/contact-settings", handlers.GetContactSettings(appContainer.LeadsService))
		admin.PUT("/contact-settings", handlers.UpdateContactSettings(appContainer.LeadsService))

		admin.GET("/users", handlers.ListUsers(appContainer.AccountService))
		admin.POST("/users", handlers.CreateUser(appContainer.AccountService))
		admin.DELETE("/users/:id", handlers.DeleteUser(appContainer.AccountService))

		admin.GET("/customers", handlers.ListCustomers(appContainer.AccountService))

		admin.POST("/media", handlers.UploadMedia(appContainer.Cloudinary))
	}

	return r
}
