package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/jmoiron/sqlx"

	"github.com/wildwave/safaris/internal/auth"
	"github.com/wildwave/safaris/internal/models"
	"github.com/wildwave/safaris/internal/services"
)

// Container holds all application dependencies. The pool and token codec are
// constructed once at startup and shared read-only from here on.
type Container struct {
	Logger     *slog.Logger
	DB         *sqlx.DB
	Cloudinary *cloudinary.Cloudinary
	TokenCodec *auth.TokenCodec

	AccountService   *services.AccountService
	CatalogService   *services.CatalogService
	LeadsService     *services.LeadsService
	DashboardService *services.DashboardService
}

// NewContainer wires repositories into services. Cloudinary may be nil when
// image uploads are unconfigured; everything else is required.
func NewContainer(logger *slog.Logger, db *sqlx.DB, cld *cloudinary.Cloudinary, codec *auth.TokenCodec) *Container {
	accounts := models.NewAccountsRepo(db)
	catalog := models.NewCatalogRepo(db)
	leads := models.NewLeadsRepo(db)
	settings := models.NewSettingsRepo(db)
	dashboard := models.NewDashboardRepo(db)

	return &Container{
		Logger:           logger,
		DB:               db,
		Cloudinary:       cld,
		TokenCodec:       codec,
		AccountService:   services.NewAccountService(accounts, codec),
		CatalogService:   services.NewCatalogService(catalog),
		LeadsService:     services.NewLeadsService(leads, settings),
		DashboardService: services.NewDashboardService(dashboard),
	}
}
