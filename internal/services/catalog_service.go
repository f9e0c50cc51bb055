package services

import (
	"context"

	"github.com/wildwave/safaris/internal/models"
)

// CatalogService fronts the content tables. The Public* methods apply the
// visibility filter; the admin methods never do.
type CatalogService struct {
	catalog *models.CatalogRepo
}

func NewCatalogService(catalog *models.CatalogRepo) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) PublicDestinations(ctx context.Context) ([]models.Destination, error) {
	return s.catalog.ListPublishedDestinations(ctx)
}

func (s *CatalogService) PublicDestination(ctx context.Context, id int) (*models.Destination, error) {
	return s.catalog.GetPublishedDestination(ctx, id)
}

func (s *CatalogService) PublicPackages(ctx context.Context) ([]models.Package, error) {
	return s.catalog.ListPublishedPackages(ctx)
}

func (s *CatalogService) PublicBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.catalog.ListPublishedBlogs(ctx)
}

func (s *CatalogService) PublicBlog(ctx context.Context, id int) (*models.Blog, error) {
	return s.catalog.GetPublishedBlog(ctx, id)
}

func (s *CatalogService) PublicPromotions(ctx context.Context) ([]models.Promotion, error) {
	return s.catalog.ListActivePromotions(ctx)
}

func (s *CatalogService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	return s.catalog.ListDestinations(ctx)
}

func (s *CatalogService) CreateDestination(ctx context.Context, in *models.DestinationInput) (*models.Destination, error) {
	return s.catalog.CreateDestination(ctx, in)
}

func (s *CatalogService) UpdateDestination(ctx context.Context, id int, in *models.DestinationInput) (*models.Destination, error) {
	return s.catalog.UpdateDestination(ctx, id, in)
}

func (s *CatalogService) DeleteDestination(ctx context.Context, id int) error {
	return s.catalog.DeleteDestination(ctx, id)
}

func (s *CatalogService) ListPackages(ctx context.Context) ([]models.Package, error) {
	return s.catalog.ListPackages(ctx)
}

func (s *CatalogService) CreatePackage(ctx context.Context, in *models.PackageInput) (*models.Package, error) {
	return s.catalog.CreatePackage(ctx, in)
}

func (s *CatalogService) UpdatePackage(ctx context.Context, id int, in *models.PackageInput) (*models.Package, error) {
	return s.catalog.UpdatePackage(ctx, id, in)
}

func (s *CatalogService) DeletePackage(ctx context.Context, id int) error {
	return s.catalog.DeletePackage(ctx, id)
}

func (s *CatalogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return s.catalog.ListBlogs(ctx)
}

func (s *CatalogService) CreateBlog(ctx context.Context, in *models.BlogInput) (*models.Blog, error) {
	return s.catalog.CreateBlog(ctx, in)
}

func (s *CatalogService) UpdateBlog(ctx context.Context, id int, in *models.BlogInput) (*models.Blog, error) {
	return s.catalog.UpdateBlog(ctx, id, in)
}

func (s *CatalogService) DeleteBlog(ctx context.Context, id int) error {
	return s.catalog.DeleteBlog(ctx, id)
}

func (s *CatalogService) ListPromotions(ctx context.Context) ([]models.Promotion, error) {
	return s.catalog.ListPromotions(ctx)
}

func (s *CatalogService) CreatePromotion(ctx context.Context, in *models.PromotionInput) (*models.Promotion, error) {
	return s.catalog.CreatePromotion(ctx, in)
}

func (s *CatalogService) UpdatePromotion(ctx context.Context, id int, in *models.PromotionInput) (*models.Promotion, error) {
	return s.catalog.UpdatePromotion(ctx, id, in)
}

func (s *CatalogService) DeletePromotion(ctx context.Context, id int) error {
	return s.catalog.DeletePromotion(ctx, id)
}
