package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CatalogRepo covers the published-content tables: destinations, packages,
// blogs and promotions. Public listings filter on the visibility flag; admin
// listings never do.
type CatalogRepo struct {
	db *sqlx.DB
}

func NewCatalogRepo(db *sqlx.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// Destinations

func (r *CatalogRepo) ListPublishedDestinations(ctx context.Context) ([]Destination, error) {
	destinations := []Destination{}
	err := r.db.SelectContext(ctx, &destinations,
		`SELECT * FROM destinations WHERE published = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list published destinations: %w", err)
	}
	return destinations, nil
}

func (r *CatalogRepo) ListDestinations(ctx context.Context) ([]Destination, error) {
	destinations := []Destination{}
	err := r.db.SelectContext(ctx, &destinations,
		`SELECT * FROM destinations ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	return destinations, nil
}

// GetPublishedDestination returns ErrNotFound for unpublished rows so a
// public caller cannot tell them apart from absent ones.
func (r *CatalogRepo) GetPublishedDestination(ctx context.Context, id int) (*Destination, error) {
	var destination Destination
	err := r.db.GetContext(ctx, &destination,
		`SELECT * FROM destinations WHERE id = $1 AND published = true`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get destination %d: %w", id, err)
	}
	return &destination, nil
}

func (r *CatalogRepo) CreateDestination(ctx context.Context, in *DestinationInput) (*Destination, error) {
	var destination Destination
	err := r.db.GetContext(ctx, &destination,
		`INSERT INTO destinations (name, description, price, duration, image_url, category, country, tags, best_months, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING *`,
		in.Name, in.Description, in.Price, in.Duration, in.ImageURL,
		in.Category, in.Country, in.Tags, in.BestMonths, defaultTrue(in.Published))
	if err != nil {
		return nil, fmt.Errorf("failed to create destination: %w", err)
	}
	return &destination, nil
}

func (r *CatalogRepo) UpdateDestination(ctx context.Context, id int, in *DestinationInput) (*Destination, error) {
	var destination Destination
	err := r.db.GetContext(ctx, &destination,
		`UPDATE destinations SET name = $1, description = $2, price = $3, duration = $4, image_url = $5,
		 category = $6, country = $7, tags = $8, best_months = $9, published = $10
		 WHERE id = $11 RETURNING *`,
		in.Name, in.Description, in.Price, in.Duration, in.ImageURL,
		in.Category, in.Country, in.Tags, in.BestMonths, defaultTrue(in.Published), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update destination %d: %w", id, err)
	}
	return &destination, nil
}

// DeleteDestination is idempotent: deleting an absent id is still a success.
func (r *CatalogRepo) DeleteDestination(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM destinations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete destination %d: %w", id, err)
	}
	return nil
}

// Packages

func (r *CatalogRepo) ListPublishedPackages(ctx context.Context) ([]Package, error) {
	packages := []Package{}
	err := r.db.SelectContext(ctx, &packages,
		`SELECT * FROM packages WHERE published = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list published packages: %w", err)
	}
	return packages, nil
}

func (r *CatalogRepo) ListPackages(ctx context.Context) ([]Package, error) {
	packages := []Package{}
	err := r.db.SelectContext(ctx, &packages,
		`SELECT * FROM packages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}
	return packages, nil
}

func (r *CatalogRepo) CreatePackage(ctx context.Context, in *PackageInput) (*Package, error) {
	var pkg Package
	err := r.db.GetContext(ctx, &pkg,
		`INSERT INTO packages (name, duration, price, tag, type, image_url, description, itinerary, includes, excludes, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING *`,
		in.Name, in.Duration, in.Price, in.Tag, in.Type, in.ImageURL,
		in.Description, in.Itinerary, in.Includes, in.Excludes, defaultTrue(in.Published))
	if err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	return &pkg, nil
}

func (r *CatalogRepo) UpdatePackage(ctx context.Context, id int, in *PackageInput) (*Package, error) {
	var pkg Package
	err := r.db.GetContext(ctx, &pkg,
		`UPDATE packages SET name = $1, duration = $2, price = $3, tag = $4, type = $5, image_url = $6,
		 description = $7, itinerary = $8, includes = $9, excludes = $10, published = $11
		 WHERE id = $12 RETURNING *`,
		in.Name, in.Duration, in.Price, in.Tag, in.Type, in.ImageURL,
		in.Description, in.Itinerary, in.Includes, in.Excludes, defaultTrue(in.Published), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update package %d: %w", id, err)
	}
	return &pkg, nil
}

func (r *CatalogRepo) DeletePackage(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete package %d: %w", id, err)
	}
	return nil
}

// Blogs

func (r *CatalogRepo) ListPublishedBlogs(ctx context.Context) ([]Blog, error) {
	blogs := []Blog{}
	err := r.db.SelectContext(ctx, &blogs,
		`SELECT * FROM blogs WHERE published = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list published blogs: %w", err)
	}
	return blogs, nil
}

func (r *CatalogRepo) ListBlogs(ctx context.Context) ([]Blog, error) {
	blogs := []Blog{}
	err := r.db.SelectContext(ctx, &blogs, `SELECT * FROM blogs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, nil
}

func (r *CatalogRepo) GetPublishedBlog(ctx context.Context, id int) (*Blog, error) {
	var blog Blog
	err := r.db.GetContext(ctx, &blog,
		`SELECT * FROM blogs WHERE id = $1 AND published = true`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog %d: %w", id, err)
	}
	return &blog, nil
}

func (r *CatalogRepo) CreateBlog(ctx context.Context, in *BlogInput) (*Blog, error) {
	var blog Blog
	err := r.db.GetContext(ctx, &blog,
		`INSERT INTO blogs (title, category, excerpt, content, image_url, read_time, published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING *`,
		in.Title, in.Category, in.Excerpt, in.Content, in.ImageURL, in.ReadTime, defaultTrue(in.Published))
	if err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}
	return &blog, nil
}

func (r *CatalogRepo) UpdateBlog(ctx context.Context, id int, in *BlogInput) (*Blog, error) {
	var blog Blog
	err := r.db.GetContext(ctx, &blog,
		`UPDATE blogs SET title = $1, category = $2, excerpt = $3, content = $4, image_url = $5,
		 read_time = $6, published = $7, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $8 RETURNING *`,
		in.Title, in.Category, in.Excerpt, in.Content, in.ImageURL, in.ReadTime, defaultTrue(in.Published), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update blog %d: %w", id, err)
	}
	return &blog, nil
}

func (r *CatalogRepo) DeleteBlog(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete blog %d: %w", id, err)
	}
	return nil
}

// Promotions

func (r *CatalogRepo) ListActivePromotions(ctx context.Context) ([]Promotion, error) {
	promotions := []Promotion{}
	err := r.db.SelectContext(ctx, &promotions,
		`SELECT * FROM promotions WHERE active = true ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active promotions: %w", err)
	}
	return promotions, nil
}

func (r *CatalogRepo) ListPromotions(ctx context.Context) ([]Promotion, error) {
	promotions := []Promotion{}
	err := r.db.SelectContext(ctx, &promotions,
		`SELECT * FROM promotions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list promotions: %w", err)
	}
	return promotions, nil
}

func (r *CatalogRepo) CreatePromotion(ctx context.Context, in *PromotionInput) (*Promotion, error) {
	var promotion Promotion
	err := r.db.GetContext(ctx, &promotion,
		`INSERT INTO promotions (title, description, discount_text, button_text, button_link, active)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`,
		in.Title, in.Description, in.DiscountText, in.ButtonText, in.ButtonLink, defaultTrue(in.Active))
	if err != nil {
		return nil, fmt.Errorf("failed to create promotion: %w", err)
	}
	return &promotion, nil
}

func (r *CatalogRepo) UpdatePromotion(ctx context.Context, id int, in *PromotionInput) (*Promotion, error) {
	var promotion Promotion
	err := r.db.GetContext(ctx, &promotion,
		`UPDATE promotions SET title = $1, description = $2, discount_text = $3, button_text = $4,
		 button_link = $5, active = $6 WHERE id = $7 RETURNING *`,
		in.Title, in.Description, in.DiscountText, in.ButtonText, in.ButtonLink, defaultTrue(in.Active), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update promotion %d: %w", id, err)
	}
	return &promotion, nil
}

func (r *CatalogRepo) DeletePromotion(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM promotions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete promotion %d: %w", id, err)
	}
	return nil
}

// defaultTrue mirrors the intake rule `published !== false`: only an explicit
// false hides a row.
func defaultTrue(b *bool) bool {
	return b == nil || *b
}
