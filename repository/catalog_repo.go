package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/model"
)

// CatalogRepo is the read side of the product catalog plus the administrative
// stock reset.
type CatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}

// ActiveProducts lists sellable products, optionally narrowed to one category
// slug.
func (r *CatalogRepo) ActiveProducts(ctx context.Context, categorySlug string) ([]model.Product, error) {
	query := r.db.WithContext(ctx).Preload("Category").Where("is_active = ?", true)

	if categorySlug != "" {
		var category model.Category
		if err := r.db.WithContext(ctx).Where("slug = ?", categorySlug).First(&category).Error; err != nil {
			return nil, err
		}
		query = query.Where("category_id = ?", category.ID)
	}

	var products []model.Product
	err := query.Find(&products).Error
	return products, err
}

// SearchProducts matches active products by name substring.
func (r *CatalogRepo) SearchProducts(ctx context.Context, q string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Where("name ILIKE ?", "%"+q+"%").
		Find(&products).Error
	return products, err
}

// NewArrivals lists the most recently added active products.
func (r *CatalogRepo) NewArrivals(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// ProductBySlug loads an active product with its variants, colors, sizes and
// stock rows for the detail page.
func (r *CatalogRepo) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Variants.Color").
		Preload("Variants.Size").
		Preload("Variants.Stocks").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *CatalogRepo) VariantByID(ctx context.Context, id uint) (*model.ProductVariant, error) {
	var variant model.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Color").
		Preload("Size").
		First(&variant, id).Error
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// VariantsByIDs resolves cart entries against the catalog. Ids with no
// matching variant are simply absent from the result; callers tolerate that.
func (r *CatalogRepo) VariantsByIDs(ctx context.Context, ids []uint) ([]model.ProductVariant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var variants []model.ProductVariant
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Color").
		Preload("Size").
		Where("id IN ?", ids).
		Find(&variants).Error
	return variants, err
}

func (r *CatalogRepo) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error
	return count, err
}

// ResetStock sets every stock row to the given quantity and reports how many
// rows were touched.
func (r *CatalogRepo) ResetStock(ctx context.Context, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Stock{}).
		Where("1 = 1").
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}
