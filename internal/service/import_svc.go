package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"gorm.io/gorm"

	"storefront_api/internal/api/dto"
	"storefront_api/pkg/logger"
)

// feedItem is one product row in the external CMS feed. The shape mirrors
// the admin create request so both paths share the upsert pipeline.
type feedItem struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	InStock       *bool    `json:"inStock"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Brand         string   `json:"brand"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Tags          []string `json:"tags"`
}

// ImportReport summarizes one import run.
type ImportReport struct {
	Fetched int `json:"fetched"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// CatalogImportService pulls a JSON product feed and upserts it through the
// admin pipeline. Bad rows are logged and skipped; store faults abort the
// run.
type CatalogImportService struct {
	Catalog *CatalogService
	client  *resty.Client
	feedURL string
}

func NewCatalogImportService(catalog *CatalogService, feedURL string) *CatalogImportService {
	return &CatalogImportService{
		Catalog: catalog,
		client:  resty.New(),
		feedURL: feedURL,
	}
}

// Run fetches the configured feed and upserts every row, matching existing
// products by name.
func (s *CatalogImportService) Run(ctx context.Context) (*ImportReport, error) {
	if s.feedURL == "" {
		return nil, fmt.Errorf("%w: no feed url configured", ErrValidation)
	}
	log := logger.Op("catalog_import")

	var items []feedItem
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get(s.feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	report := &ImportReport{Fetched: len(items)}
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" || item.Price < 0 {
			log.Warnw("skipping malformed feed row", "index", i, "name", item.Name)
			report.Skipped++
			continue
		}
		created, err := s.upsert(ctx, item)
		if err != nil {
			// Validation faults are row-local; anything else is a store
			// fault and aborts the run.
			if errors.Is(err, ErrValidation) {
				log.Warnw("skipping invalid feed row", "index", i, "name", item.Name, "err", err)
				report.Skipped++
				continue
			}
			return nil, err
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	log.Infow("import finished",
		"fetched", report.Fetched,
		"created", report.Created,
		"updated", report.Updated,
		"skipped", report.Skipped,
	)
	return report, nil
}

func (s *CatalogImportService) upsert(ctx context.Context, item feedItem) (created bool, err error) {
	existing, err := s.Catalog.ProductRepo.GetByName(ctx, strings.TrimSpace(item.Name))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	if existing == nil {
		_, err = s.Catalog.CreateProduct(ctx, dto.ProductCreateReq{
			Name:          item.Name,
			Description:   item.Description,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Image:         item.Image,
			Images:        item.Images,
			InStock:       item.InStock,
			Category:      item.Category,
			Subcategory:   item.Subcategory,
			Brand:         item.Brand,
			Sizes:         item.Sizes,
			Colors:        item.Colors,
			Tags:          item.Tags,
		})
		return true, err
	}

	patch := dto.ProductPatchReq{
		Description:   &item.Description,
		Price:         &item.Price,
		OriginalPrice: item.OriginalPrice,
		Image:         &item.Image,
		Images:        &item.Images,
		InStock:       item.InStock,
		Category:      &item.Category,
		Subcategory:   &item.Subcategory,
		Brand:         &item.Brand,
		Sizes:         &item.Sizes,
		Colors:        &item.Colors,
		Tags:          &item.Tags,
	}
	_, err = s.Catalog.PatchProduct(ctx, existing.ID, patch)
	return false, err
}
