package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"fenceworks/internal/domain/entities"
	"fenceworks/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrInvalidProductVal = errors.New("invalid product")
)

// ProductFilter narrows a catalog listing. Empty fields match everything.
type ProductFilter struct {
	Category string
	Search   string
}

// IProductUseCase is the catalog. Writes are admin-only; the routes enforce
// the role.
type IProductUseCase interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	Update(ctx context.Context, id string, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context, f ProductFilter) ([]entities.Product, error)
}

type ProductUseCase struct {
	repo     interfaces.IProductRepository
	notifier interfaces.IChangeNotifier
}

var _ IProductUseCase = (*ProductUseCase)(nil)

func NewProductUseCase(repo interfaces.IProductRepository, notifier interfaces.IChangeNotifier) *ProductUseCase {
	return &ProductUseCase{repo: repo, notifier: notifier}
}

func (u *ProductUseCase) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	p = normalizeProduct(p)
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Product{}, storeErr("create product", err)
	}
	log.Printf("[product][usecase] created product_id=%s name=%q", created.ID, created.Name)
	u.notify()
	return created, nil
}

func (u *ProductUseCase) Update(ctx context.Context, id string, p entities.Product) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p = normalizeProduct(p)
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, storeErr("get product", err)
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}

	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Product{}, storeErr("update product", err)
	}
	if updated.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	u.notify()
	return updated, nil
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return storeErr("delete product", err)
	}
	if !deleted {
		return ErrProductNotFound
	}
	log.Printf("[product][usecase] deleted product_id=%s", id)
	u.notify()
	return nil
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, storeErr("get product", err)
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

// List filters and sorts in memory; catalogs are small.
func (u *ProductUseCase) List(ctx context.Context, f ProductFilter) ([]entities.Product, error) {
	all, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, storeErr("list products", err)
	}

	category := strings.TrimSpace(f.Category)
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]entities.Product, 0, len(all))
	for _, p := range all {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (u *ProductUseCase) notify() {
	if u.notifier != nil {
		u.notifier.Notify(interfaces.CollectionProducts)
	}
}

func normalizeProduct(p entities.Product) entities.Product {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	p.Images = images
	return p
}

func validateProduct(p entities.Product) error {
	if p.Name == "" || p.BaseRate < 0 || math.IsNaN(p.BaseRate) || math.IsInf(p.BaseRate, 0) {
		return ErrInvalidProductVal
	}
	return nil
}
