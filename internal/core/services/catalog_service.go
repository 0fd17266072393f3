package services

import (
	"log"
	"sort"
	"strings"

	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/core/domain"
	"neighborshare/internal/pkg/pagination"
)

// CatalogService handles item catalog business logic: adding items and the
// filter/sort/paginate query surface over the catalog.
type CatalogService struct {
	items *memstore.ItemStore
}

// NewCatalogService creates a new catalog service
func NewCatalogService(items *memstore.ItemStore) *CatalogService {
	return &CatalogService{items: items}
}

// ============================================================
// Add & Get
// ============================================================

// AddItemInput represents a new item draft
type AddItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Condition   string   `json:"condition"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
}

// AddItem validates the draft and appends a new item to the catalog.
// All violations from a single pass are aggregated into one ValidationError.
func (s *CatalogService) AddItem(input *AddItemInput) (domain.Item, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)

	var violations []string
	if name == "" {
		violations = append(violations, "name is required")
	} else if len(name) < 3 {
		violations = append(violations, "name must be at least 3 characters long")
	}
	if description == "" {
		violations = append(violations, "description is required")
	} else if len(description) < 10 {
		violations = append(violations, "description must be at least 10 characters long")
	}
	if input.Category == "" {
		violations = append(violations, "category is required")
	} else if !domain.ValidCategory(domain.Category(input.Category)) {
		violations = append(violations, "invalid category")
	}
	if input.Condition == "" {
		violations = append(violations, "condition is required")
	} else if !domain.ValidCondition(domain.Condition(input.Condition)) {
		violations = append(violations, "invalid condition")
	}
	if len(violations) > 0 {
		return domain.Item{}, domain.NewValidationError(violations...)
	}

	image := input.Image
	if image == "" {
		image = domain.DefaultItemImage
	}
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	item := s.items.Add(domain.Item{
		Name:        name,
		Description: description,
		Category:    domain.Category(input.Category),
		Owner:       domain.CurrentActor,
		Condition:   domain.Condition(input.Condition),
		Available:   true,
		Image:       image,
		CreatedAt:   domain.Today(),
		Rating:      0,
		BorrowCount: 0,
		Tags:        tags,
	})

	log.Printf("✅ Item added: %s (%s)", item.ID, item.Name)
	return item, nil
}

// GetItem returns a single item by id
func (s *CatalogService) GetItem(id string) (domain.Item, error) {
	return s.items.Get(id)
}

// ============================================================
// Query engine — filter / sort / paginate
// ============================================================

// Availability filter values
const (
	FilterAll = "all"
)

// Sort keys
const (
	SortName    = "name"
	SortRating  = "rating"
	SortNewest  = "newest"
	SortPopular = "popular"
)

// QuerySpec represents the catalog query surface. Zero values mean
// "no filter" / "no sort"; filters combine with logical AND.
type QuerySpec struct {
	Category  string // category equality, case-insensitive; "" or "all" disables
	Available string // "true" / "false"; "" or "all" disables
	Search    string // case-insensitive substring over name, description, tags
	Sort      string // one of the Sort* keys; "" preserves filter order
}

// Query applies spec over the catalog and returns the matching items.
// The result is a snapshot; the stored items are never mutated.
func (s *CatalogService) Query(spec QuerySpec) []domain.Item {
	items := s.items.List()

	if spec.Category != "" && !strings.EqualFold(spec.Category, FilterAll) {
		items = filterItems(items, func(item domain.Item) bool {
			return strings.EqualFold(string(item.Category), spec.Category)
		})
	}

	if spec.Available != "" && spec.Available != FilterAll {
		wantAvailable := spec.Available == "true"
		items = filterItems(items, func(item domain.Item) bool {
			return item.Available == wantAvailable
		})
	}

	if spec.Search != "" {
		term := strings.ToLower(spec.Search)
		items = filterItems(items, func(item domain.Item) bool {
			if strings.Contains(strings.ToLower(item.Name), term) ||
				strings.Contains(strings.ToLower(item.Description), term) {
				return true
			}
			for _, tag := range item.Tags {
				if strings.Contains(strings.ToLower(tag), term) {
					return true
				}
			}
			return false
		})
	}

	sortItems(items, spec.Sort)
	return items
}

// QueryPage applies spec and then the 1-based page window. Items outside
// the filtered result count do not exist, so pages past the end are empty.
func (s *CatalogService) QueryPage(spec QuerySpec, params *pagination.Params) ([]domain.Item, *pagination.Meta) {
	items := s.Query(spec)
	start, end := params.Slice(len(items))
	return items[start:end], params.GetMeta(len(items))
}

func filterItems(items []domain.Item, keep func(domain.Item) bool) []domain.Item {
	out := items[:0]
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// sortItems orders items in place. Sorting is stable so ties keep their
// filter-stage (insertion) order.
func sortItems(items []domain.Item, key string) {
	switch key {
	case SortName:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Name < items[j].Name
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt.Time)
		})
	case SortPopular:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].BorrowCount > items[j].BorrowCount
		})
	}
}
