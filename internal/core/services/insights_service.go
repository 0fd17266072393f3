package services

import (
	"fmt"
	"math"
	"math/rand"

	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/core/domain"
)

// InsightsService derives read-only, dashboard-style views from the
// catalog. Nothing here mutates state.
//
// Several outputs are demonstration placeholders rather than domain
// truth: active users, community savings, map coordinates and the trust
// score are synthesized from fixed constants, not computed from real
// usage data. They are kept together in this service so they are never
// confused with the authoritative stores.
type InsightsService struct {
	items *memstore.ItemStore
}

// NewInsightsService creates a new insights service
func NewInsightsService(items *memstore.ItemStore) *InsightsService {
	return &InsightsService{items: items}
}

// Demo placeholders (see the service doc comment)
const (
	demoActiveUsers      = 25
	demoSavingsPerBorrow = 45 // estimated value of one avoided purchase

	// Map projection scatters items around this base point
	demoBaseLat    = 28.4595
	demoBaseLng    = 77.0266
	demoJitterSpan = 0.1
)

var categoryIcons = map[domain.Category]string{
	domain.CategoryTools:       "🔧",
	domain.CategoryKitchen:     "🍳",
	domain.CategoryOutdoors:    "🏕️",
	domain.CategoryFitness:     "💪",
	domain.CategoryGames:       "🎲",
	domain.CategoryElectronics: "📱",
	domain.CategoryBooks:       "📚",
	domain.CategoryOther:       "📦",
}

// CategoryCount pairs a category with its item count
type CategoryCount struct {
	Name  domain.Category `json:"name"`
	Count int             `json:"count"`
	Icon  string          `json:"icon"`
}

// CategoryCounts returns one entry per enumerated category, zero counts
// included, so the counts always sum to the catalog size.
func (s *InsightsService) CategoryCounts() []CategoryCount {
	counts := make(map[domain.Category]int)
	for _, item := range s.items.List() {
		counts[item.Category]++
	}

	out := make([]CategoryCount, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		out = append(out, CategoryCount{
			Name:  category,
			Count: counts[category],
			Icon:  categoryIcons[category],
		})
	}
	return out
}

// PlatformStats represents the dashboard statistics payload
type PlatformStats struct {
	TotalItems       int     `json:"totalItems"`
	AvailableItems   int     `json:"availableItems"`
	BorrowedItems    int     `json:"borrowedItems"`
	TotalBorrows     int     `json:"totalBorrows"`
	AvgRating        float64 `json:"avgRating"`
	ActiveUsers      int     `json:"activeUsers"`
	CommunitySavings int     `json:"communitySavings"`
}

// PlatformStats scans the catalog and returns platform-wide totals.
// ActiveUsers and CommunitySavings are demo estimates.
func (s *InsightsService) PlatformStats() PlatformStats {
	items := s.items.List()

	var available, totalBorrows int
	var ratingSum float64
	for _, item := range items {
		if item.Available {
			available++
		}
		totalBorrows += item.BorrowCount
		ratingSum += item.Rating
	}

	var avgRating float64
	if len(items) > 0 {
		avgRating = math.Round(ratingSum/float64(len(items))*10) / 10
	}

	return PlatformStats{
		TotalItems:       len(items),
		AvailableItems:   available,
		BorrowedItems:    len(items) - available,
		TotalBorrows:     totalBorrows,
		AvgRating:        avgRating,
		ActiveUsers:      demoActiveUsers,
		CommunitySavings: totalBorrows * demoSavingsPerBorrow,
	}
}

// MapItem represents an item projected onto the neighborhood map
type MapItem struct {
	ItemID    string          `json:"itemId"`
	Lat       float64         `json:"lat"`
	Lng       float64         `json:"lng"`
	Address   string          `json:"address"`
	Name      string          `json:"name"`
	Category  domain.Category `json:"category"`
	Available bool            `json:"available"`
}

// MapItems projects the catalog onto synthetic coordinates. Positions are
// random jitter around a fixed base point and addresses are synthesized;
// no real geolocation is involved.
func (s *InsightsService) MapItems() []MapItem {
	items := s.items.List()

	out := make([]MapItem, 0, len(items))
	for i, item := range items {
		out = append(out, MapItem{
			ItemID:    item.ID,
			Lat:       demoBaseLat + (rand.Float64()-0.5)*demoJitterSpan,
			Lng:       demoBaseLng + (rand.Float64()-0.5)*demoJitterSpan,
			Address:   fmt.Sprintf("Block %c, Sector %d", 'A'+i%5, 45+i),
			Name:      item.Name,
			Category:  item.Category,
			Available: item.Available,
		})
	}
	return out
}

// TrustActivity is one entry in a trust profile's recent activity
type TrustActivity struct {
	Type string `json:"type"`
	Item string `json:"item"`
	Date string `json:"date"`
}

// TrustScore represents a member's trust profile
type TrustScore struct {
	UserID           string          `json:"userId"`
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	TrustScore       float64         `json:"trustScore"`
	LendingCount     int             `json:"lendingCount"`
	BorrowingCount   int             `json:"borrowingCount"`
	PositiveFeedback int             `json:"positiveFeedback"`
	JoinDate         string          `json:"joinDate"`
	Location         string          `json:"location"`
	Badges           []string        `json:"badges"`
	RecentActivity   []TrustActivity `json:"recentActivity"`
}

// TrustScoreFor returns the demo trust profile for a user. The payload is
// a fixed placeholder; only the user id is echoed back.
func (s *InsightsService) TrustScoreFor(userID string) TrustScore {
	return TrustScore{
		UserID:           userID,
		Name:             domain.CurrentActor,
		Email:            "user@example.com",
		TrustScore:       9.2,
		LendingCount:     7,
		BorrowingCount:   3,
		PositiveFeedback: 96,
		JoinDate:         "2023-08-15",
		Location:         "Sector 45, Gurgaon",
		Badges:           []string{"Trusted Lender", "Community Helper", "Early Adopter"},
		RecentActivity: []TrustActivity{
			{Type: "lent", Item: "Cordless Drill", Date: "2024-01-20"},
			{Type: "borrowed", Item: "Camping Tent", Date: "2024-01-18"},
		},
	}
}
