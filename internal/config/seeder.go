package config

import (
	"log"

	"neighborshare/internal/adapters/persistence/memstore"
	"neighborshare/internal/core/domain"
)

// Seeder loads the demo catalog into the in-memory stores.
// This is for development/demo only — the data is the same sample
// neighborhood catalog the frontend was built against.
type Seeder struct {
	items  *memstore.ItemStore
	ledger *memstore.RequestLedger
}

// NewSeeder creates a new seeder instance
func NewSeeder(items *memstore.ItemStore, ledger *memstore.RequestLedger) *Seeder {
	return &Seeder{items: items, ledger: ledger}
}

// Run seeds the demo items and requests
func (s *Seeder) Run() {
	log.Println("🌱 Seeding demo catalog...")

	if s.items.Len() > 0 {
		log.Println("⚠️ Item store not empty, skipping seed")
		return
	}

	for _, item := range demoItems() {
		s.items.Add(item)
	}
	for _, req := range demoRequests() {
		s.ledger.Append(req)
	}

	log.Printf("✅ Seeded %d items, %d requests", s.items.Len(), s.ledger.Len())
}

func seedDate(s string) domain.Date {
	d, err := domain.ParseDate(s)
	if err != nil {
		panic("seeder: bad date " + s)
	}
	return d
}

func demoItems() []domain.Item {
	borrower := domain.CurrentActor

	return []domain.Item{
		{
			Name:        "Cordless Drill",
			Description: "18V cordless drill with battery and charger. Perfect for home improvement projects. Lightly used, works perfectly.",
			Category:    domain.CategoryTools,
			Owner:       "Alice Johnson",
			Condition:   domain.ConditionGood,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1572981779307-38b8cabb2407?w=400&h=300&fit=crop",
			CreatedAt:   seedDate("2024-01-10"),
			Rating:      4.8,
			BorrowCount: 3,
			Tags:        []string{"power-tools", "diy", "home-improvement"},
		},
		{
			Name:        "Camping Tent",
			Description: "4-person waterproof tent with easy setup. Includes stakes, rainfly, and carrying bag. Perfect for family camping trips.",
			Category:    domain.CategoryOutdoors,
			Owner:       "Brian Lee",
			Condition:   domain.ConditionExcellent,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=400&h=300&fit=crop",
			CreatedAt:   seedDate("2024-01-08"),
			Rating:      4.9,
			BorrowCount: 5,
			Tags:        []string{"camping", "outdoor", "family"},
		},
		{
			Name:        "Crock Pot",
			Description: "Large 6-quart slow cooker with programmable timer. Perfect for meal prep and family dinners. Works great!",
			Category:    domain.CategoryKitchen,
			Owner:       "Samantha Green",
			Condition:   domain.ConditionVeryGood,
			Available:   false,
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
			BorrowedBy:  &borrower,
			CreatedAt:   seedDate("2024-01-05"),
			Rating:      4.7,
			BorrowCount: 8,
			Tags:        []string{"cooking", "kitchen", "meal-prep"},
		},
		{
			Name:        "Yoga Mat",
			Description: "Non-slip yoga mat, 6mm thick, blue color. Eco-friendly material, perfect for home workouts and meditation.",
			Category:    domain.CategoryFitness,
			Owner:       "Ravi Mehra",
			Condition:   domain.ConditionGood,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?w=400&h=300&fit=crop",
			CreatedAt:   seedDate("2024-01-12"),
			Rating:      4.6,
			BorrowCount: 2,
			Tags:        []string{"yoga", "fitness", "meditation"},
		},
		{
			Name:        "Ladder",
			Description: "6-foot aluminum step ladder, sturdy and lightweight. Great for home maintenance, painting, and reaching high places.",
			Category:    domain.CategoryTools,
			Owner:       "Dana Wang",
			Condition:   domain.ConditionGood,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=400&h=300&fit=crop",
			CreatedAt:   seedDate("2024-01-03"),
			Rating:      4.5,
			BorrowCount: 6,
			Tags:        []string{"ladder", "maintenance", "painting"},
		},
		{
			Name:        "Board Game: Settlers of Catan",
			Description: "Complete set with all pieces included. Great for game nights with friends and family. Ages 10+, 3-4 players.",
			Category:    domain.CategoryGames,
			Owner:       "Luis García",
			Condition:   domain.ConditionLikeNew,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1610890716171-6b1bb98ffd09?w=400&h=300&fit=crop",
			CreatedAt:   seedDate("2024-01-15"),
			Rating:      4.9,
			BorrowCount: 1,
			Tags:        []string{"board-game", "family", "strategy"},
		},
		{
			Name:        "Power Saw",
			Description: "Circular saw with safety guard and extra blades. Perfect for woodworking projects. Requires experience to operate safely.",
			Category:    domain.CategoryTools,
			Owner:       "Mike Chen",
			Condition:   domain.ConditionExcellent,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1572981779307-38b8cabb2407?w=400&h=300&fit=crop",
			CreatedAt:   seedDate("2024-01-18"),
			Rating:      4.8,
			BorrowCount: 0,
			Tags:        []string{"power-tools", "woodworking", "construction"},
		},
		{
			Name:        "Stand Mixer",
			Description: "KitchenAid stand mixer with multiple attachments. Perfect for baking bread, cakes, and cookies. Heavy-duty motor.",
			Category:    domain.CategoryKitchen,
			Owner:       "Emma Wilson",
			Condition:   domain.ConditionVeryGood,
			Available:   true,
			Image:       "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
			CreatedAt:   seedDate("2024-01-20"),
			Rating:      4.9,
			BorrowCount: 4,
			Tags:        []string{"baking", "kitchen", "mixer"},
		},
	}
}

func demoRequests() []domain.BorrowRequest {
	return []domain.BorrowRequest{
		{
			ItemID:      "itm003",
			ItemName:    "Crock Pot",
			Owner:       "Samantha Green",
			Status:      domain.RequestStatusApproved,
			RequestDate: seedDate("2024-01-15"),
			Image:       "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=400&h=300&fit=crop",
		},
		{
			ItemID:      "itm007",
			ItemName:    "Power Saw",
			Owner:       "Mike Chen",
			Status:      domain.RequestStatusPending,
			RequestDate: seedDate("2024-01-18"),
			Image:       "https://images.unsplash.com/photo-1572981779307-38b8cabb2407?w=400&h=300&fit=crop",
		},
	}
}
