package domain

import (
	"strings"
	"time"
)

// Category classifies a shareable item
type Category string

const (
	CategoryTools       Category = "Tools"
	CategoryKitchen     Category = "Kitchen"
	CategoryOutdoors    Category = "Outdoors"
	CategoryFitness     Category = "Fitness"
	CategoryGames       Category = "Games"
	CategoryElectronics Category = "Electronics"
	CategoryBooks       Category = "Books"
	CategoryOther       Category = "Other"
)

// Categories lists every valid category, in display order
var Categories = []Category{
	CategoryTools,
	CategoryKitchen,
	CategoryOutdoors,
	CategoryFitness,
	CategoryGames,
	CategoryElectronics,
	CategoryBooks,
	CategoryOther,
}

// Condition describes the physical state of an item
type Condition string

const (
	ConditionLikeNew   Condition = "Like New"
	ConditionExcellent Condition = "Excellent"
	ConditionVeryGood  Condition = "Very Good"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
)

// Conditions lists every valid condition
var Conditions = []Condition{
	ConditionLikeNew,
	ConditionExcellent,
	ConditionVeryGood,
	ConditionGood,
	ConditionFair,
}

// ValidCategory reports whether c is one of the fixed categories
func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidCondition reports whether c is one of the fixed conditions
func ValidCondition(c Condition) bool {
	for _, v := range Conditions {
		if v == c {
			return true
		}
	}
	return false
}

// RequestStatus represents the resolution state of a borrow request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Date is a calendar day serialized as "2006-01-02"
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// Today returns the current calendar day
func Today() Date {
	return DateOf(time.Now())
}

// DateOf truncates t to its calendar day
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON serializes the date as a quoted "2006-01-02" string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON parses a quoted "2006-01-02" string
func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DefaultItemImage is used when a new item has no image of its own
const DefaultItemImage = "https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=400&h=300&fit=crop"

// CurrentActor is the display name of the single implicit user.
// There is no real identity in the system; every locally created item
// and every borrow request belongs to this synthetic actor.
const CurrentActor = "Current User"

// Item represents a lendable physical object in the catalog
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Owner       string    `json:"owner"`
	Condition   Condition `json:"condition"`
	Available   bool      `json:"available"`
	Image       string    `json:"image"`
	BorrowedBy  *string   `json:"borrowedBy"`
	CreatedAt   Date      `json:"createdAt"`
	Rating      float64   `json:"rating"`
	BorrowCount int       `json:"borrowCount"`
	Tags        []string  `json:"tags"`
}

// BorrowRequest represents one member's ask to borrow one item.
// ItemName, Owner and Image are snapshotted from the item at creation
// time so the display stays stable even if the item changes later.
type BorrowRequest struct {
	ID          string        `json:"id"`
	ItemID      string        `json:"itemId"`
	ItemName    string        `json:"itemName"`
	Owner       string        `json:"owner"`
	Status      RequestStatus `json:"status"`
	RequestDate Date          `json:"requestDate"`
	Image       string        `json:"image"`
}
