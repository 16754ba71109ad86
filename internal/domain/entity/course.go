// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies a course in the catalog.
type Category string

const (
	CategoryFree        Category = "Free"
	CategoryFiction     Category = "Fiction"
	CategoryTechnology  Category = "Technology"
	CategoryScience     Category = "Science"
	CategoryBusiness    Category = "Business"
	CategoryDevelopment Category = "Development"
	CategoryDesign      Category = "Design"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryFree,
	CategoryFiction,
	CategoryTechnology,
	CategoryScience,
	CategoryBusiness,
	CategoryDevelopment,
	CategoryDesign,
}

// IsValid checks if the Category is a known value.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Level is the difficulty of a course.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// IsValid checks if the Level is a known value.
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

const (
	// FreePrice is the display price of every free course.
	FreePrice = "Free"

	DefaultInstructor = "BOOKSY Team"
	DefaultDuration   = "Self-paced"

	MaxRating = 5
	MinRating = 1
)

// Lesson is a single unit of course content.
type Lesson struct {
	Title     string   `json:"title"`
	Duration  string   `json:"duration,omitempty"`
	VideoURL  string   `json:"videoUrl,omitempty"`
	Resources []string `json:"resources,omitempty"`
}

// Rating is the running average of learner ratings.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Add folds a new rating into the running mean, rounding the average to one decimal.
func (r Rating) Add(value int) Rating {
	total := r.Average*float64(r.Count) + float64(value)
	count := r.Count + 1

	return Rating{
		Average: math.Round(total/float64(count)*10) / 10,
		Count:   count,
	}
}

// Course is a purchasable unit in the catalog.
type Course struct {
	ID               uuid.UUID
	Name             string
	Title            string
	Description      string
	Price            string  // Display price, e.g. "$99" or "Free".
	OriginalPrice    float64 // Numeric price used for filtering, 0 when free.
	Category         Category
	Level            Level
	Duration         string
	Instructor       string
	Image            string
	Lessons          []Lesson
	Requirements     []string
	LearningOutcomes []string
	Tags             []string
	Rating           Rating
	StudentsEnrolled int
	IsActive         bool
	IsFree           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ApplyPricingRules enforces the free-course invariant and fills display defaults.
// A course in the Free category is always free, priced "Free" and has no original price.
func (c *Course) ApplyPricingRules() {
	if c.IsFree {
		c.Category = CategoryFree
	}

	if c.Category == CategoryFree {
		c.IsFree = true
		c.Price = FreePrice
		c.OriginalPrice = 0

		return
	}

	c.IsFree = false
	if strings.TrimSpace(c.Price) == "" || c.Price == FreePrice {
		c.Price = FormatPrice(c.OriginalPrice)
	}
}

// ApplyDefaults fills the optional descriptive fields the same way course creation always has.
func (c *Course) ApplyDefaults() {
	if c.Level == "" {
		c.Level = LevelBeginner
	}
	if strings.TrimSpace(c.Instructor) == "" {
		c.Instructor = DefaultInstructor
	}
	if strings.TrimSpace(c.Duration) == "" {
		c.Duration = DefaultDuration
	}
}

// FormatPrice renders a numeric price as a display string such as "$99" or "$19.99".
func FormatPrice(amount float64) string {
	if amount <= 0 {
		return "$0"
	}

	return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
}

// ParsePrice converts an admin supplied price such as "$1,299.50" into a number.
// Unparseable input yields 0.
func ParsePrice(raw string) float64 {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	return value
}
