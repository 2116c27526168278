package types

import "fmt"

// Category labels a habit's life domain. Only the labels returned by
// Categories are valid.
type Category string

// Habit categories in menu order.
const (
	CategoryHealth       Category = "Health & Fitness"
	CategoryLearning     Category = "Learning & Education"
	CategoryProductivity Category = "Productivity"
	CategoryPersonal     Category = "Personal Development"
	CategorySocial       Category = "Social & Relationships"
	CategoryHobbies      Category = "Hobbies & Recreation"
)

// categories is the fixed ordered category list.
var categories = []Category{
	CategoryHealth,
	CategoryLearning,
	CategoryProductivity,
	CategoryPersonal,
	CategorySocial,
	CategoryHobbies,
}

// Categories returns a copy of the fixed category list in menu order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryByOrdinal maps a 1-based menu ordinal to its category.
func CategoryByOrdinal(n int) (Category, error) {
	if n < 1 || n > len(categories) {
		return "", fmt.Errorf("%w: choice %d (want 1-%d)", ErrInvalidCategory, n, len(categories))
	}
	return categories[n-1], nil
}
