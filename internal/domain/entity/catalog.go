package entity

// FilterAll disables the category or level filter.
const FilterAll = "All"

// SortKey enumerates the catalog sort columns.
type SortKey string

const (
	SortByCreatedAt        SortKey = "createdAt"
	SortByName             SortKey = "name"
	SortByOriginalPrice    SortKey = "originalPrice"
	SortByRating           SortKey = "rating"
	SortByStudentsEnrolled SortKey = "studentsEnrolled"
)

// ParseSortKey maps a query value onto a SortKey. "rating.average" is accepted as an alias of "rating".
func ParseSortKey(raw string) (SortKey, bool) {
	switch raw {
	case "", string(SortByCreatedAt):
		return SortByCreatedAt, true
	case string(SortByName):
		return SortByName, true
	case string(SortByOriginalPrice):
		return SortByOriginalPrice, true
	case string(SortByRating), "rating.average":
		return SortByRating, true
	case string(SortByStudentsEnrolled):
		return SortByStudentsEnrolled, true
	default:
		return "", false
	}
}

// CourseFilter describes a catalog query. Only active courses are ever returned.
type CourseFilter struct {
	Category   string // Exact category, or "" / "All" for any.
	Search     string // Case-insensitive substring over name, title, description, instructor, tags.
	Level      string // Exact level, or "" / "All" for any.
	MinPrice   *float64
	MaxPrice   *float64
	FreeOnly   bool
	SortBy     SortKey
	Descending bool
	Page       int // 1-based.
	PageSize   int
}

// Offset returns the number of rows to skip for the requested page.
func (f CourseFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}

	return (f.Page - 1) * f.PageSize
}

// CoursePage is one page of catalog results.
type CoursePage struct {
	Courses []*Course
	Total   int64
}

// CatalogFacets lists the values present in the active catalog, for building filter UIs.
type CatalogFacets struct {
	Categories []string
	Levels     []string
	MinPrice   float64
	MaxPrice   float64
}

// CategorySummary aggregates the active courses of one category.
type CategorySummary struct {
	Category      string  `json:"category"`
	Count         int64   `json:"count"`
	TotalStudents int64   `json:"totalStudents"`
	AverageRating float64 `json:"averageRating"`
}

// DashboardStats is the admin overview.
type DashboardStats struct {
	TotalCourses  int64
	TotalStudents int64
	TotalUsers    int64
}
