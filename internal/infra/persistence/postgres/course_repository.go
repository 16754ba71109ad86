package postgres

import (
	"context"
	"math"
	"strings"

	"booksy/internal/domain/entity"
	domainerrors "booksy/internal/domain/errors"
	"booksy/internal/domain/repository"
	"booksy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns maps catalog sort keys onto course columns.
var sortColumns = map[entity.SortKey]string{
	entity.SortByCreatedAt:        "created_at",
	entity.SortByName:             "name",
	entity.SortByOriginalPrice:    "original_price",
	entity.SortByRating:           "rating_average",
	entity.SortByStudentsEnrolled: "students_enrolled",
}

// courseRepository implements the repository.CourseRepository interface.
type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository is the constructor for courseRepository.
func NewCourseRepository(db *gorm.DB) repository.CourseRepository {
	return &courseRepository{
		db: db,
	}
}

// Create persists a new course after enforcing the pricing rules.
func (repo *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	course.ApplyPricingRules()

	courseM := fromCourseDomain(course)
	if err := repo.db.WithContext(ctx).Create(courseM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidCourse.WrapMessage("missing or invalid course information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create course")
	}

	course.CreatedAt = courseM.CreatedAt
	course.UpdatedAt = courseM.UpdatedAt

	return nil
}

// Update overwrites the editable fields of a course. Enrollment and rating counters are
// owned by the enrollment flow and are never touched here.
func (repo *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	course.ApplyPricingRules()

	courseM := fromCourseDomain(course)
	result := repo.db.WithContext(ctx).
		Model(&model.CourseModel{ID: course.ID}).
		Select("*").
		Omit("id", "created_at", "students_enrolled", "rating_average", "rating_count").
		Updates(courseM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidCourse.WrapMessage("missing or invalid course information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// Delete hard-deletes a course. Enrollments referencing it are left in place.
func (repo *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CourseModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete course")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// FindByID retrieves a course by its unique ID.
func (repo *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a course holding a row lock. Only meaningful inside a transaction.
func (repo *courseRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *courseRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.Course, error) {
	var courseM model.CourseModel
	if err := db.Where("id = ?", id).First(&courseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCourseNotFound
		}

		return nil, errors.Wrap(err, "failed to find course by id")
	}

	return toCourseDomain(&courseM), nil
}

// FindByIDs retrieves the courses that still exist among ids.
func (repo *courseRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Course, error) {
	if len(ids) == 0 {
		return []*entity.Course{}, nil
	}

	var courseModels []*model.CourseModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find courses by ids")
	}

	return toCourseDomains(courseModels), nil
}

// List runs a filtered, sorted and paginated query over active courses.
func (repo *courseRepository) List(ctx context.Context, filter entity.CourseFilter) (*entity.CoursePage, error) {
	query := applyCourseFilter(repo.activeCourses(ctx), filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count courses")
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns[entity.SortByCreatedAt]
	}

	var courseModels []*model.CourseModel
	if err := query.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: filter.Descending}).
		Order("id ASC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list courses")
	}

	return &entity.CoursePage{
		Courses: toCourseDomains(courseModels),
		Total:   total,
	}, nil
}

func applyCourseFilter(query *gorm.DB, filter entity.CourseFilter) *gorm.DB {
	if filter.Category != "" && filter.Category != entity.FilterAll {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Level != "" && filter.Level != entity.FilterAll {
		query = query.Where("level = ?", filter.Level)
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(search)
		query = query.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(title) LIKE ? ESCAPE '\' OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(instructor) LIKE ? ESCAPE '\' OR `+tagMatch(query)+`)`,
			pattern, pattern, pattern, pattern, pattern,
		)
	}

	if filter.MinPrice != nil {
		query = query.Where("original_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("original_price <= ?", *filter.MaxPrice)
	}

	if filter.FreeOnly {
		query = query.Where("is_free = ?", true)
	}

	return query
}

// ListAll returns every course, active or not, newest first.
func (repo *courseRepository) ListAll(ctx context.Context) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all courses")
	}

	return toCourseDomains(courseModels), nil
}

// FindFeatured returns active courses above the rating and popularity thresholds.
func (repo *courseRepository) FindFeatured(ctx context.Context, minRating float64, minStudents, limit int) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel
	if err := repo.activeCourses(ctx).
		Where("rating_average >= ? AND students_enrolled >= ?", minRating, minStudents).
		Order("rating_average DESC").
		Order("students_enrolled DESC").
		Order("id ASC").
		Limit(limit).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find featured courses")
	}

	return toCourseDomains(courseModels), nil
}

// FindFree returns active free courses, most popular first.
func (repo *courseRepository) FindFree(ctx context.Context, limit int) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel
	if err := repo.activeCourses(ctx).
		Where("is_free = ?", true).
		Order("students_enrolled DESC").
		Order("id ASC").
		Limit(limit).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find free courses")
	}

	return toCourseDomains(courseModels), nil
}

// FindRelated returns other active courses in the same category.
func (repo *courseRepository) FindRelated(ctx context.Context, category entity.Category, excludeID uuid.UUID, limit int) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel
	if err := repo.activeCourses(ctx).
		Where("category = ? AND id <> ?", string(category), excludeID).
		Order("students_enrolled DESC").
		Order("id ASC").
		Limit(limit).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find related courses")
	}

	return toCourseDomains(courseModels), nil
}

// Suggest matches active courses whose name, title or tags contain query.
func (repo *courseRepository) Suggest(ctx context.Context, query string, limit int) ([]*entity.Course, error) {
	pattern := containsPattern(query)

	var courseModels []*model.CourseModel
	if err := repo.activeCourses(ctx).
		Select("id", "name", "title", "category", "image").
		Where(`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(title) LIKE ? ESCAPE '\' OR `+tagMatch(repo.db)+`)`, pattern, pattern, pattern).
		Order("students_enrolled DESC").
		Order("id ASC").
		Limit(limit).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to suggest courses")
	}

	return toCourseDomains(courseModels), nil
}

// TopByStudents returns the most enrolled courses.
func (repo *courseRepository) TopByStudents(ctx context.Context, limit int) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel
	if err := repo.db.WithContext(ctx).
		Order("students_enrolled DESC").
		Order("id ASC").
		Limit(limit).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find popular courses")
	}

	return toCourseDomains(courseModels), nil
}

// Recent returns the newest courses.
func (repo *courseRepository) Recent(ctx context.Context, limit int) ([]*entity.Course, error) {
	var courseModels []*model.CourseModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id ASC").
		Limit(limit).
		Find(&courseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent courses")
	}

	return toCourseDomains(courseModels), nil
}

// Facets returns the distinct categories and levels and the price range of the active catalog.
func (repo *courseRepository) Facets(ctx context.Context) (*entity.CatalogFacets, error) {
	facets := &entity.CatalogFacets{Categories: []string{}, Levels: []string{}}

	if err := repo.activeCourses(ctx).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &facets.Categories).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load category facets")
	}

	if err := repo.activeCourses(ctx).
		Distinct("level").
		Order("level ASC").
		Pluck("level", &facets.Levels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load level facets")
	}

	var priceRange struct {
		MinPrice float64
		MaxPrice float64
	}
	if err := repo.activeCourses(ctx).
		Select("COALESCE(MIN(original_price), 0) AS min_price, COALESCE(MAX(original_price), 0) AS max_price").
		Scan(&priceRange).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load price range")
	}
	facets.MinPrice = priceRange.MinPrice
	facets.MaxPrice = priceRange.MaxPrice

	return facets, nil
}

// CategorySummaries aggregates the active catalog per category, largest category first.
func (repo *courseRepository) CategorySummaries(ctx context.Context) ([]*entity.CategorySummary, error) {
	var rows []struct {
		Category      string
		CourseCount   int64
		TotalStudents int64
		AverageRating float64
	}

	if err := repo.activeCourses(ctx).
		Select("category, COUNT(*) AS course_count, COALESCE(SUM(students_enrolled), 0) AS total_students, COALESCE(AVG(rating_average), 0) AS average_rating").
		Group("category").
		Order("course_count DESC").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate categories")
	}

	summaries := make([]*entity.CategorySummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.CategorySummary{
			Category:      row.Category,
			Count:         row.CourseCount,
			TotalStudents: row.TotalStudents,
			AverageRating: math.Round(row.AverageRating*10) / 10,
		})
	}

	return summaries, nil
}

// Totals returns the number of courses and the sum of their enrolled students.
func (repo *courseRepository) Totals(ctx context.Context) (courses int64, students int64, err error) {
	var row struct {
		Courses  int64
		Students int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CourseModel{}).
		Select("COUNT(*) AS courses, COALESCE(SUM(students_enrolled), 0) AS students").
		Scan(&row).Error; err != nil {
		return 0, 0, errors.Wrap(err, "failed to compute course totals")
	}

	return row.Courses, row.Students, nil
}

// IncrementStudents adds one to the enrolled counter in a single atomic statement.
func (repo *courseRepository) IncrementStudents(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourseModel{}).
		Where("id = ?", id).
		UpdateColumn("students_enrolled", gorm.Expr("students_enrolled + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment enrolled students")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

// UpdateRating stores a recomputed rating aggregate.
func (repo *courseRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating entity.Rating) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CourseModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"rating_average": rating.Average,
			"rating_count":   rating.Count,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update course rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCourseNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching term anywhere, with wildcards escaped.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(term))) + "%"
}

// tagMatch matches the pattern against each tag on its own rather than the encoded array.
func tagMatch(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return `EXISTS (SELECT 1 FROM json_each(CAST(tags AS TEXT)) WHERE LOWER(json_each.value) LIKE ? ESCAPE '\')`
	}

	return `EXISTS (SELECT 1 FROM json_array_elements_text(tags) AS tag WHERE LOWER(tag) LIKE ? ESCAPE '\')`
}

func (repo *courseRepository) activeCourses(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Model(&model.CourseModel{}).Where("is_active = ?", true)
}

// --- Mapper Functions ---

// toCourseDomain converts a GORM CourseModel to a domain Course entity.
func toCourseDomain(data *model.CourseModel) *entity.Course {
	if data == nil {
		return nil
	}

	lessons := make([]entity.Lesson, 0, len(data.Lessons))
	for _, lesson := range data.Lessons {
		lessons = append(lessons, entity.Lesson{
			Title:     lesson.Title,
			Duration:  lesson.Duration,
			VideoURL:  lesson.VideoURL,
			Resources: lesson.Resources,
		})
	}

	return &entity.Course{
		ID:               data.ID,
		Name:             data.Name,
		Title:            data.Title,
		Description:      data.Description,
		Price:            data.Price,
		OriginalPrice:    data.OriginalPrice,
		Category:         entity.Category(data.Category),
		Level:            entity.Level(data.Level),
		Duration:         data.Duration,
		Instructor:       data.Instructor,
		Image:            data.Image,
		Lessons:          lessons,
		Requirements:     nonNilStrings(data.Requirements),
		LearningOutcomes: nonNilStrings(data.LearningOutcomes),
		Tags:             nonNilStrings(data.Tags),
		Rating: entity.Rating{
			Average: data.RatingAverage,
			Count:   data.RatingCount,
		},
		StudentsEnrolled: data.StudentsEnrolled,
		IsActive:         data.IsActive,
		IsFree:           data.IsFree,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toCourseDomains(models []*model.CourseModel) []*entity.Course {
	courses := make([]*entity.Course, 0, len(models))
	for _, courseM := range models {
		courses = append(courses, toCourseDomain(courseM))
	}

	return courses
}

// fromCourseDomain converts a domain Course entity to a GORM CourseModel.
func fromCourseDomain(data *entity.Course) *model.CourseModel {
	if data == nil {
		return nil
	}

	lessons := make([]model.LessonModel, 0, len(data.Lessons))
	for _, lesson := range data.Lessons {
		lessons = append(lessons, model.LessonModel{
			Title:     lesson.Title,
			Duration:  lesson.Duration,
			VideoURL:  lesson.VideoURL,
			Resources: lesson.Resources,
		})
	}

	return &model.CourseModel{
		ID:               data.ID,
		Name:             data.Name,
		Title:            data.Title,
		Description:      data.Description,
		Price:            data.Price,
		OriginalPrice:    data.OriginalPrice,
		Category:         string(data.Category),
		Level:            string(data.Level),
		Duration:         data.Duration,
		Instructor:       data.Instructor,
		Image:            data.Image,
		Lessons:          datatypes.NewJSONSlice(lessons),
		Requirements:     datatypes.NewJSONSlice(nonNilStrings(data.Requirements)),
		LearningOutcomes: datatypes.NewJSONSlice(nonNilStrings(data.LearningOutcomes)),
		Tags:             datatypes.NewJSONSlice(nonNilStrings(data.Tags)),
		RatingAverage:    data.Rating.Average,
		RatingCount:      data.Rating.Count,
		StudentsEnrolled: data.StudentsEnrolled,
		IsActive:         data.IsActive,
		IsFree:           data.IsFree,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
