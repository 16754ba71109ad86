package postgres

import (
	"context"
	"testing"
	"time"

	"booksy/internal/domain/entity"
	"booksy/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseRepo(t *testing.T) *courseRepository {
	t.Helper()

	return NewCourseRepository(newTestDB(t)).(*courseRepository)
}

func courseNames(courses []*entity.Course) []string {
	names := make([]string, 0, len(courses))
	for _, c := range courses {
		names = append(names, c.Name)
	}

	return names
}

func TestCourseRepository_CreateAppliesPricingRules(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	free := seedCourse(t, repo, "Intro", withCategory(entity.CategoryFree), withPrice(30))
	paid := seedCourse(t, repo, "Go", withPrice(99))

	stored, err := repo.FindByID(ctx, free.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsFree)
	assert.Equal(t, entity.FreePrice, stored.Price)
	assert.Zero(t, stored.OriginalPrice)

	stored, err = repo.FindByID(ctx, paid.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsFree)
	assert.Equal(t, "$99", stored.Price)
	assert.Equal(t, 99.0, stored.OriginalPrice)
	assert.Empty(t, stored.Tags)
	assert.NotNil(t, stored.Tags)
}

func TestCourseRepository_UpdateKeepsCounters(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	course := seedCourse(t, repo, "Go", withPrice(99), withStudents(7), withRating(4.5, 2))

	course.IsFree = true
	course.StudentsEnrolled = 0
	course.Rating = entity.Rating{}
	require.NoError(t, repo.Update(ctx, course))

	stored, err := repo.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryFree, stored.Category)
	assert.Equal(t, entity.FreePrice, stored.Price)
	assert.Zero(t, stored.OriginalPrice)
	assert.Equal(t, 7, stored.StudentsEnrolled)
	assert.Equal(t, entity.Rating{Average: 4.5, Count: 2}, stored.Rating)
}

func TestCourseRepository_UpdateAndDeleteMissing(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	missing := &entity.Course{ID: uuid.New(), Name: "x", Title: "x", Description: "x", Category: entity.CategoryDesign}
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrCourseNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, missing.ID), repository.ErrCourseNotFound)

	_, err := repo.FindByID(ctx, missing.ID)
	assert.ErrorIs(t, err, repository.ErrCourseNotFound)
}

func TestCourseRepository_ListFiltersByCategoryAndPrice(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	seedCourse(t, repo, "A", withPrice(40), withCreatedAt(base))
	seedCourse(t, repo, "B", withPrice(99), withCreatedAt(base.Add(time.Hour)))
	seedCourse(t, repo, "C", withPrice(150), withCreatedAt(base.Add(2*time.Hour)))
	seedCourse(t, repo, "D", withPrice(99), withCategory(entity.CategoryDesign), withCreatedAt(base.Add(3*time.Hour)))
	seedCourse(t, repo, "E", withPrice(120), inactive(), withCreatedAt(base.Add(4*time.Hour)))

	minPrice, maxPrice := 50.0, 150.0
	page, err := repo.List(ctx, entity.CourseFilter{
		Category:   string(entity.CategoryTechnology),
		MinPrice:   &minPrice,
		MaxPrice:   &maxPrice,
		SortBy:     entity.SortByCreatedAt,
		Descending: true,
		Page:       1,
		PageSize:   12,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, []string{"C", "B"}, courseNames(page.Courses))
}

func TestCourseRepository_ListSearchAndPagination(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	seedCourse(t, repo, "Golang Basics", withStudents(10))
	seedCourse(t, repo, "Rust", withTags("systems", "golang-adjacent"), withStudents(30))
	seedCourse(t, repo, "Painting", withCategory(entity.CategoryDesign), withStudents(20))

	page, err := repo.List(ctx, entity.CourseFilter{
		Category:   entity.FilterAll,
		Search:     "GOLANG",
		SortBy:     entity.SortByStudentsEnrolled,
		Descending: true,
		Page:       1,
		PageSize:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, []string{"Rust"}, courseNames(page.Courses))

	page, err = repo.List(ctx, entity.CourseFilter{
		Search:     "golang",
		SortBy:     entity.SortByStudentsEnrolled,
		Descending: true,
		Page:       2,
		PageSize:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Golang Basics"}, courseNames(page.Courses))
}

func TestCourseRepository_SearchMatchesTagValues(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	seedCourse(t, repo, "Alpha", withTags("R&D"), withStudents(20))
	seedCourse(t, repo, "Beta", withTags("x", "y"), withStudents(10))

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "tag with html characters", search: "r&d", want: []string{"Alpha"}},
		{name: "single tag case insensitive", search: "X", want: []string{"Beta"}},
		{name: "json punctuation", search: `","`, want: []string{}},
		{name: "underscore is literal", search: "_", want: []string{}},
		{name: "percent is literal", search: "%", want: []string{}},
		{name: "backslash is literal", search: `\`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := repo.List(ctx, entity.CourseFilter{
				Search:     tt.search,
				SortBy:     entity.SortByStudentsEnrolled,
				Descending: true,
				Page:       1,
				PageSize:   10,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, courseNames(page.Courses))

			suggestions, err := repo.Suggest(ctx, tt.search, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.want, courseNames(suggestions))
		})
	}
}

func TestCourseRepository_FeaturedFreeAndRelated(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	top := seedCourse(t, repo, "Top", withRating(4.8, 10), withStudents(500))
	seedCourse(t, repo, "Unpopular", withRating(4.9, 3), withStudents(10))
	seedCourse(t, repo, "Free", withCategory(entity.CategoryFree), withStudents(80))
	seedCourse(t, repo, "Sibling", withStudents(5))

	featured, err := repo.FindFeatured(ctx, 4.5, 100, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"Top"}, courseNames(featured))

	free, err := repo.FindFree(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"Free"}, courseNames(free))

	related, err := repo.FindRelated(ctx, entity.CategoryTechnology, top.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"Unpopular", "Sibling"}, courseNames(related))
}

func TestCourseRepository_Aggregates(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	seedCourse(t, repo, "A", withPrice(20), withStudents(10), withRating(4.0, 1))
	seedCourse(t, repo, "B", withPrice(80), withStudents(30), withRating(5.0, 1))
	seedCourse(t, repo, "C", withCategory(entity.CategoryDesign), withPrice(60), withStudents(5))

	facets, err := repo.Facets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Design", "Technology"}, facets.Categories)
	assert.Equal(t, []string{"Beginner"}, facets.Levels)
	assert.Equal(t, 20.0, facets.MinPrice)
	assert.Equal(t, 80.0, facets.MaxPrice)

	summaries, err := repo.CategorySummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Technology", summaries[0].Category)
	assert.Equal(t, int64(2), summaries[0].Count)
	assert.Equal(t, int64(40), summaries[0].TotalStudents)
	assert.Equal(t, 4.5, summaries[0].AverageRating)

	courses, students, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), courses)
	assert.Equal(t, int64(45), students)
}

func TestCourseRepository_CountersAndLocking(t *testing.T) {
	db := newTestDB(t)
	repo := NewCourseRepository(db).(*courseRepository)
	ctx := context.Background()

	course := seedCourse(t, repo, "Go", withRating(4.0, 2))

	require.NoError(t, repo.IncrementStudents(ctx, course.ID))
	require.NoError(t, repo.IncrementStudents(ctx, course.ID))
	assert.ErrorIs(t, repo.IncrementStudents(ctx, uuid.New()), repository.ErrCourseNotFound)

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		txRepo := factory.NewCourseRepository()
		locked, err := txRepo.FindByIDForUpdate(ctx, course.ID)
		if err != nil {
			return err
		}

		return txRepo.UpdateRating(ctx, locked.ID, locked.Rating.Add(5))
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.StudentsEnrolled)
	assert.Equal(t, entity.Rating{Average: 4.3, Count: 3}, stored.Rating)
}

func TestCourseRepository_FindByIDsSkipsMissing(t *testing.T) {
	repo := newCourseRepo(t)
	ctx := context.Background()

	course := seedCourse(t, repo, "Go")

	courses, err := repo.FindByIDs(ctx, []uuid.UUID{course.ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, courseNames(courses))

	courses, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, courses)
}
