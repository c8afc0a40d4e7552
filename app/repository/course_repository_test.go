package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkoopman/lexcursus/app/models"
)

func outlineFixture() []models.CourseModule {
	return []models.CourseModule{
		{
			ID: 1, Title: "Module 1", SortOrder: 1,
			Lessons: []models.Lesson{
				{ID: 1, ModuleID: 1, SortOrder: 1},
				{ID: 2, ModuleID: 1, SortOrder: 2},
			},
		},
		{
			ID: 2, Title: "Module 2", SortOrder: 2,
			Lessons: []models.Lesson{
				{ID: 3, ModuleID: 2, SortOrder: 1},
			},
		},
	}
}

func TestOrderedLessons(t *testing.T) {
	ordered := orderedLessons(outlineFixture())
	require.Len(t, ordered, 3)
	assert.Equal(t, uint(1), ordered[0].ID)
	assert.Equal(t, uint(2), ordered[1].ID)
	assert.Equal(t, uint(3), ordered[2].ID)
}

func TestNeighbourLessons(t *testing.T) {
	ordered := orderedLessons(outlineFixture())

	prev, next := neighbourLessons(ordered, 1)
	assert.Nil(t, prev, "first lesson has no predecessor")
	require.NotNil(t, next)
	assert.Equal(t, uint(2), next.ID)

	// navigation crosses the module boundary
	prev, next = neighbourLessons(ordered, 2)
	require.NotNil(t, prev)
	assert.Equal(t, uint(1), prev.ID)
	require.NotNil(t, next)
	assert.Equal(t, uint(3), next.ID)

	prev, next = neighbourLessons(ordered, 3)
	require.NotNil(t, prev)
	assert.Equal(t, uint(2), prev.ID)
	assert.Nil(t, next, "last lesson has no successor")
}

func TestNeighbourLessons_UnknownLesson(t *testing.T) {
	prev, next := neighbourLessons(orderedLessons(outlineFixture()), 99)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}
