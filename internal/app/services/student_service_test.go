package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

func studentInput(name, nationalID string, c models.Cohort) StudentInput {
	return StudentInput{
		FullName:     name,
		NationalID:   nationalID,
		AcademicYear: c.AcademicYear,
		Grade:        c.Grade,
		ClassSection: c.ClassSection,
	}
}

func TestCreateStudent(t *testing.T) {
	svc := NewStudentService(newMemoryStore(), testPolicy, nop)
	ctx := context.Background()

	st, err := svc.CreateStudent(ctx, studentInput("Adam", "1", firstA))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, st.ID)

	got, err := svc.GetStudent(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Adam", got.FullName)

	_, err = svc.CreateStudent(ctx, studentInput("Other", "1", firstA))
	assert.ErrorIs(t, err, apperrors.ErrNationalIDExists)

	_, err = svc.CreateStudent(ctx, studentInput("", "2", firstA))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetStudentNotFound(t *testing.T) {
	svc := NewStudentService(newMemoryStore(), testPolicy, nop)
	_, err := svc.GetStudent(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestListStudentsPaginatesWithinCohort(t *testing.T) {
	svc := NewStudentService(newMemoryStore(), testPolicy, nop)
	ctx := context.Background()
	for i, name := range []string{"Zeina", "Adam", "Mariam"} {
		_, err := svc.CreateStudent(ctx, studentInput(name, string(rune('a'+i)), firstA))
		require.NoError(t, err)
	}
	_, err := svc.CreateStudent(ctx, studentInput("Basma", "z", secondA))
	require.NoError(t, err)

	page, err := svc.ListStudents(ctx, models.CohortFilter(firstA), 1, 2)
	require.NoError(t, err)
	require.Len(t, page.Students, 2)
	assert.Equal(t, "Adam", page.Students[0].FullName)
	assert.Equal(t, "Mariam", page.Students[1].FullName)
	assert.Equal(t, int64(3), page.PaginationInfo.TotalItems)
	assert.Equal(t, 2, page.PaginationInfo.TotalPages)

	page, err = svc.ListStudents(ctx, models.CohortFilter(firstA), 2, 2)
	require.NoError(t, err)
	require.Len(t, page.Students, 1)
	assert.Equal(t, "Zeina", page.Students[0].FullName)

	all, err := svc.ListStudents(ctx, models.StudentFilter{}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, all.Students, 4)
}
