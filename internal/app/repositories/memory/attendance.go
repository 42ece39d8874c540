package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

type weekRepository struct {
	s *Store
}

func (t *tables) weekByID(id uuid.UUID) (models.Week, bool) {
	for _, w := range t.weeks {
		if w.ID == id {
			return w, true
		}
	}
	return models.Week{}, false
}

func (repo *weekRepository) Create(ctx context.Context, w *models.Week) error {
	return repo.s.write(ctx, "create week", func(t *tables) error {
		w.ID = uuid.New()
		w.CreatedAt = repo.s.now()
		t.weeks = append(t.weeks, *w)
		return nil
	})
}

func (repo *weekRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Week, error) {
	var out *models.Week
	err := repo.s.read(ctx, "get week", func(t *tables) error {
		w, ok := t.weekByID(id)
		if !ok {
			return apperrors.ErrWeekNotFound
		}
		out = &w
		return nil
	})
	return out, err
}

type attendanceRepository struct {
	s *Store
}

func (repo *attendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	return repo.s.write(ctx, "create attendance", func(t *tables) error {
		if _, ok := t.studentByID(a.StudentID); !ok {
			return foreignKeyError("create attendance", "student "+a.StudentID.String())
		}
		if _, ok := t.weekByID(a.WeekID); !ok {
			return foreignKeyError("create attendance", "week "+a.WeekID.String())
		}
		for _, existing := range t.attendance {
			if existing.StudentID == a.StudentID && existing.WeekID == a.WeekID && existing.DayOfWeek == a.DayOfWeek {
				return apperrors.NewConflictError("attendance already recorded for this student and day")
			}
		}

		a.ID = uuid.New()
		a.CreatedAt = repo.s.now()
		t.attendance = append(t.attendance, *a)
		return nil
	})
}

func (repo *attendanceRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Attendance, error) {
	type row struct {
		models.Attendance
		weekNumber int
	}

	var rows []row
	err := repo.s.read(ctx, "list attendance", func(t *tables) error {
		for _, a := range t.attendance {
			if a.StudentID != studentID {
				continue
			}
			w, _ := t.weekByID(a.WeekID)
			rows = append(rows, row{Attendance: a, weekNumber: w.WeekNumber})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].weekNumber != rows[j].weekNumber {
			return rows[i].weekNumber < rows[j].weekNumber
		}
		return rows[i].DayOfWeek < rows[j].DayOfWeek
	})

	out := make([]models.Attendance, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Attendance)
	}
	return out, nil
}
