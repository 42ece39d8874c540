package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

type examRepository struct {
	s *Store
}

func (t *tables) examByID(id uuid.UUID) (models.Exam, bool) {
	for _, e := range t.exams {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exam{}, false
}

func (repo *examRepository) Create(ctx context.Context, e *models.Exam) error {
	return repo.s.write(ctx, "create exam", func(t *tables) error {
		e.ID = uuid.New()
		e.CreatedAt = repo.s.now()
		t.exams = append(t.exams, *e)
		return nil
	})
}

func (repo *examRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Exam, error) {
	var out *models.Exam
	err := repo.s.read(ctx, "get exam", func(t *tables) error {
		e, ok := t.examByID(id)
		if !ok {
			return apperrors.ErrExamNotFound
		}
		out = &e
		return nil
	})
	return out, err
}

func (repo *examRepository) CreateResult(ctx context.Context, r *models.StudentExam) error {
	return repo.s.write(ctx, "create exam result", func(t *tables) error {
		if _, ok := t.studentByID(r.StudentID); !ok {
			return foreignKeyError("create exam result", "student "+r.StudentID.String())
		}
		if _, ok := t.examByID(r.ExamID); !ok {
			return foreignKeyError("create exam result", "exam "+r.ExamID.String())
		}
		for _, existing := range t.studentExams {
			if existing.StudentID == r.StudentID && existing.ExamID == r.ExamID {
				return apperrors.NewConflictError("result already recorded for this student and exam")
			}
		}

		r.ID = uuid.New()
		r.CreatedAt = repo.s.now()
		t.studentExams = append(t.studentExams, *r)
		return nil
	})
}

func (repo *examRepository) ListResultsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentExam, error) {
	out := make([]models.StudentExam, 0)
	err := repo.s.read(ctx, "list exam results", func(t *tables) error {
		for _, r := range t.studentExams {
			if r.StudentID == studentID {
				out = append(out, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
