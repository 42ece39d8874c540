package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

type studentRepository struct {
	s *Store
}

func (t *tables) studentByID(id uuid.UUID) (models.Student, bool) {
	for _, st := range t.students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

func (repo *studentRepository) Create(ctx context.Context, s *models.Student) error {
	return repo.s.write(ctx, "create student", func(t *tables) error {
		for _, existing := range t.students {
			if existing.NationalID == s.NationalID {
				return apperrors.ErrNationalIDExists
			}
		}
		s.ID = uuid.New()
		s.CreatedAt = repo.s.now()
		t.students = append(t.students, *s)
		return nil
	})
}

func (repo *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	var out *models.Student
	err := repo.s.read(ctx, "get student", func(t *tables) error {
		st, ok := t.studentByID(id)
		if !ok {
			return apperrors.ErrStudentNotFound
		}
		out = &st
		return nil
	})
	return out, err
}

func (repo *studentRepository) GetByNationalID(ctx context.Context, nationalID string) (*models.Student, error) {
	var out *models.Student
	err := repo.s.read(ctx, "get student", func(t *tables) error {
		for _, st := range t.students {
			if st.NationalID == nationalID {
				st := st
				out = &st
				return nil
			}
		}
		return apperrors.ErrStudentNotFound
	})
	return out, err
}

func (repo *studentRepository) query(t *tables, f models.StudentFilter) []models.Student {
	students := make([]models.Student, 0, len(t.students))
	for _, st := range t.students {
		if f.Accepts(st) {
			students = append(students, st)
		}
	}
	return students
}

func (repo *studentRepository) List(ctx context.Context, f models.StudentFilter) ([]models.Student, error) {
	var out []models.Student
	err := repo.s.read(ctx, "list students", func(t *tables) error {
		out = repo.query(t, f)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []models.Student{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(out) {
		out = out[:f.Limit]
	}
	return out, nil
}

func (repo *studentRepository) Count(ctx context.Context, f models.StudentFilter) (int64, error) {
	var n int64
	err := repo.s.read(ctx, "count students", func(t *tables) error {
		n = int64(len(repo.query(t, f)))
		return nil
	})
	return n, err
}

type teacherRepository struct {
	s *Store
}

func (repo *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	return repo.s.write(ctx, "create teacher", func(t *tables) error {
		for _, existing := range t.teachers {
			if existing.Email == teacher.Email {
				return apperrors.ErrEmailAlreadyExists
			}
		}
		teacher.ID = uuid.New()
		teacher.CreatedAt = repo.s.now()
		t.teachers = append(t.teachers, *teacher)
		return nil
	})
}

func (repo *teacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var out *models.Teacher
	err := repo.s.read(ctx, "get teacher", func(t *tables) error {
		for _, teacher := range t.teachers {
			if teacher.Email == email {
				teacher := teacher
				out = &teacher
				return nil
			}
		}
		return apperrors.ErrTeacherNotFound
	})
	return out, err
}
