package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

const studentNationalIDKey = "students_national_id_key"

var studentColumns = []string{
	"id", "full_name", "national_id", "academic_year", "grade", "class_section", "guardian_phone", "created_at",
}

type studentRepository struct {
	base
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.FullName, &s.NationalID, &s.AcademicYear, &s.Grade, &s.ClassSection, &s.GuardianPhone, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func applyStudentFilter(q squirrel.SelectBuilder, f models.StudentFilter) squirrel.SelectBuilder {
	if f.AcademicYear != nil {
		q = q.Where(squirrel.Eq{"academic_year": *f.AcademicYear})
	}
	if f.Grade != nil {
		q = q.Where(squirrel.Eq{"grade": *f.Grade})
	}
	if f.ClassSection != nil {
		q = q.Where(squirrel.Eq{"class_section": *f.ClassSection})
	}
	return q
}

func (r *studentRepository) Create(ctx context.Context, s *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("full_name", "national_id", "academic_year", "grade", "class_section", "guardian_phone").
		Values(s.FullName, s.NationalID, s.AcademicYear, s.Grade, s.ClassSection, s.GuardianPhone).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return storeError("build create student query", err)
	}

	if err := r.q.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentNationalIDKey) {
			r.log.Warn().Str("nationalID", s.NationalID).Msg("Attempted to create student with duplicate national ID")
			return apperrors.ErrNationalIDExists
		}
		r.log.Error().Err(err).Msg("Error executing create student query")
		return storeError("create student", err)
	}

	return nil
}

func (r *studentRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).From("students").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, storeError("build get student query", err)
	}

	s, err := scanStudent(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		r.log.Error().Err(err).Msg("Error scanning student row")
		return nil, storeError("get student", err)
	}
	return s, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

func (r *studentRepository) GetByNationalID(ctx context.Context, nationalID string) (*models.Student, error) {
	return r.getBy(ctx, squirrel.Eq{"national_id": nationalID})
}

func (r *studentRepository) List(ctx context.Context, f models.StudentFilter) ([]models.Student, error) {
	q := applyStudentFilter(r.sb.Select(studentColumns...).From("students"), f).OrderBy("full_name ASC", "id ASC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, storeError("build list students query", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error().Err(err).Msg("Error listing students")
		return nil, storeError("list students", err)
	}
	defer rows.Close()

	students := make([]models.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, storeError("scan student", err)
		}
		students = append(students, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list students", err)
	}

	return students, nil
}

func (r *studentRepository) Count(ctx context.Context, f models.StudentFilter) (int64, error) {
	sql, args, err := applyStudentFilter(r.sb.Select("COUNT(*)").From("students"), f).ToSql()
	if err != nil {
		return 0, storeError("build count students query", err)
	}

	var n int64
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, storeError("count students", err)
	}
	return n, nil
}
