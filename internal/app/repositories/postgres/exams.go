package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

const studentExamKey = "student_exams_student_exam_key"

type examRepository struct {
	base
}

func (r *examRepository) Create(ctx context.Context, e *models.Exam) error {
	sql, args, err := r.sb.Insert("exams").
		Columns("exam_name", "exam_date", "duration", "academic_year", "grade", "class_section").
		Values(e.ExamName, squirrel.Expr("?::date", e.ExamDate), e.DurationMinutes, e.AcademicYear, e.Grade, e.ClassSection).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return storeError("build create exam query", err)
	}

	if err := r.q.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		r.log.Error().Err(err).Str("examName", e.ExamName).Msg("Error executing create exam query")
		return storeError("create exam", err)
	}
	return nil
}

func (r *examRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Exam, error) {
	sql, args, err := r.sb.Select("id", "exam_name", "exam_date::text", "duration", "academic_year", "grade", "class_section", "created_at").
		From("exams").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, storeError("build get exam query", err)
	}

	var e models.Exam
	err = r.q.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.ExamName, &e.ExamDate, &e.DurationMinutes,
		&e.AcademicYear, &e.Grade, &e.ClassSection, &e.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrExamNotFound
		}
		return nil, storeError("get exam", err)
	}
	return &e, nil
}

func (r *examRepository) CreateResult(ctx context.Context, res *models.StudentExam) error {
	sql, args, err := r.sb.Insert("student_exams").
		Columns("student_id", "exam_id", "score", "passed", "grade_rating").
		Values(res.StudentID, res.ExamID, res.Score, res.Passed, res.GradeRating).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return storeError("build create exam result query", err)
	}

	if err := r.q.QueryRow(ctx, sql, args...).Scan(&res.ID, &res.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentExamKey) {
			return apperrors.NewConflictError("result already recorded for this student and exam")
		}
		r.log.Error().Err(err).Str("examID", res.ExamID.String()).Msg("Error executing create exam result query")
		return storeError("create exam result", err)
	}
	return nil
}

func (r *examRepository) ListResultsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentExam, error) {
	sql, args, err := r.sb.Select("id", "student_id", "exam_id", "score", "passed", "grade_rating", "created_at").
		From("student_exams").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, storeError("build list exam results query", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeError("list exam results", err)
	}
	defer rows.Close()

	out := make([]models.StudentExam, 0)
	for rows.Next() {
		var se models.StudentExam
		if err := rows.Scan(&se.ID, &se.StudentID, &se.ExamID, &se.Score, &se.Passed, &se.GradeRating, &se.CreatedAt); err != nil {
			return nil, storeError("scan exam result", err)
		}
		out = append(out, se)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list exam results", err)
	}
	return out, nil
}
