package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

const attendanceDayKey = "attendance_student_week_day_key"

type weekRepository struct {
	base
}

func (r *weekRepository) Create(ctx context.Context, w *models.Week) error {
	sql, args, err := r.sb.Insert("weeks").
		Columns("week_number", "academic_year", "grade", "class_section").
		Values(w.WeekNumber, w.AcademicYear, w.Grade, w.ClassSection).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return storeError("build create week query", err)
	}

	if err := r.q.QueryRow(ctx, sql, args...).Scan(&w.ID, &w.CreatedAt); err != nil {
		r.log.Error().Err(err).Int("weekNumber", w.WeekNumber).Msg("Error executing create week query")
		return storeError("create week", err)
	}
	return nil
}

func (r *weekRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Week, error) {
	sql, args, err := r.sb.Select("id", "week_number", "academic_year", "grade", "class_section", "created_at").
		From("weeks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, storeError("build get week query", err)
	}

	var w models.Week
	err = r.q.QueryRow(ctx, sql, args...).Scan(&w.ID, &w.WeekNumber, &w.AcademicYear, &w.Grade, &w.ClassSection, &w.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrWeekNotFound
		}
		return nil, storeError("get week", err)
	}
	return &w, nil
}

type attendanceRepository struct {
	base
}

func (r *attendanceRepository) Create(ctx context.Context, a *models.Attendance) error {
	values := []interface{}{a.StudentID, a.WeekID, a.DayOfWeek}
	for _, p := range a.Periods {
		values = append(values, p)
	}

	sql, args, err := r.sb.Insert("attendance").
		Columns("student_id", "week_id", "day_of_week",
			"period_1", "period_2", "period_3", "period_4", "period_5", "period_6", "period_7").
		Values(values...).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return storeError("build create attendance query", err)
	}

	if err := r.q.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, attendanceDayKey) {
			return apperrors.NewConflictError("attendance already recorded for this student and day")
		}
		r.log.Error().Err(err).Str("studentID", a.StudentID.String()).Msg("Error executing create attendance query")
		return storeError("create attendance", err)
	}
	return nil
}

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Attendance, error) {
	sql, args, err := r.sb.Select("a.id", "a.student_id", "a.week_id", "a.day_of_week",
		"a.period_1", "a.period_2", "a.period_3", "a.period_4", "a.period_5", "a.period_6", "a.period_7",
		"a.created_at").
		From("attendance a").
		Join("weeks w ON w.id = a.week_id").
		Where(squirrel.Eq{"a.student_id": studentID}).
		OrderBy("w.week_number ASC", "a.day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, storeError("build list attendance query", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeError("list attendance", err)
	}
	defer rows.Close()

	out := make([]models.Attendance, 0)
	for rows.Next() {
		var a models.Attendance
		p := &a.Periods
		if err := rows.Scan(&a.ID, &a.StudentID, &a.WeekID, &a.DayOfWeek,
			&p[0], &p[1], &p[2], &p[3], &p[4], &p[5], &p[6], &a.CreatedAt); err != nil {
			return nil, storeError("scan attendance", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list attendance", err)
	}
	return out, nil
}
