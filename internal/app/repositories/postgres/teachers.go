package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
)

const teacherEmailKey = "teachers_email_key"

type teacherRepository struct {
	base
}

func (r *teacherRepository) Create(ctx context.Context, t *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("email", "password_hash", "full_name").
		Values(t.Email, t.PasswordHash, t.FullName).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return storeError("build create teacher query", err)
	}

	if err := r.q.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, teacherEmailKey) {
			return apperrors.ErrEmailAlreadyExists
		}
		r.log.Error().Err(err).Str("email", t.Email).Msg("Error executing create teacher query")
		return storeError("create teacher", err)
	}
	return nil
}

func (r *teacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	sql, args, err := r.sb.Select("id", "email", "password_hash", "full_name", "created_at").
		From("teachers").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, storeError("build get teacher query", err)
	}

	var t models.Teacher
	if err := r.q.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.Email, &t.PasswordHash, &t.FullName, &t.CreatedAt); err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, storeError("get teacher", err)
	}
	return &t, nil
}
