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

var taskColumns = []string{
	"id", "title", "description", "due_date::text", "academic_year", "grade", "class_section", "created_at",
}

type taskRepository struct {
	base
}

func scanTask(row pgx.Row) (*models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &t.AcademicYear, &t.Grade, &t.ClassSection, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) Create(ctx context.Context, t *models.Task) error {
	sql, args, err := r.sb.Insert("tasks").
		Columns("title", "description", "due_date", "academic_year", "grade", "class_section").
		Values(t.Title, t.Description, squirrel.Expr("?::date", t.DueDate), t.AcademicYear, t.Grade, t.ClassSection).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return storeError("build create task query", err)
	}

	if err := r.q.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		r.log.Error().Err(err).Str("title", t.Title).Msg("Error executing create task query")
		return storeError("create task", err)
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	sql, args, err := r.sb.Select(taskColumns...).From("tasks").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, storeError("build get task query", err)
	}

	t, err := scanTask(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, storeError("get task", err)
	}
	return t, nil
}

func (r *taskRepository) List(ctx context.Context) ([]models.Task, error) {
	sql, args, err := r.sb.Select(taskColumns...).From("tasks").OrderBy("due_date DESC", "created_at DESC").ToSql()
	if err != nil {
		return nil, storeError("build list tasks query", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error().Err(err).Msg("Error listing tasks")
		return nil, storeError("list tasks", err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, storeError("scan task", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list tasks", err)
	}
	return tasks, nil
}

type studentTaskRepository struct {
	base
}

// CreateBatch writes every draft with a single multi-row INSERT.
func (r *studentTaskRepository) CreateBatch(ctx context.Context, drafts []models.StudentTask) ([]models.StudentTask, error) {
	if len(drafts) == 0 {
		return []models.StudentTask{}, nil
	}

	q := r.sb.Insert("student_tasks").Columns("student_id", "task_id", "status")
	for _, d := range drafts {
		q = q.Values(d.StudentID, d.TaskID, string(d.Status))
	}
	sql, args, err := q.Suffix("RETURNING id, student_id, task_id, status, created_at").ToSql()
	if err != nil {
		return nil, storeError("build create student tasks query", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		r.log.Error().Err(err).Int("count", len(drafts)).Msg("Error inserting student tasks")
		return nil, storeError("create student tasks", err)
	}
	defer rows.Close()

	created := make([]models.StudentTask, 0, len(drafts))
	for rows.Next() {
		var st models.StudentTask
		if err := rows.Scan(&st.ID, &st.StudentID, &st.TaskID, &st.Status, &st.CreatedAt); err != nil {
			return nil, storeError("scan student task", err)
		}
		created = append(created, st)
	}
	if err := rows.Err(); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			r.log.Warn().Err(err).Msg("Student task references a missing student or task")
		}
		return nil, storeError("create student tasks", err)
	}
	return created, nil
}

func (r *studentTaskRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentTask, error) {
	sql, args, err := r.sb.Select("id", "student_id", "task_id", "status", "created_at").
		From("student_tasks").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, storeError("build list student tasks query", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeError("list student tasks", err)
	}
	defer rows.Close()

	out := make([]models.StudentTask, 0)
	for rows.Next() {
		var st models.StudentTask
		if err := rows.Scan(&st.ID, &st.StudentID, &st.TaskID, &st.Status, &st.CreatedAt); err != nil {
			return nil, storeError("scan student task", err)
		}
		out = append(out, st)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list student tasks", err)
	}
	return out, nil
}

func (r *studentTaskRepository) ListDetailsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentTaskDetail, error) {
	sql, args, err := r.sb.Select(
		"st.id", "st.student_id", "st.task_id", "st.status", "st.created_at",
		"t.title", "t.description", "t.due_date::text",
	).
		From("student_tasks st").
		Join("tasks t ON t.id = st.task_id").
		Where(squirrel.Eq{"st.student_id": studentID}).
		OrderBy("t.due_date DESC").
		ToSql()
	if err != nil {
		return nil, storeError("build list student task details query", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, storeError("list student task details", err)
	}
	defer rows.Close()

	out := make([]models.StudentTaskDetail, 0)
	for rows.Next() {
		var d models.StudentTaskDetail
		if err := rows.Scan(&d.ID, &d.StudentID, &d.TaskID, &d.Status, &d.CreatedAt, &d.Title, &d.Description, &d.DueDate); err != nil {
			return nil, storeError("scan student task detail", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list student task details", err)
	}
	return out, nil
}
