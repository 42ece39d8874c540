package memory

import (
	"context"
	"slices"
	"sort"

	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

type taskRepository struct {
	s *Store
}

func (t *tables) taskByID(id uuid.UUID) (models.Task, bool) {
	for _, task := range t.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}

func (repo *taskRepository) Create(ctx context.Context, task *models.Task) error {
	return repo.s.write(ctx, "create task", func(t *tables) error {
		task.ID = uuid.New()
		task.CreatedAt = repo.s.now()
		t.tasks = append(t.tasks, *task)
		return nil
	})
}

func (repo *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var out *models.Task
	err := repo.s.read(ctx, "get task", func(t *tables) error {
		task, ok := t.taskByID(id)
		if !ok {
			return apperrors.ErrTaskNotFound
		}
		out = &task
		return nil
	})
	return out, err
}

// List orders by due date descending; ties go to the most recently created.
func (repo *taskRepository) List(ctx context.Context) ([]models.Task, error) {
	var out []models.Task
	err := repo.s.read(ctx, "list tasks", func(t *tables) error {
		out = slices.Clone(t.tasks)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		return []models.Task{}, nil
	}

	slices.Reverse(out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate > out[j].DueDate })
	return out, nil
}

type studentTaskRepository struct {
	s *Store
}

// CreateBatch inserts every draft or none of them.
func (repo *studentTaskRepository) CreateBatch(ctx context.Context, drafts []models.StudentTask) ([]models.StudentTask, error) {
	created := make([]models.StudentTask, 0, len(drafts))
	err := repo.s.write(ctx, "create student tasks", func(t *tables) error {
		for _, d := range drafts {
			if _, ok := t.studentByID(d.StudentID); !ok {
				return foreignKeyError("create student tasks", "student "+d.StudentID.String())
			}
			if _, ok := t.taskByID(d.TaskID); !ok {
				return foreignKeyError("create student tasks", "task "+d.TaskID.String())
			}
		}

		now := repo.s.now()
		for _, d := range drafts {
			d.ID = uuid.New()
			d.CreatedAt = now
			created = append(created, d)
		}
		t.studentTasks = append(t.studentTasks, created...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (repo *studentTaskRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentTask, error) {
	out := make([]models.StudentTask, 0)
	err := repo.s.read(ctx, "list student tasks", func(t *tables) error {
		for _, st := range t.studentTasks {
			if st.StudentID == studentID {
				out = append(out, st)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (repo *studentTaskRepository) ListDetailsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentTaskDetail, error) {
	out := make([]models.StudentTaskDetail, 0)
	err := repo.s.read(ctx, "list student task details", func(t *tables) error {
		for _, st := range t.studentTasks {
			if st.StudentID != studentID {
				continue
			}
			task, ok := t.taskByID(st.TaskID)
			if !ok {
				continue
			}
			out = append(out, models.StudentTaskDetail{
				StudentTask: st,
				Title:       task.Title,
				Description: task.Description,
				DueDate:     task.DueDate,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate > out[j].DueDate })
	return out, nil
}
