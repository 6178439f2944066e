package service

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

var (
	// ErrTaskNotFound is returned when a task does not exist or belongs
	// to another user. The two cases are deliberately indistinguishable.
	ErrTaskNotFound = errors.New("task not found")
	// ErrTitleRequired is returned when creating a task without a title.
	ErrTitleRequired = errors.New("title is required")
)

// TaskService coordinates task operations backed by the repository.
// Every operation is scoped to the authenticated user's own tasks.
type TaskService interface {
	CreateTask(ctx context.Context, userID int64, title string) (*domain.Task, error)
	GetTask(ctx context.Context, userID, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context, userID int64) ([]domain.Task, error)
	UpdateTask(ctx context.Context, userID, id int64, update repository.TaskUpdate) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) CreateTask(ctx context.Context, userID int64, title string) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}

	task := &domain.Task{
		UserID:    userID,
		Title:     title,
		Completed: false,
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, id int64) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID int64) ([]domain.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) UpdateTask(ctx context.Context, userID, id int64, update repository.TaskUpdate) (*domain.Task, error) {
	task, err := s.tasks.Update(ctx, userID, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID, id int64) error {
	if err := s.tasks.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
