package api

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/repository"
)

type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	tasks map[uuid.UUID]*entity.Task
}

func newMemStore() *memStore {
	return &memStore{
		users: map[uuid.UUID]*entity.User{},
		tasks: map[uuid.UUID]*entity.Task{},
	}
}

type memUserRepo struct{ store *memStore }

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if user, ok := r.store.users[id]; ok {
		clone := *user

		return &clone, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r memUserRepo) FindByGoogleID(_ context.Context, googleID string) (*entity.User, error) {
	if googleID == "" {
		return nil, repository.ErrUserNotFound
	}

	return r.find(func(u *entity.User) bool { return u.GoogleID == googleID })
}

func (r memUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if match(user) {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailAlreadyRegistered
		}
	}

	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.store.users[user.ID] = &clone

	return nil
}

type memTaskRepo struct{ store *memStore }

func (r memTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task.ID = uuid.New()
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	clone := *task
	r.store.tasks[task.ID] = &clone

	return nil
}

func (r memTaskRepo) FindByTitle(_ context.Context, userID uuid.UUID, title string) (*entity.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, task := range r.store.tasks {
		if task.UserID == userID && task.Title == title {
			clone := *task

			return &clone, nil
		}
	}

	return nil, repository.ErrTaskNotFound
}

func (r memTaskRepo) FindByID(_ context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task, ok := r.store.tasks[taskID]
	if !ok || task.UserID != userID {
		return nil, repository.ErrTaskNotFound
	}
	clone := *task

	return &clone, nil
}

func (r memTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return repository.ErrTaskNotFound
	}
	task.UpdatedAt = time.Now()
	clone := *task
	r.store.tasks[task.ID] = &clone

	return nil
}

func (r memTaskRepo) Delete(_ context.Context, userID, taskID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	task, ok := r.store.tasks[taskID]
	if !ok || task.UserID != userID {
		return repository.ErrTaskNotFound
	}
	delete(r.store.tasks, taskID)

	return nil
}

func (r memTaskRepo) List(_ context.Context, filter entity.TaskFilter) ([]*entity.Task, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	term := strings.ToLower(filter.Search)
	var tasks []*entity.Task
	for _, task := range r.store.tasks {
		if task.UserID != filter.UserID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(task.Title), term) &&
			!strings.Contains(strings.ToLower(task.Description), term) {
			continue
		}
		clone := *task
		tasks = append(tasks, &clone)
	}

	slices.SortFunc(tasks, func(a, b *entity.Task) int {
		if filter.Sort == entity.TaskSortOldest {
			return a.CreatedAt.Compare(b.CreatedAt)
		}

		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return tasks, nil
}

type memFactory struct{ store *memStore }

func (f memFactory) UserRepo() repository.UserRepository { return memUserRepo(f) }

func (f memFactory) TaskRepo() repository.TaskRepository { return memTaskRepo(f) }

type memTxManager struct{ store *memStore }

func (m memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memFactory(m))
}

// fakeVerifier returns a fixed profile for any non-empty access token.
type fakeVerifier struct {
	profile *entity.ExternalProfile
}

func (v fakeVerifier) FetchProfile(_ context.Context, accessToken string) (*entity.ExternalProfile, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrProviderRejected
	}
	clone := *v.profile

	return &clone, nil
}

func (v fakeVerifier) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}
