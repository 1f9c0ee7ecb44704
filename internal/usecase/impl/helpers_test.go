package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tasktrack/config"
	"tasktrack/internal/domain/repository"
	mockRepo "tasktrack/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(env string, allowQueryToken bool) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:      10,
			AllowQueryToken: allowQueryToken,
		},
	}
	cfg.Env.Env = env

	return cfg
}

// expectTaskTx makes the transaction manager run fn against taskRepo.
func expectTaskTx(t *testing.T, txManager *mockRepo.MockTransactionManager, taskRepo repository.TaskRepository) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().TaskRepo().Return(taskRepo)

			return fn(factory)
		})
}
