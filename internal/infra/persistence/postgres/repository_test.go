package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tasktrack/internal/domain/entity"
	"tasktrack/internal/infra/persistence/model"
)

// newDryRunDB builds a gorm handle that renders SQL without a server.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	return db
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term     string
		expected string
	}{
		{term: "groceries", expected: "%groceries%"},
		{term: "50%", expected: `%50\%%`},
		{term: "snake_case", expected: `%snake\_case%`},
		{term: `C:\tmp`, expected: `%C:\\tmp%`},
		{term: "a.*b", expected: "%a.*b%"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.expected, containsPattern(tt.term))
		})
	}
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "created_at DESC, id DESC", orderClause(entity.TaskSortLatest))
	assert.Equal(t, "created_at DESC, id DESC", orderClause(""))
	assert.Equal(t, "created_at ASC, id ASC", orderClause(entity.TaskSortOldest))
}

func TestUserMappers(t *testing.T) {
	local := &entity.User{
		ID:           uuid.New(),
		Firstname:    "Ann",
		Lastname:     "Lee",
		Email:        "ann@example.com",
		PasswordHash: "$2a$10$hash",
	}

	m := fromUserDomain(local)
	require.NotNil(t, m.PasswordHash)
	assert.Nil(t, m.GoogleID, "empty google id must be stored as NULL")

	back := toUserDomain(m)
	assert.Equal(t, local.Email, back.Email)
	assert.Equal(t, local.PasswordHash, back.PasswordHash)
	assert.Empty(t, back.GoogleID)
	assert.True(t, back.HasPassword())
	assert.False(t, back.HasExternalIdentity())

	google := fromUserDomain(&entity.User{Email: "g@example.com", GoogleID: "g-1"})
	assert.Nil(t, google.PasswordHash)
	assert.Equal(t, "g-1", *google.GoogleID)

	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestTaskMappers(t *testing.T) {
	owner := uuid.New()
	m := fromTaskDomain(&entity.Task{Title: "Write report", Description: "Q3", UserID: owner})
	assert.Equal(t, string(entity.TaskStatusCreated), m.Status)

	now := time.Now()
	task := toTaskDomain(&model.TaskModel{
		ID:          uuid.New(),
		Title:       "Write report",
		Description: "Q3",
		Status:      "INPROGRESS",
		UserID:      owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	assert.Equal(t, entity.TaskStatusInProgress, task.Status)
	assert.Equal(t, owner, task.UserID)
}

func TestTaskListQueryIsScopedToOwner(t *testing.T) {
	db := newDryRunDB(t)
	owner := uuid.New()

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		pattern := containsPattern("report")
		var rows []model.TaskModel

		return tx.Where("user_id = ?", owner).
			Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern).
			Order(orderClause(entity.TaskSortOldest)).
			Find(&rows)
	})

	assert.Contains(t, sql, `FROM "tasks"`)
	assert.Contains(t, sql, owner.String())
	assert.Contains(t, sql, "ILIKE '%report%'")
	assert.Contains(t, sql, "ORDER BY created_at ASC, id ASC")
}
