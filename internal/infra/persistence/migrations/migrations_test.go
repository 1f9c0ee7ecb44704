package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	sub, err := Source()
	require.NoError(t, err)

	entries, err := fs.ReadDir(sub, ".")
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), ".up.sql"):
			ups++
			down := strings.TrimSuffix(entry.Name(), ".up.sql") + ".down.sql"
			_, statErr := fs.Stat(sub, down)
			assert.NoError(t, statErr, "missing %s", down)
		case strings.HasSuffix(entry.Name(), ".down.sql"):
			downs++
		}
	}

	assert.Equal(t, 2, ups)
	assert.Equal(t, ups, downs)
}

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	driver, err := iofs.New(sqlFS, "sql")
	require.NoError(t, err)
	defer driver.Close()

	first, err := driver.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	next, err := driver.Next(first)
	require.NoError(t, err)
	assert.Equal(t, uint(2), next)
}

func TestTasksMigrationEnforcesOwnerTitleUniqueness(t *testing.T) {
	sub, err := Source()
	require.NoError(t, err)

	body, err := fs.ReadFile(sub, "000002_create_tasks.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "ON tasks (user_id, title)")
}
