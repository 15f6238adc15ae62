package db

import (
	"os"
	"testing"

	"deepsheep/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	defer util.SetEnv("SHEEPSHEAD_CONFIG_FILE", "testdata/does-not-exist.yaml")()

	if _, found := os.LookupEnv("PG_DSN"); !found {
		assert.Equal(t, "postgres://postgres@localhost:5432/postgres?sslmode=disable", DSN())
	}

	defer util.SetEnv("PG_DSN", "postgres://sheep@db/sheep")()
	assert.Equal(t, "postgres://sheep@db/sheep", DSN())
}

func TestMigrate(t *testing.T) {
	if os.Getenv("PG_DSN") == "" {
		t.Skip("PG_DSN is not set")
	}

	defer util.SetEnv("MIGRATIONS_PATH", "../../sql")()
	assert.NoError(t, Migrate())

	// running again is a no-op
	assert.NoError(t, Migrate())

	var n int
	assert.NoError(t, Instance().QueryRow(`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'hands'`).Scan(&n))
	assert.Equal(t, 1, n)
}
