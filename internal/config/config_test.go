package config

import (
	"os"
	"testing"

	"deepsheep/internal/util"
	"deepsheep/pkg/sheepshead"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	defer util.SetEnv("SHEEPSHEAD_CONFIG_FILE", "testdata/config.yaml")()
	defer util.SetEnv("SHEEPSHEAD_LOG_FORMAT", "json")()
	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal(4, cfg.Rules.NumPlayers)
	a.Equal(sheepshead.NoPartner, cfg.Rules.PartnerMethod)
	a.Equal(sheepshead.Doubler, cfg.Rules.NoPickerResult)
	a.Equal("postgres://sheep@db:5432/sheep?sslmode=disable", cfg.PGDSN)
	a.True(cfg.Archive)
	a.Equal("debug", cfg.Log.Level)
	a.Equal("json", cfg.Log.Format)
	a.Equal(1000, cfg.Learner.Iterations)

	// values not in the file keep their defaults
	a.Equal("./sql", cfg.MigrationsPath)
	a.Equal(0.05, cfg.Learner.LearnRate)

	// ensure that it's only loaded once
	_ = os.Setenv("SHEEPSHEAD_LOG_FORMAT", "text")
	// ensure we aren't using a pointer
	cfg.Log.Format = "bad"
	cfg = Instance()
	a.Equal("json", cfg.Log.Format)
}

func TestLoad_missingFile(t *testing.T) {
	defer util.SetEnv("SHEEPSHEAD_CONFIG_FILE", "testdata/does-not-exist.yaml")()
	defer util.SetEnv("SHEEPSHEAD_RULES_TRUMP_SUIT", "clubs")()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 5, cfg.Rules.NumPlayers)
	assert.Equal(t, sheepshead.PartnerByCalledAce, cfg.Rules.PartnerMethod)
	assert.EqualValues(t, "clubs", cfg.Rules.TrumpSuit)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_invalidRules(t *testing.T) {
	defer util.SetEnv("SHEEPSHEAD_CONFIG_FILE", "testdata/invalid.yaml")()

	err := Load()
	assert.Equal(t, sheepshead.RulesError{Field: "numPlayers", Value: 6}, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Rules.Validate())
	assert.Equal(t, sheepshead.DefaultRules(), cfg.Rules)
	assert.False(t, cfg.loaded)
}
