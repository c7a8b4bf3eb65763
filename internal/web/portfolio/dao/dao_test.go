package dao

import (
	"context"
	"os"
	"testing"

	gconfig "github.com/Laisky/go-config/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/stretchr/testify/require"

	"github.com/Laisky/laisky-portfolio-api/library/config"
	"github.com/Laisky/laisky-portfolio-api/library/db/mongo"
)

// Runs against the instance named in the deployed test settings;
// skipped when no settings file is present.
func TestEnsureIndexes(t *testing.T) {
	if _, err := os.Stat(config.TestSettingsPath); err != nil {
		t.Skipf("no test settings at %s", config.TestSettingsPath)
	}

	ctx := context.Background()
	config.LoadTest()

	logger, err := glog.NewConsoleWithName("test", glog.LevelInfo)
	require.NoError(t, err)

	db, err := mongo.NewDB(ctx, logger, mongo.DialInfo{
		Addr:   gconfig.Shared.GetString("settings.db.portfolio.addr"),
		DBName: gconfig.Shared.GetString("settings.db.portfolio.db"),
		User:   gconfig.Shared.GetString("settings.db.portfolio.user"),
		Pwd:    gconfig.Shared.GetString("settings.db.portfolio.pwd"),
	})
	require.NoError(t, err)
	defer db.Close(ctx) //nolint:errcheck

	d := New(logger, db)
	require.NoError(t, d.EnsureIndexes(ctx))
}
