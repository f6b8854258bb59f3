package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"sort"
	"time"

	"amenity-booking/internal/handler/middleware"
	"amenity-booking/internal/pkg/config"
	"amenity-booking/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

func main() {
	dir := flag.String("dir", "migrations", "directory holding the versioned migration files")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	only := flag.String("tenant", "", "apply to a single tenant instead of all configured tenants")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, *dir, *atlasBin, *only, logger); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, dir, atlasBin, only string, logger *slog.Logger) error {
	targets, err := selectTenants(cfg.TenantDatabases(), only)
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return errs.Wrap(err, "failed to prepare migration directory")
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	for _, t := range targets {
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL: cfg.DB.BuildDSNFor(t.dbName),
		})
		if err != nil {
			return errs.Wrapf(err, "tenant %s", t.tenantID)
		}
		logger.Info("マイグレーションを適用しました",
			"tenant_id", t.tenantID,
			"database", t.dbName,
			"applied", len(res.Applied),
			"current", res.Current,
			"target", res.Target,
		)
	}
	return nil
}

type target struct {
	tenantID string
	dbName   string
}

func selectTenants(databases map[string]string, only string) ([]target, error) {
	if only != "" {
		dbName, ok := databases[only]
		if !ok {
			return nil, errs.New("unknown tenant: " + only)
		}
		return []target{{tenantID: only, dbName: dbName}}, nil
	}

	targets := make([]target, 0, len(databases))
	for id, dbName := range databases {
		targets = append(targets, target{tenantID: id, dbName: dbName})
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].tenantID < targets[j].tenantID })
	return targets, nil
}
