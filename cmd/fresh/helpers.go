package fresh

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/123ang/expiry-alert-cli/internal/api"
	"github.com/123ang/expiry-alert-cli/internal/app"
	"github.com/123ang/expiry-alert-cli/internal/config"
	"github.com/123ang/expiry-alert-cli/internal/db"
	"github.com/123ang/expiry-alert-cli/internal/i18n"
	"github.com/123ang/expiry-alert-cli/internal/service"
)

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return app.DefaultConfigPath()
}

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

// appEnv is everything a command needs: the open state database, the
// backend client, the resolved translation table, and the viewer timezone.
type appEnv struct {
	db     *sql.DB
	client *api.Client
	table  i18n.Table
	loc    *time.Location
}

// withApp layers settings in precedence order: flags, then app_config, then
// the YAML file, then defaults (English, system timezone).
func withApp(run func(*appEnv) error) error {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	return withDB(func(sqldb *sql.DB) error {
		lang := langFlag
		if lang == "" {
			if v, ok, err := service.GetConfig(sqldb, service.ConfigLanguage); err != nil {
				return err
			} else if ok {
				lang = v
			}
		}
		if lang == "" {
			lang = cfg.Language
		}
		if lang == "" {
			lang = "en"
		}

		tzName := tzFlag
		if tzName == "" {
			if v, ok, err := service.GetConfig(sqldb, service.ConfigTimezone); err != nil {
				return err
			} else if ok {
				tzName = v
			}
		}
		if tzName == "" {
			tzName = cfg.Timezone
		}
		loc := time.Local
		if tzName != "" {
			loc, err = time.LoadLocation(tzName)
			if err != nil {
				return fmt.Errorf("invalid timezone %q: %w", tzName, err)
			}
		}

		backendURL := cfg.BackendURL
		if v, ok, err := service.GetConfig(sqldb, service.ConfigBackendURL); err != nil {
			return err
		} else if ok && v != "" {
			backendURL = v
		}

		env := &appEnv{
			db:     sqldb,
			client: &api.Client{BaseURL: backendURL, Token: cfg.Token},
			table:  i18n.Pick(lang),
			loc:    loc,
		}
		return run(env)
	})
}

func staleNote(fromCache bool) string {
	if fromCache {
		return " (offline, cached data)"
	}
	return ""
}
