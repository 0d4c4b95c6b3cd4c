package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/wandertools/wandertools/internal/database/repository"
)

// DefaultApps is the WanderTools suite shown by the launcher.
var DefaultApps = []repository.App{
	{Name: "WanderAlert", Description: "Check real-time travel advisories.", URL: "https://wanderalert.vercel.app/", Icon: "⚠", Accent: "#f59e0b"},
	{Name: "WanderGoal", Description: "Track and plan your travel goals.", URL: "https://www.wandergoal.fr/", Icon: "◎", Accent: "#4CAF50"},
	{Name: "WanderVisa", Description: "Explore visa rules by country.", URL: "https://wandervisa-nine.vercel.app/", Icon: "✈", Accent: "#6366f1"},
}

// AppID derives a stable id from the app name.
func AppID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("wandertools:app:"+name)).String()
}

// SeedCatalog ensures the default apps exist for new databases.
// It is idempotent and safe to run on every startup.
func SeedCatalog(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewAppRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		apps := repository.NewAppRepo(tx)
		for idx, a := range DefaultApps {
			a.ID = AppID(a.Name)
			a.SortOrder = idx
			if err := apps.Upsert(ctx, a); err != nil {
				return err
			}
		}
		return nil
	})
}
