package postgres

import (
	"context"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migrationLockKey ключ advisory lock, чтобы несколько экземпляров
// сервиса не выполняли миграции одновременно
const migrationLockKey = 7_340_001

// RunMigrations выполняет миграции базы данных в одной транзакции.
// Автоматически находит все *.up.sql файлы и выполняет их в алфавитном порядке
func RunMigrations(ctx context.Context, db DBTX, logger *zap.Logger) error {
	names, err := upMigrations()
	if err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin migration transaction: %w", err)
	}
	rollback := func(cause error) error {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			logger.Error("failed to rollback migrations", zap.Error(rbErr))
		}
		return cause
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, migrationLockKey); err != nil {
		return rollback(fmt.Errorf("failed to acquire migration lock: %w", err))
	}

	for _, name := range names {
		content, err := migrationsFS.ReadFile(path.Join("migrations", name))
		if err != nil {
			return rollback(fmt.Errorf("failed to read migration %s: %w", name, err))
		}

		logger.Info("running migration", zap.String("name", name))
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return rollback(fmt.Errorf("failed to run migration %s: %w", name, err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit migrations: %w", err)
	}
	logger.Info("migrations completed", zap.Int("count", len(names)))

	return nil
}

func upMigrations() ([]string, error) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".up.sql") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}
