// Package migration applies the service schema on startup. The DDL is
// idempotent, so running it on every boot is safe.
package migration

import (
	"context"
	_ "embed"

	"github.com/eme-digital/ads-audit-api/infrastructure/database/postgres"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

// Run executes the embedded schema against the connection.
func Run(ctx context.Context, conn *postgres.Connection) error {
	logrus.Info("applying database schema")

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "applying schema")
	}

	logrus.Info("database schema applied")
	return nil
}
