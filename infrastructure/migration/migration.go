// Package migration cria o schema usado pela automação de criadores
package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

type transactor interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// Schema retorna o DDL aplicado por Run
func Schema() string {
	return schema
}

// Run aplica o schema em uma única transação. Todas as instruções são idempotentes.
func Run(ctx context.Context, conn transactor) error {
	logrus.Info("migrate: applying schema")

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, schema); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.Info("migrate: schema is up to date")
	return nil
}
