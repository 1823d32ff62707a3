package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerier_PrefersContextTransaction(t *testing.T) {
	tx := stubTx{}
	ctx := ContextWithTx(context.Background(), tx)

	q := GetQuerier(ctx, &database.DB{})
	assert.Equal(t, tx, q)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)
	assert.Equal(t, database.Querier(db.Pool), q)
}
