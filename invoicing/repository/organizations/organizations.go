package organizations

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

type Organization struct {
	ID       int64
	Name     string
	Timezone pgtype.Text
}

type Querier interface {
	GetOrganization(ctx context.Context, id int64) (Organization, error)
}

var _ Querier = (*Queries)(nil)

const getOrganization = `
SELECT id, name, timezone FROM organizations WHERE id = $1
`

func (q *Queries) GetOrganization(ctx context.Context, id int64) (Organization, error) {
	var o Organization
	err := q.db.QueryRow(ctx, getOrganization, id).Scan(&o.ID, &o.Name, &o.Timezone)
	return o, err
}
