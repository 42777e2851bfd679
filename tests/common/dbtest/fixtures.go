//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shopify-qrcode-app/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestQRCode inserts the builder's row and returns the id the database
// assigned. The builder's ID is ignored.
func CreateTestQRCode(t *testing.T, db DBLike, b *builder.QRCodeBuilder) int64 {
	t.Helper()

	row := b.BuildInfra()
	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO qrcodes (shop, title, destination, product_id, product_handle, product_variant_id, scans, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		row.Shop, row.Title, row.Destination, row.ProductID, row.ProductHandle, row.ProductVariantID, row.Scans, row.CreatedAt,
	).Scan(&id)
	require.NoError(t, err)

	return id
}

// CreateOfflineSession stores the offline Admin API token for shop, as the
// OAuth flow would after install.
func CreateOfflineSession(t *testing.T, db DBLike, shop, accessToken string) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO shopify_sessions (id, shop, state, is_online, scope, access_token)
		VALUES ($1, $2, $3, false, 'read_products', $4)`,
		"offline_"+shop, shop, uuid.NewString(), accessToken)
	require.NoError(t, err)
}

func GetScans(t *testing.T, db DBLike, id int64) int32 {
	t.Helper()

	var scans int32
	err := db.QueryRow(context.Background(), "SELECT scans FROM qrcodes WHERE id = $1", id).Scan(&scans)
	require.NoError(t, err)
	return scans
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil || len(tables) == 0 {
			truncateSQL.Store("")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
