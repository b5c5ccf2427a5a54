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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestShop(t *testing.T, db DBLike, name string, lat, lon float64) int64 {
	t.Helper()

	var shopID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO shops (name, address, latitude, longitude) VALUES ($1, $2, $3, $4) RETURNING id",
		name, name+" Street 1", lat, lon).Scan(&shopID)
	require.NoError(t, err)

	return shopID
}

func CreateTestMedicine(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var medicineID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO medicines (name, description) VALUES ($1, $2) RETURNING id",
		name, "Test medicine: "+name).Scan(&medicineID)
	require.NoError(t, err)

	return medicineID
}

func CreateTestInventoryLine(t *testing.T, db DBLike, shopID, medicineID int64, price string, stock int32) int64 {
	t.Helper()

	var lineID int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO inventory (shop_id, medicine_id, price, stock_quantity) VALUES ($1, $2, $3, $4) RETURNING id",
		shopID, medicineID, decimal.RequireFromString(price), stock).Scan(&lineID)
	require.NoError(t, err)

	return lineID
}

func GetStockQuantity(t *testing.T, db DBLike, lineID int64) int32 {
	t.Helper()

	var stock int32
	err := db.QueryRow(context.Background(),
		"SELECT stock_quantity FROM inventory WHERE id = $1", lineID).Scan(&stock)
	require.NoError(t, err)

	return stock
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each test starts from an empty catalog
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
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
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
