package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"order-analytics/pkg/ingest"
	"order-analytics/pkg/logger"
	"order-analytics/pkg/models"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

var validTable = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9_]+)?$`)

// Open connects to the ledger database. mariadb:// and mysql:// URLs are
// converted to the MySQL driver format; postgres:// and postgresql:// go to
// lib/pq unchanged. Anything else is handed to the MySQL driver as a native DSN.
// The driver name is returned alongside the handle.
func Open(dsn string) (*sql.DB, string, error) {
	driver, driverDSN, err := resolveDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open(driver, driverDSN)
	if err != nil {
		return nil, "", err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, driver, nil
}

func resolveDSN(dsn string) (driver, driverDSN string, err error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres", dsn, nil
	}
	out, err := toMySQLDSN(dsn)
	if err != nil {
		return "", "", err
	}
	return "mysql", out, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("incomplete dsn (user/host/db)")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}

// LoadOrders reads every ledger row of table as raw text. NULL columns are
// left unset. Timestamps returned by the driver as time values come back in
// RFC 3339 form.
func LoadOrders(ctx context.Context, db *sql.DB, table string) ([]models.RawRow, error) {
	if !validTable.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(models.LedgerColumns, ", "), table)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var out []models.RawRow
	vals := make([]sql.NullString, len(models.LedgerColumns))
	dest := make([]any, len(vals))
	for i := range vals {
		dest[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(out), err)
		}
		row := make(models.RawRow, len(vals))
		for i, v := range vals {
			if v.Valid {
				row[models.LedgerColumns[i]] = v.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.Debug("ledger rows read", "table", table, "rows", len(out))
	return out, nil
}

// Load reads and normalizes the ledger stored in table.
func Load(ctx context.Context, db *sql.DB, table string) ([]models.OrderRecord, error) {
	raw, err := LoadOrders(ctx, db, table)
	if err != nil {
		return nil, err
	}
	return ingest.Normalize(raw)
}
