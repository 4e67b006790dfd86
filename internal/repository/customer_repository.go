package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/unclebandit/customer-viewer/internal/db"
	"github.com/unclebandit/customer-viewer/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	List(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error)
	InsertBatch(ctx context.Context, customers []model.Customer) error
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB      *sql.DB
	Dialect db.Dialect
}

const customerColumns = `sno, customer_name, age, phone, location, created_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns free text into a LIKE pattern matching it as a literal substring
func containsPattern(s string) string {
	return "%" + strings.ToLower(likeEscaper.Replace(s)) + "%"
}

// List returns every customer matching all non-empty fields of filter.
// Matching is case-insensitive substring containment. Rows come back in store order.
func (r *CustomerRepository) List(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.Name != "" {
		query += " AND " + r.Dialect.ContainsClause("customer_name", argPos)
		args = append(args, containsPattern(filter.Name))
		argPos++
	}
	if filter.Location != "" {
		query += " AND " + r.Dialect.ContainsClause("location", argPos)
		args = append(args, containsPattern(filter.Location))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return customers, nil
}

// InsertBatch inserts all customers in one transaction. If any insert fails
// the whole batch is rolled back.
func (r *CustomerRepository) InsertBatch(ctx context.Context, customers []model.Customer) (err error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	query := fmt.Sprintf(
		`INSERT INTO customers (`+customerColumns+`) VALUES (%s, %s, %s, %s, %s, %s)`,
		r.Dialect.Placeholder(1), r.Dialect.Placeholder(2), r.Dialect.Placeholder(3),
		r.Dialect.Placeholder(4), r.Dialect.Placeholder(5), r.Dialect.Placeholder(6),
	)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range customers {
		if _, err = stmt.ExecContext(ctx, c.Sno, c.CustomerName, c.Age, c.Phone, c.Location, c.CreatedAt.UTC()); err != nil {
			return fmt.Errorf("insert customer %d: %w", c.Sno, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCustomer(s scanner) (model.Customer, error) {
	var c model.Customer
	var createdAt any

	if err := s.Scan(&c.Sno, &c.CustomerName, &c.Age, &c.Phone, &c.Location, &createdAt); err != nil {
		return c, err
	}

	t, err := toTime(createdAt)
	if err != nil {
		return c, fmt.Errorf("parse created_at: %w", err)
	}
	c.CreatedAt = t
	return c, nil
}

// toTime accepts the native time value lib/pq returns as well as the text
// form sqlite may hand back for a TIMESTAMPTZ column.
func toTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return parseTime(t)
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05.999999999 -0700 MST",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
