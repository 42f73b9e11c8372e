package migrations

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/uptrace/bun/driver/sqliteshim"
)

func applySchema(t *testing.T) *sql.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })

	if _, err := sqldb.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign key enforcement: %v", err)
	}

	schema, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "0001_init_schema.up.sql"))
	if err != nil {
		t.Fatalf("Failed to read schema file: %v", err)
	}
	if _, err := sqldb.Exec(string(schema)); err != nil {
		t.Fatalf("Failed to apply schema: %v", err)
	}
	return sqldb
}

// Referential integrity lives in the service-layer existence checks, not the
// schema. Deleting a flight or user must succeed even when bookings still
// point at it, and those bookings stay behind as dangling rows.
func TestSchemaAllowsDanglingBookings(t *testing.T) {
	sqldb := applySchema(t)

	stmts := []string{
		"INSERT INTO users (id, email, password, name) VALUES ('u1', 'anna@example.com', 'hash', 'Anna')",
		"INSERT INTO companies (id, name, code, manager_id) VALUES ('c1', 'AirBaltic', 'BT', 'u1')",
		"INSERT INTO flights (id, flight_number, origin, destination, departure_date, arrival_date, duration, company_id) " +
			"VALUES ('f1', 'BT101', 'Riga', 'Istanbul', '2026-09-01 10:00:00', '2026-09-01 13:00:00', 180, 'c1')",
		"INSERT INTO bookings (id, user_id, flight_id, passenger_name, passenger_email, seat_class, price, confirmation_id) " +
			"VALUES ('b1', 'u1', 'f1', 'Anna Berzina', 'anna@example.com', 'economy', 250, 'ABCD1234')",
	}
	for _, stmt := range stmts {
		if _, err := sqldb.Exec(stmt); err != nil {
			t.Fatalf("Failed to seed schema: %v", err)
		}
	}

	if _, err := sqldb.Exec("DELETE FROM flights WHERE id = 'f1'"); err != nil {
		t.Fatalf("Expected flight delete to succeed with bookings attached, got: %v", err)
	}
	if _, err := sqldb.Exec("DELETE FROM users WHERE id = 'u1'"); err != nil {
		t.Fatalf("Expected user delete to succeed with bookings attached, got: %v", err)
	}

	var count int
	if err := sqldb.QueryRow("SELECT COUNT(*) FROM bookings WHERE id = 'b1'").Scan(&count); err != nil {
		t.Fatalf("Failed to count bookings: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected booking to remain after flight and user deletes, found %d rows", count)
	}
}

// Company managers come from an external admin flow, so a managerId that
// matches no user row must still insert cleanly.
func TestSchemaAllowsUnknownManager(t *testing.T) {
	sqldb := applySchema(t)

	_, err := sqldb.Exec("INSERT INTO companies (id, name, code, manager_id) VALUES ('c1', 'Turkish Airlines', 'TK', 'no-such-user')")
	if err != nil {
		t.Fatalf("Expected company insert with unknown manager to succeed, got: %v", err)
	}
}
