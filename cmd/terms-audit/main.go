package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// Sanity checks over congress.legislator_terms: row counts per session and a
// duplicate-key scan. The primary key should make duplicates impossible; this
// tool is for verifying tables loaded by other means.

var dsn = flag.String("dsn", os.Getenv("DATABASE_URL"), "Postgres DSN (default: env DATABASE_URL)")

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()
	if *dsn == "" {
		fatalf("--dsn not provided and DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		fatalf("ping: %v", err)
	}

	var total, legislators int64
	if err := db.QueryRowContext(ctx, `SELECT count(*), count(DISTINCT bioguide_id) FROM congress.legislator_terms`).
		Scan(&total, &legislators); err != nil {
		fatalf("count: %v", err)
	}
	fmt.Printf("Total: %d rows across %d legislators\n", total, legislators)

	rows, err := db.QueryContext(ctx, `
		SELECT session_id, count(*)
		FROM congress.legislator_terms
		GROUP BY session_id
		ORDER BY session_id DESC`)
	if err != nil {
		fatalf("per-session counts: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var session int
		var n int64
		if err := rows.Scan(&session, &n); err != nil {
			fatalf("scan: %v", err)
		}
		fmt.Printf("  session %d: %d rows\n", session, n)
	}
	if err := rows.Err(); err != nil {
		fatalf("per-session counts: %v", err)
	}

	var dups int64
	err = db.QueryRowContext(ctx, `
		SELECT count(*) FROM (
			SELECT bioguide_id, session_id
			FROM congress.legislator_terms
			GROUP BY bioguide_id, session_id
			HAVING count(*) > 1
		) d`).Scan(&dups)
	if err != nil {
		fatalf("duplicate scan: %v", err)
	}
	if dups > 0 {
		fatalf("sanity check failed: %d duplicate (bioguide_id, session_id) keys", dups)
	}
	fmt.Println("No duplicate keys. Audit complete ✅")
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
