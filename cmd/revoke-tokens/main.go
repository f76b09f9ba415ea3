// Command revoke-tokens clears stored refresh-token hashes, forcing the
// affected accounts to log in again. Useful after a credential leak or a
// JWT secret rotation.
//
// Usage:
//
//	revoke-tokens --user=<username>
//	revoke-tokens --all
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	userFlag := flag.String("user", "", "revoke the refresh token of a single account")
	allFlag := flag.Bool("all", false, "revoke the refresh tokens of every account")
	flag.Parse()

	if (*userFlag != "") == *allFlag {
		log.Fatal("exactly one of --user or --all is required")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	query := "UPDATE users SET refresh_token_hash = NULL WHERE refresh_token_hash IS NOT NULL"
	args := []any{}
	if *userFlag != "" {
		query += " AND username = $1"
		args = append(args, *userFlag)
	}

	tag, err := pool.Exec(ctx, query, args...)
	if err != nil {
		log.Fatalf("revoke tokens: %v", err)
	}

	if *userFlag != "" && tag.RowsAffected() == 0 {
		fmt.Printf("No active refresh token for %q (unknown user or already logged out).\n", *userFlag)
		return
	}
	fmt.Printf("Revoked %d refresh token(s).\n", tag.RowsAffected())
}
