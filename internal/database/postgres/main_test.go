package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SkinBot_Go/internal/database/dbtest"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		ctx := context.Background()
		connStr, stop, err := dbtest.Start(ctx)
		if err != nil {
			fmt.Printf("Skipping postgres integration tests: %v\n", err)
		} else {
			terminate = stop
			testPool, err = dbtest.MigratedPool(ctx, connStr)
			if err != nil {
				fmt.Printf("Skipping postgres integration tests: %v\n", err)
			}
		}
	}

	code := m.Run()
	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() || testPool == nil {
		t.Skip("Skipping integration test: no database")
	}
	return testPool
}
