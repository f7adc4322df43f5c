// Package db owns the PostgreSQL pool behind APP_STORAGE_DRIVER=postgres.
//
// New connects within DatabaseConfig.ConnectTimeout, pings, and creates the
// members and accounts tables if they are missing. Repositories run their
// read-modify-write cycles through InTx so a failed domain check rolls the
// row lock back without writing.
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
package db
