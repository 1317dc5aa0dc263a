// Package txconn binds gorm to an already-open *sql.Tx so repositories handed
// a service-owned transaction issue their statements inside it. Without this a
// multi-row mutation (e.g. a priority swap) would not be atomic.
package txconn

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Bind(tx *sql.Tx) (*gorm.DB, error) {
	return gorm.Open(postgres.New(postgres.Config{Conn: tx}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
}

// MustBind is Bind for repository WithTx paths. Falling back to the
// non-transactional connection on a bind failure would let part of a
// multi-row mutation commit outside the owning transaction, so it panics
// instead.
func MustBind(tx *sql.Tx) *gorm.DB {
	db, err := Bind(tx)
	if err != nil {
		panic(fmt.Errorf("txconn: bind transaction: %w", err))
	}
	return db
}
