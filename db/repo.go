package db

import (
	"context"

	"gorm.io/gorm"

	"chemstock/stock"
)

// Repo implements stock.Store over GORM. Atomic hands callbacks a Repo bound
// to the transaction; inTx tells GetChemical to take a row lock so the
// check-then-act sequences on a chemical row cannot interleave.
type Repo struct {
	DB   *gorm.DB
	inTx bool
}

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

func (r *Repo) Atomic(ctx context.Context, fn func(tx stock.Store) error) error {
	if r.inTx {
		return fn(r)
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repo{DB: tx, inTx: true})
	})
}
