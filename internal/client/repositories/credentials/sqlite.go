package credentials

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/lumina/internal/client/models"
	"github.com/dmitrijs2005/lumina/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lumina/internal/common"
	"github.com/dmitrijs2005/lumina/internal/dbx"
)

// SQLiteStore keeps the pair in the metadata table under the access_token
// and refresh_token keys.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Load(ctx context.Context) (models.CredentialPair, error) {
	var pair models.CredentialPair
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		access, _, err := repo.Get(ctx, common.AccessTokenKey)
		if err != nil {
			return err
		}
		refresh, _, err := repo.Get(ctx, common.RefreshTokenKey)
		if err != nil {
			return err
		}

		pair = models.CredentialPair{AccessToken: access, RefreshToken: refresh}
		return nil
	})
	if err != nil {
		return models.CredentialPair{}, err
	}
	return pair, nil
}

func (s *SQLiteStore) Save(ctx context.Context, pair models.CredentialPair) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AccessTokenKey, pair.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, common.RefreshTokenKey, pair.RefreshToken)
	})
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.AccessTokenKey, common.RefreshTokenKey)
	})
}
