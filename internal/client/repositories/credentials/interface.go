package credentials

import (
	"context"

	"github.com/dmitrijs2005/lumina/internal/client/models"
)

// Store holds at most one credential pair. Load returns an empty pair when
// nothing is stored.
type Store interface {
	Load(ctx context.Context) (models.CredentialPair, error)
	Save(ctx context.Context, pair models.CredentialPair) error
	Clear(ctx context.Context) error
}
