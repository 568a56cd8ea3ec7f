package campaignrepo

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/globalfund/internal/domain"
	"github.com/GlebRadaev/globalfund/internal/pg"
)

// TestIncrementCollected_Concurrent runs against a real Postgres.
func TestIncrementCollected_Concurrent(t *testing.T) {
	dsn := os.Getenv("GLOBALFUND_TEST_DATABASE_URI")
	if dsn == "" {
		t.Skip("set GLOBALFUND_TEST_DATABASE_URI to run this integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pg.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pg.RunMigrations(ctx, pool)
	require.NoError(t, err)

	repo := New(pg.New(pool))
	c := sampleCampaign(uuid.NewString(), domain.StatusApproved, 0)
	c.CreatedBy = uuid.NewString()
	_, err = repo.Create(ctx, c)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = repo.Delete(context.Background(), c.ID) })

	const donors = 50
	var wg sync.WaitGroup
	errs := make(chan error, donors)
	for i := 0; i < donors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementCollected(ctx, c.ID, 10); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, float64(donors*10), got.Collected)
}
