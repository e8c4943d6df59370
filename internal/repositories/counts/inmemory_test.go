package counts_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/logistics-api/internal/counts"
	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/pkg/clock"
	countsrepo "github.com/KirkDiggler/logistics-api/internal/repositories/counts"
	"github.com/KirkDiggler/logistics-api/internal/testutils"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := countsrepo.NewInMemoryRepository(&clock.Fixed{At: testNow})

	records, err := counts.FromContainer(testutils.CreateTestChest()).Serialize()
	require.NoError(t, err)

	saved, err := repo.Save(ctx, countsrepo.SaveInput{NodeID: testNodeID, Records: records})
	require.NoError(t, err)
	assert.Equal(t, 80, saved.Snapshot.Total)

	// mutating what was saved or returned must not leak into storage
	records[0].Count = 1
	saved.Snapshot.Records[1].Count = 1

	got, err := repo.Get(ctx, countsrepo.GetInput{NodeID: testNodeID})
	require.NoError(t, err)
	assert.Equal(t, 80, got.Snapshot.Total)
	assert.Equal(t, 70, got.Snapshot.Records[0].Count)
	assert.Equal(t, 10, got.Snapshot.Records[1].Count)
	assert.Equal(t, testNow, got.Snapshot.UpdatedAt)

	list, err := repo.List(ctx, countsrepo.ListInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{testNodeID}, list.NodeIDs)

	_, err = repo.Delete(ctx, countsrepo.DeleteInput{NodeID: testNodeID})
	require.NoError(t, err)

	_, err = repo.Get(ctx, countsrepo.GetInput{NodeID: testNodeID})
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.Save(ctx, countsrepo.SaveInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
