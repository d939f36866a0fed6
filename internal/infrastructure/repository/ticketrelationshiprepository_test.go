package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/domain/relationship"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

func newEdge(t *testing.T, a, b string) *relationship.Relationship {
	t.Helper()
	rel, err := relationship.NewRelationship(a, b, "", "user-1")
	require.NoError(t, err)
	return rel
}

func TestRelationshipRepository_FindBetweenEitherOrder(t *testing.T) {
	repo := NewRelationshipRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	edge := newEdge(t, "tkt_b", "tkt_a")
	require.NoError(t, repo.Create(ctx, edge))

	pair, err := relationship.NormalizePair("tkt_a", "tkt_b")
	require.NoError(t, err)
	found, err := repo.FindBetween(ctx, pair)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, edge.SID(), found.SID())
	assert.Equal(t, "tkt_b", found.Ticket1())

	missing, err := relationship.NormalizePair("tkt_a", "tkt_c")
	require.NoError(t, err)
	found, err = repo.FindBetween(ctx, missing)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRelationshipRepository_UniquePairIndex(t *testing.T) {
	repo := NewRelationshipRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newEdge(t, "tkt_a", "tkt_b")))

	err := repo.Create(ctx, newEdge(t, "tkt_b", "tkt_a"))
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateAppError(err))
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonDuplicateEdge))
}

func TestRelationshipRepository_ConcurrentReversedCreates(t *testing.T) {
	repo := NewRelationshipRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	edges := []*relationship.Relationship{newEdge(t, "tkt_a", "tkt_b"), newEdge(t, "tkt_b", "tkt_a")}
	errs := make([]error, len(edges))

	var wg sync.WaitGroup
	for i, edge := range edges {
		wg.Add(1)
		go func(i int, edge *relationship.Relationship) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, edge)
		}(i, edge)
	}
	wg.Wait()

	var created, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case apperrors.HasReason(err, apperrors.ReasonDuplicateEdge):
			duplicates++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, duplicates)

	all, err := repo.FindByTicket(ctx, "tkt_a")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRelationshipRepository_FindByTicketOrderedAndSymmetric(t *testing.T) {
	repo := NewRelationshipRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	ab := newEdge(t, "tkt_a", "tkt_b")
	ca := newEdge(t, "tkt_c", "tkt_a")
	bc := newEdge(t, "tkt_b", "tkt_c")
	for _, e := range []*relationship.Relationship{ab, ca, bc} {
		require.NoError(t, repo.Create(ctx, e))
	}

	forA, err := repo.FindByTicket(ctx, "tkt_a")
	require.NoError(t, err)
	require.Len(t, forA, 2)
	assert.Equal(t, ab.SID(), forA[0].SID())
	assert.Equal(t, ca.SID(), forA[1].SID())

	forB, err := repo.FindByTicket(ctx, "tkt_b")
	require.NoError(t, err)
	require.Len(t, forB, 2)
	assert.Equal(t, ab.SID(), forB[0].SID(), "edge is visible from both endpoints")
}

func TestRelationshipRepository_Delete(t *testing.T) {
	repo := NewRelationshipRepository(setupTestDB(t), logger.NewNop())
	ctx := context.Background()

	edge := newEdge(t, "tkt_a", "tkt_b")
	require.NoError(t, repo.Create(ctx, edge))
	require.NoError(t, repo.Delete(ctx, edge.SID()))

	assert.True(t, apperrors.IsNotFoundError(repo.Delete(ctx, edge.SID())))

	// pair can be reused after deletion
	require.NoError(t, repo.Create(ctx, newEdge(t, "tkt_b", "tkt_a")))
}
