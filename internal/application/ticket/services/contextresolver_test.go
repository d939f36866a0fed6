package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relservices "jirant/internal/application/relationship/services"
	"jirant/internal/application/testutil"
	"jirant/internal/domain/relationship"
	"jirant/internal/shared/logger"
)

func TestContextResolver_OneHopInEdgeOrder(t *testing.T) {
	log := logger.NewNop()
	tickets := testutil.NewMockTicketRepository()
	rels := testutil.NewMockRelationshipRepository()
	graph := relservices.NewGraphService(rels, tickets, log)
	resolver := NewContextResolver(graph, tickets, log)

	root := tickets.Seed(testutil.NewTicket("root", "Task", "alice"))
	first := tickets.Seed(testutil.NewTicket("first", "Task", "alice"))
	second := tickets.Seed(testutil.NewTicket("second", "Task", "alice"))
	deleted := tickets.Seed(testutil.NewTicket("deleted", "Task", "alice"))
	farAway := tickets.Seed(testutil.NewTicket("two hops", "Task", "alice"))

	ctx := context.Background()
	_, err := graph.CreateEdge(ctx, second.SID(), root.SID(), "related", "alice")
	require.NoError(t, err)
	_, err = graph.CreateEdge(ctx, root.SID(), deleted.SID(), "related", "alice")
	require.NoError(t, err)
	_, err = graph.CreateEdge(ctx, root.SID(), first.SID(), "context", "alice")
	require.NoError(t, err)
	_, err = graph.CreateEdge(ctx, first.SID(), farAway.SID(), "related", "alice")
	require.NoError(t, err)
	deleted.SoftDelete()

	got, err := resolver.ResolveContext(ctx, root.SID())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.SID(), got[0].SID())
	assert.Equal(t, first.SID(), got[1].SID())
}

type staticEdges struct {
	edges []*relationship.Relationship
	err   error
}

func (s staticEdges) FindEdges(ctx context.Context, ticketID, otherID string) ([]*relationship.Relationship, error) {
	return s.edges, s.err
}

func TestContextResolver_DanglingEndpointDropped(t *testing.T) {
	tickets := testutil.NewMockTicketRepository()
	root := tickets.Seed(testutil.NewTicket("root", "Task", "alice"))
	live := tickets.Seed(testutil.NewTicket("live", "Task", "alice"))

	gone, err := relationship.NewRelationship(root.SID(), "tkt_missing", "related", "alice")
	require.NoError(t, err)
	kept, err := relationship.NewRelationship(live.SID(), root.SID(), "related", "alice")
	require.NoError(t, err)

	resolver := NewContextResolver(staticEdges{edges: []*relationship.Relationship{gone, kept}}, tickets, logger.NewNop())
	got, err := resolver.ResolveContext(context.Background(), root.SID())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, live.SID(), got[0].SID())
}

func TestContextResolver_NoEdges(t *testing.T) {
	resolver := NewContextResolver(staticEdges{}, testutil.NewMockTicketRepository(), logger.NewNop())

	got, err := resolver.ResolveContext(context.Background(), "tkt_x")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestContextResolver_Errors(t *testing.T) {
	tickets := testutil.NewMockTicketRepository()
	_, err := NewContextResolver(staticEdges{err: errors.New("db down")}, tickets, logger.NewNop()).
		ResolveContext(context.Background(), "tkt_x")
	assert.Error(t, err)

	rel, err := relationship.NewRelationship("tkt_a", "tkt_b", "related", "alice")
	require.NoError(t, err)
	tickets.SetGetError(errors.New("timeout"))
	_, err = NewContextResolver(staticEdges{edges: []*relationship.Relationship{rel}}, tickets, logger.NewNop()).
		ResolveContext(context.Background(), "tkt_a")
	assert.Error(t, err)
}
