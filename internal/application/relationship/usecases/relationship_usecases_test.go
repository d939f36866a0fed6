package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/application/common/access"
	"jirant/internal/application/relationship/services"
	"jirant/internal/application/testutil"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

var (
	alice = authorization.Caller{UserID: "alice", Role: authorization.RoleUser}
	bob   = authorization.Caller{UserID: "bob", Role: authorization.RoleUser}
	admin = authorization.Caller{UserID: "root", Role: authorization.RoleAdmin}
)

type fixture struct {
	tickets *testutil.MockTicketRepository
	rels    *testutil.MockRelationshipRepository
	create  *CreateRelationshipUseCase
	remove  *DeleteRelationshipUseCase
	list    *ListRelationshipsUseCase
}

func newFixture() *fixture {
	log := logger.NewNop()
	tickets := testutil.NewMockTicketRepository()
	rels := testutil.NewMockRelationshipRepository()
	graph := services.NewGraphService(rels, tickets, log)
	policy := access.NewPolicy(testutil.AdminChecker(), log)
	return &fixture{
		tickets: tickets,
		rels:    rels,
		create:  NewCreateRelationshipUseCase(graph, tickets, policy, log),
		remove:  NewDeleteRelationshipUseCase(graph, tickets, policy, log),
		list:    NewListRelationshipsUseCase(graph, tickets, policy, log),
	}
}

func (f *fixture) seed(owner string) string {
	return f.tickets.Seed(testutil.NewTicket("ticket of "+owner, "Task", owner)).SID()
}

func TestCreateRelationshipUseCase_Success(t *testing.T) {
	f := newFixture()
	a, b := f.seed("alice"), f.seed("alice")

	result, err := f.create.Execute(context.Background(), CreateRelationshipCommand{
		Caller:  alice,
		Ticket1: a,
		Ticket2: b,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a, result.Ticket1)
	assert.Equal(t, b, result.Ticket2)
	assert.Equal(t, "related", result.RelationshipType)
	assert.Equal(t, "alice", result.CreatedBy)
}

func TestCreateRelationshipUseCase_Errors(t *testing.T) {
	f := newFixture()
	a, b := f.seed("alice"), f.seed("alice")
	foreign := f.seed("bob")

	_, err := f.create.Execute(context.Background(), CreateRelationshipCommand{Caller: alice, Ticket1: a, Ticket2: b})
	require.NoError(t, err)

	tests := []struct {
		name  string
		cmd   CreateRelationshipCommand
		check func(error) bool
	}{
		{"missing ticket", CreateRelationshipCommand{Caller: alice, Ticket1: a}, apperrors.IsValidationError},
		{"self loop", CreateRelationshipCommand{Caller: alice, Ticket1: a, Ticket2: a}, apperrors.IsValidationError},
		{"reverse duplicate", CreateRelationshipCommand{Caller: alice, Ticket1: b, Ticket2: a}, apperrors.IsDuplicateAppError},
		{"unknown ticket", CreateRelationshipCommand{Caller: alice, Ticket1: a, Ticket2: "tkt_nothere"}, apperrors.IsNotFoundError},
		{"other user's ticket", CreateRelationshipCommand{Caller: alice, Ticket1: a, Ticket2: foreign}, apperrors.IsForbiddenError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := f.create.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
	assert.Equal(t, 1, f.rels.Len())
}

func TestCreateRelationshipUseCase_AdminLinksAcrossOwners(t *testing.T) {
	f := newFixture()
	a, b := f.seed("alice"), f.seed("bob")

	_, err := f.create.Execute(context.Background(), CreateRelationshipCommand{Caller: admin, Ticket1: a, Ticket2: b, RelationshipType: "duplicates"})
	require.NoError(t, err)
}

func TestListRelationshipsUseCase(t *testing.T) {
	f := newFixture()
	a, b, c := f.seed("alice"), f.seed("alice"), f.seed("alice")
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreateRelationshipCommand{Caller: alice, Ticket1: a, Ticket2: b})
	require.NoError(t, err)
	_, err = f.create.Execute(ctx, CreateRelationshipCommand{Caller: alice, Ticket1: c, Ticket2: a})
	require.NoError(t, err)

	all, err := f.list.Execute(ctx, ListRelationshipsQuery{Caller: alice, TicketID: a})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	fromB, err := f.list.Execute(ctx, ListRelationshipsQuery{Caller: alice, TicketID: b})
	require.NoError(t, err)
	require.Len(t, fromB, 1)
	assert.Equal(t, a, fromB[0].Ticket1)

	between, err := f.list.Execute(ctx, ListRelationshipsQuery{Caller: alice, TicketID: a, OtherID: c})
	require.NoError(t, err)
	require.Len(t, between, 1)
	assert.Equal(t, c, between[0].Ticket1)

	_, err = f.list.Execute(ctx, ListRelationshipsQuery{Caller: bob, TicketID: a})
	require.Error(t, err)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestDeleteRelationshipUseCase(t *testing.T) {
	f := newFixture()
	a, b := f.seed("alice"), f.seed("alice")
	ctx := context.Background()

	_, err := f.create.Execute(ctx, CreateRelationshipCommand{Caller: alice, Ticket1: a, Ticket2: b})
	require.NoError(t, err)

	require.NoError(t, f.remove.Execute(ctx, DeleteRelationshipCommand{Caller: alice, Ticket1: b, Ticket2: a}))
	assert.Equal(t, 0, f.rels.Len())

	err = f.remove.Execute(ctx, DeleteRelationshipCommand{Caller: alice, Ticket1: a, Ticket2: b})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))
}
