package relationship

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/application/relationship/dto"
	"jirant/internal/application/relationship/usecases"
	"jirant/internal/interfaces/http/handlers/testutil"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
)

type mockCreateUC struct {
	cmd    usecases.CreateRelationshipCommand
	result *dto.RelationshipDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateRelationshipCommand) (*dto.RelationshipDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockDeleteUC struct {
	cmd usecases.DeleteRelationshipCommand
	err error
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteRelationshipCommand) error {
	m.cmd = cmd
	return m.err
}

type mockListUC struct {
	query  usecases.ListRelationshipsQuery
	result []dto.RelationshipDTO
	err    error
}

func (m *mockListUC) Execute(_ context.Context, q usecases.ListRelationshipsQuery) ([]dto.RelationshipDTO, error) {
	m.query = q
	return m.result, m.err
}

func newTestHandler() (*Handler, *mockCreateUC, *mockDeleteUC, *mockListUC) {
	create, del, list := &mockCreateUC{}, &mockDeleteUC{}, &mockListUC{}
	return NewHandler(create, del, list, logger.NewNop()), create, del, list
}

func TestCreateRelationship(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]string
		err        error
		wantCode   int
		wantReason string
	}{
		{"created", map[string]string{"ticket1": "tkt_b", "ticket2": "tkt_a"}, nil, http.StatusCreated, ""},
		{"missing ticket2", map[string]string{"ticket1": "tkt_a"}, nil, http.StatusBadRequest, ""},
		{"self loop", map[string]string{"ticket1": "tkt_a", "ticket2": "tkt_a"},
			errors.NewInvalidEdgeError("a ticket cannot be related to itself"), http.StatusBadRequest, errors.ReasonInvalidEdge},
		{"duplicate", map[string]string{"ticket1": "tkt_a", "ticket2": "tkt_b"},
			errors.NewDuplicateEdgeError("tkt_a", "tkt_b"), http.StatusConflict, errors.ReasonDuplicateEdge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, create, _, _ := newTestHandler()
			create.result = &dto.RelationshipDTO{ID: "rel_x", Ticket1: "tkt_a", Ticket2: "tkt_b"}
			create.err = tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/api/ticket-relationships", tt.body)
			testutil.SetAuthContext(c, "alice", authorization.RoleUser)

			h.CreateRelationship(c)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantReason != "" {
				var resp testutil.APIResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				assert.Equal(t, tt.wantReason, resp.Error.Reason)
			}
		})
	}
}

func TestDeleteRelationship(t *testing.T) {
	h, _, del, _ := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/api/ticket-relationships", map[string]string{
		"ticket1": "tkt_b", "ticket2": "tkt_a",
	})
	testutil.SetAuthContext(c, "alice", authorization.RoleUser)

	h.DeleteRelationship(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tkt_b", del.cmd.Ticket1)
	assert.Equal(t, "tkt_a", del.cmd.Ticket2)
}

func TestListRelationships(t *testing.T) {
	t.Run("requires ticket1", func(t *testing.T) {
		h, _, _, _ := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodGet, "/api/ticket-relationships", nil)
		testutil.SetAuthContext(c, "alice", authorization.RoleUser)

		h.ListRelationships(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("pair query", func(t *testing.T) {
		h, _, _, list := newTestHandler()
		list.result = []dto.RelationshipDTO{{ID: "rel_x"}}
		c, w := testutil.NewTestContext(http.MethodGet, "/api/ticket-relationships", nil)
		testutil.SetQueryParams(c, map[string]string{"ticket1": "tkt_a", "ticket2": "tkt_b"})
		testutil.SetAuthContext(c, "alice", authorization.RoleUser)

		h.ListRelationships(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "tkt_a", list.query.TicketID)
		assert.Equal(t, "tkt_b", list.query.OtherID)

		var got []dto.RelationshipDTO
		require.NoError(t, testutil.DecodeData(w, &got))
		assert.Len(t, got, 1)
	})
}
