package usecases

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jirant/internal/application/common/access"
	relservices "jirant/internal/application/relationship/services"
	"jirant/internal/application/testutil"
	"jirant/internal/application/ticket/dto"
	"jirant/internal/application/ticket/services"
	tktservices "jirant/internal/application/tickettemplate/services"
	"jirant/internal/domain/ticket"
	"jirant/internal/domain/tickettemplate"
	"jirant/internal/shared/authorization"
	apperrors "jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/services/markdown"
)

var (
	alice = authorization.Caller{UserID: "alice", Role: authorization.RoleUser}
	bob   = authorization.Caller{UserID: "bob", Role: authorization.RoleUser}
	admin = authorization.Caller{UserID: "root", Role: authorization.RoleAdmin}
)

const generatedBody = "## Description\nThe login button does not respond on Safari.\n\n" +
	"## Steps to Reproduce\n1. Open the login page in Safari\n2. Click Login"

type recordedMetrics struct {
	mu       sync.Mutex
	outcomes []string
	calls    []string
	links    []string
}

func (r *recordedMetrics) RecordGeneration(outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *recordedMetrics) RecordCompletion(call string, _ error, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordedMetrics) RecordContextLink(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, status)
}

type fixture struct {
	tickets   *testutil.MockTicketRepository
	templates *testutil.MockTemplateRepository
	rels      *testutil.MockRelationshipRepository
	llm       *testutil.MockTextGenerator
	metrics   *recordedMetrics
	policy    *access.Policy
	graph     *relservices.GraphService
	generate  *GenerateTicketUseCase
}

func testSettings() GenerationSettings {
	return GenerationSettings{
		Model:            "gpt-4o",
		TitleModel:       "gpt-4o-mini",
		MaxTokens:        500,
		TitleMaxTokens:   50,
		TitleTemperature: 0.3,
		Timeout:          5 * time.Second,
		MaxTimeout:       10 * time.Second,
	}
}

// answer replies with body to the body call and title to the title call.
func answer(body, title string) func(context.Context, ticket.CompletionRequest) (string, error) {
	return func(ctx context.Context, req ticket.CompletionRequest) (string, error) {
		if req.Model == "gpt-4o-mini" {
			return title, nil
		}
		return body, nil
	}
}

func newFixture() *fixture {
	log := logger.NewNop()
	f := &fixture{
		tickets:   testutil.NewMockTicketRepository(),
		templates: testutil.NewMockTemplateRepository(),
		rels:      testutil.NewMockRelationshipRepository(),
		llm:       &testutil.MockTextGenerator{CompleteFunc: answer(generatedBody, "Safari login button unresponsive")},
		metrics:   &recordedMetrics{},
	}
	f.policy = access.NewPolicy(testutil.AdminChecker(), log)
	f.graph = relservices.NewGraphService(f.rels, f.tickets, log)
	f.generate = NewGenerateTicketUseCase(f.tickets, f.templates, f.graph, f.llm, f.policy, testSettings(), f.metrics, log)
	return f
}

func (f *fixture) bugReport(t *testing.T) *tickettemplate.TicketTemplate {
	t.Helper()
	tpl := testutil.NewTemplate(testutil.BugReport(), nil)
	require.NoError(t, f.templates.Create(context.Background(), tpl))
	return tpl
}

func TestGenerateTicket_BugReportEndToEnd(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)

	result, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
		Caller:     alice,
		TemplateID: tpl.SID(),
		UserInput:  "Login button does nothing on Safari",
	})

	require.NoError(t, err)
	require.Len(t, f.llm.Requests, 2)
	body := f.llm.Requests[0]
	assert.Equal(t, "gpt-4o", body.Model)
	assert.Equal(t, 500, body.MaxTokens)
	assert.Contains(t, body.UserPrompt, "User Input: Login button does nothing on Safari")
	assert.Less(t,
		strings.Index(body.UserPrompt, "Description: Describe the bug"),
		strings.Index(body.UserPrompt, "Steps to Reproduce: List the steps"))

	title := f.llm.Requests[1]
	assert.Equal(t, "gpt-4o-mini", title.Model)
	assert.Equal(t, 50, title.MaxTokens)
	require.NotNil(t, title.Temperature)
	assert.InDelta(t, 0.3, *title.Temperature, 0.0001)

	assert.Equal(t, "Safari login button unresponsive", result.Ticket.Title)
	assert.Equal(t, generatedBody, result.Ticket.Description)
	assert.Equal(t, "Bug Report", result.Ticket.TicketType)
	assert.Equal(t, tpl.SID(), result.Ticket.TemplateID)
	assert.Equal(t, "active", result.Ticket.Status)
	assert.Equal(t, "alice", result.Ticket.CreatedBy)
	assert.Equal(t, "Login button does nothing on Safari", result.Ticket.UserInput)
	assert.Empty(t, result.Links)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, f.tickets.CreateCount())
	assert.Equal(t, []string{OutcomeSuccess}, f.metrics.outcomes)
}

func TestGenerateTicket_LinksContextTickets(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)
	first := f.tickets.Seed(testutil.NewTicket("Checkout fails on Safari", "Bug Report", "alice"))
	second := f.tickets.Seed(testutil.NewTicket("Safari CI job", "Task", "alice"))

	result, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
		Caller:           alice,
		TemplateID:       tpl.SID(),
		UserInput:        "Login button does nothing on Safari",
		ContextTicketIDs: []string{first.SID(), second.SID(), first.SID()},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{first.SID(), second.SID()}, result.Ticket.ContextTicketIDs)
	require.Len(t, result.Links, 2)
	for _, link := range result.Links {
		assert.Equal(t, dto.LinkStatusLinked, link.Status)
		assert.NotEmpty(t, link.RelationshipID)
	}
	assert.Equal(t, 2, f.rels.Len())

	edges, err := f.graph.FindEdges(context.Background(), result.Ticket.ID, first.SID())
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "context", edges[0].RelationshipType())

	prompt := f.llm.Requests[0].UserPrompt
	assert.Less(t, strings.Index(prompt, "Checkout fails on Safari"), strings.Index(prompt, "Safari CI job"))
	assert.Less(t, strings.Index(prompt, "Safari CI job"), strings.Index(prompt, "Template Structure:"))
}

func TestGenerateTicket_DeletedContextRejected(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)
	live := f.tickets.Seed(testutil.NewTicket("live", "Task", "alice"))
	gone := f.tickets.Seed(testutil.NewTicket("gone", "Task", "alice"))
	gone.SoftDelete()

	_, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
		Caller:           alice,
		TemplateID:       tpl.SID(),
		UserInput:        "Login button does nothing on Safari",
		ContextTicketIDs: []string{live.SID(), gone.SID()},
	})

	require.Error(t, err)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonInvalidContext))
	assert.Equal(t, gone.SID(), apperrors.GetAppError(err).Fields["ticketId"])
	assert.Equal(t, 0, f.tickets.CreateCount(), "no ticket is created")
	assert.Equal(t, 0, f.rels.Len(), "no edge is created")
	assert.Empty(t, f.llm.Requests, "the generator is never called")
	assert.Equal(t, []string{OutcomeInvalid}, f.metrics.outcomes)
}

func TestGenerateTicket_ValidationErrors(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)
	foreign := f.tickets.Seed(testutil.NewTicket("bob's", "Task", "bob"))
	private := testutil.NewTemplate(testutil.BugReport(), testutil.StrPtr("bob"))
	require.NoError(t, f.templates.Create(context.Background(), private))

	tests := []struct {
		name  string
		cmd   GenerateTicketCommand
		check func(error) bool
	}{
		{
			name:  "blank input",
			cmd:   GenerateTicketCommand{Caller: alice, TemplateID: tpl.SID(), UserInput: "   "},
			check: apperrors.IsValidationError,
		},
		{
			name:  "oversized input",
			cmd:   GenerateTicketCommand{Caller: alice, TemplateID: tpl.SID(), UserInput: strings.Repeat("x", 10001)},
			check: apperrors.IsValidationError,
		},
		{
			name:  "unknown template",
			cmd:   GenerateTicketCommand{Caller: alice, TemplateID: "tpl_missing", UserInput: "x"},
			check: apperrors.IsNotFoundError,
		},
		{
			name:  "template of another user",
			cmd:   GenerateTicketCommand{Caller: alice, TemplateID: private.SID(), UserInput: "x"},
			check: apperrors.IsNotFoundError,
		},
		{
			name: "unknown context ticket",
			cmd: GenerateTicketCommand{
				Caller: alice, TemplateID: tpl.SID(), UserInput: "x", ContextTicketIDs: []string{"tkt_missing"},
			},
			check: func(err error) bool { return apperrors.HasReason(err, apperrors.ReasonInvalidContext) },
		},
		{
			name: "context ticket not visible",
			cmd: GenerateTicketCommand{
				Caller: alice, TemplateID: tpl.SID(), UserInput: "x", ContextTicketIDs: []string{foreign.SID()},
			},
			check: func(err error) bool { return apperrors.HasReason(err, apperrors.ReasonInvalidContext) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.generate.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
	assert.Equal(t, 0, f.tickets.CreateCount())
}

func TestGenerateTicket_AdminMayUseAnyContext(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)
	foreign := f.tickets.Seed(testutil.NewTicket("bob's", "Task", "bob"))

	result, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
		Caller: admin, TemplateID: tpl.SID(), UserInput: "x", ContextTicketIDs: []string{foreign.SID()},
	})

	require.NoError(t, err)
	assert.Len(t, result.Links, 1)
}

func TestGenerateTicket_Timeout(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)
	f.llm.CompleteFunc = func(ctx context.Context, req ticket.CompletionRequest) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}
	settings := testSettings()
	settings.Timeout = 20 * time.Millisecond
	uc := NewGenerateTicketUseCase(f.tickets, f.templates, f.graph, f.llm, f.policy, settings, f.metrics, logger.NewNop())

	_, err := uc.Execute(context.Background(), GenerateTicketCommand{
		Caller: alice, TemplateID: tpl.SID(), UserInput: "Login button does nothing on Safari",
	})

	require.Error(t, err)
	assert.True(t, apperrors.HasReason(err, apperrors.ReasonGenerationTimeout))
	assert.Equal(t, 504, apperrors.GetAppError(err).Code)
	assert.Equal(t, 0, f.tickets.CreateCount())
	assert.Equal(t, []string{OutcomeTimeout}, f.metrics.outcomes)
}

func TestGenerateTicket_UpstreamFailures(t *testing.T) {
	tests := []struct {
		name string
		fn   func(context.Context, ticket.CompletionRequest) (string, error)
	}{
		{"error", func(context.Context, ticket.CompletionRequest) (string, error) { return "", errors.New("500 from provider") }},
		{"empty body", func(context.Context, ticket.CompletionRequest) (string, error) { return "  \n", nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tpl := f.bugReport(t)
			f.llm.CompleteFunc = tt.fn

			_, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
				Caller: alice, TemplateID: tpl.SID(), UserInput: "x",
			})

			require.Error(t, err)
			assert.True(t, apperrors.HasReason(err, apperrors.ReasonGenerationFailed))
			assert.Equal(t, 502, apperrors.GetAppError(err).Code)
			assert.Len(t, f.llm.Requests, 1, "no retry and no title call")
			assert.Equal(t, 0, f.tickets.CreateCount())
		})
	}
}

func TestGenerateTicket_TitleFallback(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)
	f.llm.CompleteFunc = func(ctx context.Context, req ticket.CompletionRequest) (string, error) {
		if req.Model == "gpt-4o-mini" {
			return "", errors.New("rate limited")
		}
		return generatedBody, nil
	}

	result, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
		Caller: alice, TemplateID: tpl.SID(), UserInput: "x",
	})

	require.NoError(t, err)
	assert.Equal(t, "Untitled Ticket", result.Ticket.Title)
}

func TestGenerateTicket_EdgeFailureIsPartialSuccess(t *testing.T) {
	f := newFixture()
	tpl := f.bugReport(t)
	ok := f.tickets.Seed(testutil.NewTicket("ok", "Task", "alice"))
	flaky := f.tickets.Seed(testutil.NewTicket("flaky", "Task", "alice"))
	f.rels.FailCreateTouching(flaky.SID(), errors.New("lock wait timeout"))

	result, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
		Caller: alice, TemplateID: tpl.SID(), UserInput: "x", ContextTicketIDs: []string{ok.SID(), flaky.SID()},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, f.tickets.CreateCount(), "the ticket stays committed")
	require.Len(t, result.Links, 2)
	assert.Equal(t, dto.LinkStatusLinked, result.Links[0].Status)
	assert.Equal(t, dto.LinkStatusFailed, result.Links[1].Status)
	assert.Contains(t, result.Links[1].Error, "lock wait timeout")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], flaky.SID())
	assert.Equal(t, []string{OutcomePartial}, f.metrics.outcomes)
	assert.Equal(t, []string{dto.LinkStatusLinked, dto.LinkStatusFailed}, f.metrics.links)
}

func TestGenerationSettings_TimeoutFor(t *testing.T) {
	s := testSettings()
	assert.Equal(t, 5*time.Second, s.timeoutFor(0))
	assert.Equal(t, 7*time.Second, s.timeoutFor(7))
	assert.Equal(t, 10*time.Second, s.timeoutFor(600))
}

func TestGetTicketContext(t *testing.T) {
	f := newFixture()
	log := logger.NewNop()
	uc := NewGetTicketContextUseCase(f.tickets, services.NewContextResolver(f.graph, f.tickets, log), f.policy, log)

	root := f.tickets.Seed(testutil.NewTicket("root", "Task", "alice"))
	linked := f.tickets.Seed(testutil.NewTicket("linked", "Task", "alice"))
	deleted := f.tickets.Seed(testutil.NewTicket("deleted", "Task", "alice"))
	_, err := f.graph.CreateEdge(context.Background(), root.SID(), linked.SID(), "related", "alice")
	require.NoError(t, err)
	_, err = f.graph.CreateEdge(context.Background(), deleted.SID(), root.SID(), "related", "alice")
	require.NoError(t, err)
	deleted.SoftDelete()

	got, err := uc.Execute(context.Background(), GetTicketContextQuery{Caller: alice, TicketID: root.SID()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, linked.SID(), got[0].ID)

	_, err = uc.Execute(context.Background(), GetTicketContextQuery{Caller: bob, TicketID: root.SID()})
	assert.True(t, apperrors.IsForbiddenError(err))

	_, err = uc.Execute(context.Background(), GetTicketContextQuery{Caller: alice, TicketID: "tkt_missing"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSoftDeleteAndRestoreTicket(t *testing.T) {
	f := newFixture()
	log := logger.NewNop()
	softDelete := NewSoftDeleteTicketUseCase(f.tickets, f.policy, log)
	restore := NewRestoreTicketUseCase(f.tickets, f.policy, log)
	seeded := f.tickets.Seed(testutil.NewTicket("Safari login", "Bug Report", "alice"))
	before := dto.ToTicketDTO(seeded)

	deleted, err := softDelete.Execute(context.Background(), SoftDeleteTicketCommand{Caller: alice, TicketID: seeded.SID()})
	require.NoError(t, err)
	assert.Equal(t, "deleted", deleted.Status)

	again, err := softDelete.Execute(context.Background(), SoftDeleteTicketCommand{Caller: alice, TicketID: seeded.SID()})
	require.NoError(t, err)
	assert.Equal(t, deleted.UpdatedAt, again.UpdatedAt, "second delete is a no-op")

	restored, err := restore.Execute(context.Background(), RestoreTicketCommand{Caller: alice, TicketID: seeded.SID()})
	require.NoError(t, err)
	assert.Equal(t, "active", restored.Status)
	assert.Equal(t, before.Title, restored.Title)
	assert.Equal(t, before.Description, restored.Description)
	assert.Equal(t, before.TicketType, restored.TicketType)
	assert.Equal(t, before.CreatedAt, restored.CreatedAt)
	assert.Equal(t, before.UserInput, restored.UserInput)

	_, err = softDelete.Execute(context.Background(), SoftDeleteTicketCommand{Caller: bob, TicketID: seeded.SID()})
	assert.True(t, apperrors.IsForbiddenError(err))

	f.tickets.SetUpdateError(errors.New("read only"))
	_, err = softDelete.Execute(context.Background(), SoftDeleteTicketCommand{Caller: admin, TicketID: seeded.SID()})
	assert.Error(t, err)
}

func TestTemplateUsageDropsToZeroAfterSoftDeletes(t *testing.T) {
	f := newFixture()
	log := logger.NewNop()
	guard := tktservices.NewUsageGuard(f.tickets, log)
	softDelete := NewSoftDeleteTicketUseCase(f.tickets, f.policy, log)
	tpl := f.bugReport(t)

	var ids []string
	for i := 0; i < 2; i++ {
		result, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
			Caller: alice, TemplateID: tpl.SID(), UserInput: "Login button does nothing on Safari",
		})
		require.NoError(t, err)
		ids = append(ids, result.Ticket.ID)
	}

	inUse, count, err := guard.IsTemplateInUse(context.Background(), tpl, "")
	require.NoError(t, err)
	assert.True(t, inUse)
	assert.Equal(t, int64(2), count)

	for _, id := range ids {
		_, err := softDelete.Execute(context.Background(), SoftDeleteTicketCommand{Caller: alice, TicketID: id})
		require.NoError(t, err)
	}

	inUse, count, err = guard.IsTemplateInUse(context.Background(), tpl, "")
	require.NoError(t, err)
	assert.False(t, inUse)
	assert.Zero(t, count)
}

func TestTemplateUsageCountsAdminGenerationsForOwner(t *testing.T) {
	f := newFixture()
	owner := "alice"
	tpl := testutil.NewTemplate(testutil.BugReport(), &owner)
	require.NoError(t, f.templates.Create(context.Background(), tpl))
	guard := tktservices.NewUsageGuard(f.tickets, logger.NewNop())

	result, err := f.generate.Execute(context.Background(), GenerateTicketCommand{
		Caller: admin, TemplateID: tpl.SID(), UserInput: "Login button does nothing on Safari",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bug Report", result.Ticket.TicketType)

	inUse, count, err := guard.IsTemplateInUse(context.Background(), tpl, tktservices.ScopeFilter(tpl))
	require.NoError(t, err)
	assert.True(t, inUse)
	assert.Equal(t, int64(1), count)
}

func TestGetTicket_RendersMarkdown(t *testing.T) {
	f := newFixture()
	uc := NewGetTicketUseCase(f.tickets, markdown.NewMarkdownService(), f.policy, logger.NewNop())
	created, err := ticket.NewTicket("Safari login", generatedBody, "Bug Report", "", "alice", "input", nil)
	require.NoError(t, err)
	f.tickets.Seed(created)

	got, err := uc.Execute(context.Background(), GetTicketQuery{Caller: alice, TicketID: created.SID()})

	require.NoError(t, err)
	assert.Contains(t, got.DescriptionHTML, "<h2")
	assert.Contains(t, got.DescriptionHTML, "Safari")
	require.Len(t, got.Sections, 2)
	assert.Equal(t, "Description", got.Sections[0].SectionTitle)
	assert.Equal(t, "Steps to Reproduce", got.Sections[1].SectionTitle)
}

func TestListTickets(t *testing.T) {
	f := newFixture()
	uc := NewListTicketsUseCase(f.tickets, f.policy, logger.NewNop())
	f.tickets.Seed(testutil.NewTicket("a1", "Bug Report", "alice"))
	f.tickets.Seed(testutil.NewTicket("a2", "Task", "alice"))
	f.tickets.Seed(testutil.NewTicket("b1", "Task", "bob"))
	gone := f.tickets.Seed(testutil.NewTicket("a3", "Task", "alice"))
	gone.SoftDelete()

	tests := []struct {
		name    string
		query   ListTicketsQuery
		want    []string
		wantErr func(error) bool
	}{
		{name: "own active, newest first", query: ListTicketsQuery{Caller: alice}, want: []string{"a2", "a1"}},
		{name: "by type", query: ListTicketsQuery{Caller: alice, TicketType: "Task"}, want: []string{"a2"}},
		{name: "deleted on request", query: ListTicketsQuery{Caller: alice, Status: "deleted"}, want: []string{"a3"}},
		{name: "all owners for admin", query: ListTicketsQuery{Caller: admin, Scope: ScopeAll}, want: []string{"b1", "a2", "a1"}},
		{name: "all owners refused for users", query: ListTicketsQuery{Caller: alice, Scope: ScopeAll}, wantErr: apperrors.IsForbiddenError},
		{name: "bad status", query: ListTicketsQuery{Caller: alice, Status: "closed"}, wantErr: apperrors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.query)
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err))
				return
			}
			require.NoError(t, err)
			titles := make([]string, 0, len(result.Items))
			for _, item := range result.Items {
				titles = append(titles, item.Title)
			}
			assert.Equal(t, tt.want, titles)
			assert.Equal(t, int64(len(tt.want)), result.Total)
			assert.Equal(t, 1, result.Page)
			assert.Equal(t, 20, result.PageSize)
		})
	}
}
