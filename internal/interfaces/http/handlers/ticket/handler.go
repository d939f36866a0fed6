package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jirant/internal/application/ticket/usecases"
	"jirant/internal/interfaces/http/handlers/common"
	"jirant/internal/shared/id"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils"
)

type Handler struct {
	generateUC   usecases.GenerateTicketExecutor
	contextUC    usecases.GetTicketContextExecutor
	softDeleteUC usecases.SoftDeleteTicketExecutor
	restoreUC    usecases.RestoreTicketExecutor
	getUC        usecases.GetTicketExecutor
	listUC       usecases.ListTicketsExecutor
	logger       logger.Interface
}

func NewHandler(
	generateUC usecases.GenerateTicketExecutor,
	contextUC usecases.GetTicketContextExecutor,
	softDeleteUC usecases.SoftDeleteTicketExecutor,
	restoreUC usecases.RestoreTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		generateUC:   generateUC,
		contextUC:    contextUC,
		softDeleteUC: softDeleteUC,
		restoreUC:    restoreUC,
		getUC:        getUC,
		listUC:       listUC,
		logger:       log,
	}
}

func parseTicketID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixTicket, "ticket")
}

// GenerateTicket godoc
// @Summary Generate a ticket from a template
// @Description Calls the text model, stores the ticket, then links every context ticket.
// @Description Link failures do not fail the request; they are reported in links and warnings.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body GenerateTicketRequest true "Generation input"
// @Success 201 {object} utils.APIResponse{data=dto.GenerationResultDTO}
// @Failure 400 {object} utils.APIResponse "validation or invalid_context"
// @Failure 404 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse "generation_failed"
// @Failure 504 {object} utils.APIResponse "generation_timeout"
// @Router /tickets/generate [post]
func (h *Handler) GenerateTicket(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	var req GenerateTicketRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), req.ToCommand(caller))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	message := "Ticket generated successfully"
	if len(result.Warnings) > 0 {
		message = "Ticket generated with warnings"
	}
	utils.CreatedResponse(c, result, message)
}

// ListTickets godoc
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param status query string false "active or deleted" Enums(active, deleted)
// @Param ticketType query string false "Template name"
// @Param scope query string false "all lists every user's tickets (admin only)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse{items=[]dto.TicketDTO}}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /tickets [get]
func (h *Handler) ListTickets(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), parseListTicketsQuery(c, caller))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetTicket godoc
// @Summary Get a ticket with rendered description
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID" example(tkt_xK9mP2vL3nQ)
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [get]
func (h *Handler) GetTicket(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Caller:   caller,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetTicketContext godoc
// @Summary List live tickets connected to a ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.TicketDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/context [get]
func (h *Handler) GetTicketContext(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.contextUC.Execute(c.Request.Context(), usecases.GetTicketContextQuery{
		Caller:   caller,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SoftDeleteTicket godoc
// @Summary Mark a ticket deleted
// @Description Idempotent. Edges are kept; deleted tickets drop out of context and usage counts.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id} [delete]
func (h *Handler) SoftDeleteTicket(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.softDeleteUC.Execute(c.Request.Context(), usecases.SoftDeleteTicketCommand{
		Caller:   caller,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket deleted successfully", result)
}

// RestoreTicket godoc
// @Summary Restore a soft-deleted ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /tickets/{id}/restore [post]
func (h *Handler) RestoreTicket(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.restoreUC.Execute(c.Request.Context(), usecases.RestoreTicketCommand{
		Caller:   caller,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket restored successfully", result)
}
