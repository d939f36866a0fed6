package tickettype

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jirant/internal/application/tickettemplate/usecases"
	"jirant/internal/interfaces/http/handlers/common"
	"jirant/internal/shared/id"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils"
)

type Handler struct {
	createUC  usecases.CreateTicketTypeExecutor
	updateUC  usecases.UpdateTicketTypeExecutor
	deleteUC  usecases.DeleteTicketTypeExecutor
	usageUC   usecases.CheckTicketTypeUsageExecutor
	restoreUC usecases.RestoreTicketTypeExecutor
	getUC     usecases.GetTicketTypeExecutor
	listUC    usecases.ListTicketTypesExecutor
	seedUC    usecases.SeedDefaultTicketTypesExecutor
	logger    logger.Interface
}

func NewHandler(
	createUC usecases.CreateTicketTypeExecutor,
	updateUC usecases.UpdateTicketTypeExecutor,
	deleteUC usecases.DeleteTicketTypeExecutor,
	usageUC usecases.CheckTicketTypeUsageExecutor,
	restoreUC usecases.RestoreTicketTypeExecutor,
	getUC usecases.GetTicketTypeExecutor,
	listUC usecases.ListTicketTypesExecutor,
	seedUC usecases.SeedDefaultTicketTypesExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		usageUC:   usageUC,
		restoreUC: restoreUC,
		getUC:     getUC,
		listUC:    listUC,
		seedUC:    seedUC,
		logger:    log,
	}
}

func parseTicketTypeID(c *gin.Context) (string, error) {
	return utils.ParseSIDParam(c, "id", id.PrefixTemplate, "ticket type")
}

// ListTicketTypes godoc
// @Summary List ticket types
// @Description System templates and the caller's own templates, ordered by tier then name
// @Tags ticket-types
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]dto.TicketTypeDTO}
// @Failure 401 {object} utils.APIResponse
// @Router /ticket-types [get]
func (h *Handler) ListTicketTypes(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketTypesQuery{Caller: caller})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateTicketType godoc
// @Summary Create a ticket type
// @Tags ticket-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTicketTypeRequest true "Template definition"
// @Success 201 {object} utils.APIResponse{data=dto.TicketTypeDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "duplicate_name"
// @Router /ticket-types [post]
func (h *Handler) CreateTicketType(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	var req CreateTicketTypeRequest
	if !common.BindJSON(c, &req) {
		h.logger.Debugw("invalid request body for create ticket type", "user_id", caller.UserID)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketTypeCommand{
		Caller:     caller,
		Definition: req.ToDefinition(),
		System:     req.IsSystem,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket type created successfully")
}

// GetTicketType godoc
// @Summary Get a ticket type
// @Tags ticket-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID" example(tpl_xK9mP2vL3nQ)
// @Success 200 {object} utils.APIResponse{data=dto.TicketTypeDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /ticket-types/{id} [get]
func (h *Handler) GetTicketType(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketTypeID, err := parseTicketTypeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetTicketTypeQuery{
		Caller:       caller,
		TicketTypeID: ticketTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateTicketType godoc
// @Summary Replace a ticket type
// @Description Renaming is refused while active tickets still reference the template
// @Tags ticket-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Param request body TicketTypeRequest true "Template definition"
// @Success 200 {object} utils.APIResponse{data=dto.TicketTypeDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "template_in_use or duplicate_name"
// @Router /ticket-types/{id} [put]
func (h *Handler) UpdateTicketType(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketTypeID, err := parseTicketTypeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TicketTypeRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketTypeCommand{
		Caller:       caller,
		TicketTypeID: ticketTypeID,
		Definition:   req.ToDefinition(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket type updated successfully", result)
}

// DeleteTicketType godoc
// @Summary Delete a ticket type
// @Description Returns the deleted template as a snapshot accepted by restore
// @Tags ticket-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Success 200 {object} utils.APIResponse{data=dto.TicketTypeDTO}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "template_in_use"
// @Router /ticket-types/{id} [delete]
func (h *Handler) DeleteTicketType(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketTypeID, err := parseTicketTypeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	snapshot, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketTypeCommand{
		Caller:       caller,
		TicketTypeID: ticketTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket type deleted successfully", snapshot)
}

// CheckUsage godoc
// @Summary Count active tickets using a ticket type
// @Tags ticket-types
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket type ID"
// @Success 200 {object} utils.APIResponse{data=dto.UsageDTO}
// @Failure 404 {object} utils.APIResponse
// @Router /ticket-types/{id}/check-usage [get]
func (h *Handler) CheckUsage(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketTypeID, err := parseTicketTypeID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.usageUC.Execute(c.Request.Context(), usecases.CheckTicketTypeUsageQuery{
		Caller:       caller,
		TicketTypeID: ticketTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RestoreTicketType godoc
// @Summary Recreate a deleted ticket type from its snapshot
// @Description The restored template receives a new ID
// @Tags ticket-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RestoreTicketTypeRequest true "Snapshot returned by delete"
// @Success 201 {object} utils.APIResponse{data=dto.TicketTypeDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "duplicate_name"
// @Router /ticket-types/restore [post]
func (h *Handler) RestoreTicketType(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	var req RestoreTicketTypeRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.restoreUC.Execute(c.Request.Context(), usecases.RestoreTicketTypeCommand{
		Caller:   caller,
		Snapshot: req.ToDefinition(),
		System:   req.IsSystem,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("ticket type restored from snapshot", "previous_id", req.ID, "id", result.ID)
	utils.CreatedResponse(c, result, "Ticket type restored successfully")
}

// SeedDefaults godoc
// @Summary Copy the default ticket types into the caller's account
// @Description Names the caller already owns are skipped
// @Tags ticket-types
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=dto.SeedResultDTO}
// @Router /ticket-types/defaults [post]
func (h *Handler) SeedDefaults(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	result, err := h.seedUC.Execute(c.Request.Context(), usecases.SeedDefaultTicketTypesCommand{UserID: caller.UserID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
