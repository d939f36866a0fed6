package relationship

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jirant/internal/application/relationship/usecases"
	"jirant/internal/interfaces/http/handlers/common"
	"jirant/internal/shared/errors"
	"jirant/internal/shared/logger"
	"jirant/internal/shared/utils"
)

type CreateRelationshipRequest struct {
	Ticket1          string `json:"ticket1" binding:"required"`
	Ticket2          string `json:"ticket2" binding:"required"`
	RelationshipType string `json:"relationshipType" binding:"omitempty,max=50"`
}

type DeleteRelationshipRequest struct {
	Ticket1 string `json:"ticket1" binding:"required"`
	Ticket2 string `json:"ticket2" binding:"required"`
}

type Handler struct {
	createUC usecases.CreateRelationshipExecutor
	deleteUC usecases.DeleteRelationshipExecutor
	listUC   usecases.ListRelationshipsExecutor
	logger   logger.Interface
}

func NewHandler(
	createUC usecases.CreateRelationshipExecutor,
	deleteUC usecases.DeleteRelationshipExecutor,
	listUC usecases.ListRelationshipsExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   log,
	}
}

// ListRelationships godoc
// @Summary List edges touching a ticket
// @Description With ticket2 set, returns only the edge between the two tickets
// @Tags ticket-relationships
// @Produce json
// @Security BearerAuth
// @Param ticket1 query string true "Ticket ID"
// @Param ticket2 query string false "Other ticket ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.RelationshipDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /ticket-relationships [get]
func (h *Handler) ListRelationships(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	ticketID := c.Query("ticket1")
	if ticketID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("ticket1 query parameter is required"))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListRelationshipsQuery{
		Caller:   caller,
		TicketID: ticketID,
		OtherID:  c.Query("ticket2"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateRelationship godoc
// @Summary Link two tickets
// @Description The pair is unordered; a second link between the same tickets is rejected
// @Tags ticket-relationships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateRelationshipRequest true "Edge"
// @Success 201 {object} utils.APIResponse{data=dto.RelationshipDTO}
// @Failure 400 {object} utils.APIResponse "invalid_edge"
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse "duplicate_edge"
// @Router /ticket-relationships [post]
func (h *Handler) CreateRelationship(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	var req CreateRelationshipRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateRelationshipCommand{
		Caller:           caller,
		Ticket1:          req.Ticket1,
		Ticket2:          req.Ticket2,
		RelationshipType: req.RelationshipType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Relationship created successfully")
}

// DeleteRelationship godoc
// @Summary Remove the edge between two tickets
// @Tags ticket-relationships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DeleteRelationshipRequest true "Pair"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /ticket-relationships [delete]
func (h *Handler) DeleteRelationship(c *gin.Context) {
	caller, ok := common.RequireCaller(c)
	if !ok {
		return
	}

	var req DeleteRelationshipRequest
	if !common.BindJSON(c, &req) {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteRelationshipCommand{
		Caller:  caller,
		Ticket1: req.Ticket1,
		Ticket2: req.Ticket2,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Relationship deleted successfully", nil)
}
