package ticket

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jirant/internal/application/ticket/usecases"
	"jirant/internal/shared/authorization"
	"jirant/internal/shared/utils"
)

type GenerateTicketRequest struct {
	TemplateID       string   `json:"templateId" binding:"required"`
	UserInput        string   `json:"userInput" binding:"required"`
	ContextTicketIDs []string `json:"contextTicketIds" binding:"omitempty,max=50,dive,required"`
	TimeoutSeconds   int      `json:"timeout_seconds" binding:"omitempty,gte=1"`
}

func (r *GenerateTicketRequest) ToCommand(caller authorization.Caller) usecases.GenerateTicketCommand {
	return usecases.GenerateTicketCommand{
		Caller:           caller,
		TemplateID:       strings.TrimSpace(r.TemplateID),
		UserInput:        r.UserInput,
		ContextTicketIDs: r.ContextTicketIDs,
		TimeoutSeconds:   r.TimeoutSeconds,
	}
}

func parseListTicketsQuery(c *gin.Context, caller authorization.Caller) usecases.ListTicketsQuery {
	pagination := utils.ParsePagination(c)
	return usecases.ListTicketsQuery{
		Caller:     caller,
		Status:     c.Query("status"),
		TicketType: c.Query("ticketType"),
		Scope:      c.Query("scope"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}
}
