package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/chama/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BatchesHandler struct {
	svs BatchServicer
}

func NewBatchesHandler(svs BatchServicer) *BatchesHandler {
	return &BatchesHandler{svs: svs}
}

type CreateBatchParams struct {
	Name               string          `binding:"required,min=1,max_bytes=100" json:"name"`
	ContributionAmount decimal.Decimal `json:"contributionAmount"`
	MaxMembers         int             `binding:"required,min=2,max=50"        json:"maxMembers"`
	CycleDays          int             `binding:"omitempty,min=1,max=365"      json:"cycleDays"`
}

// Create POST RouteGroup + BatchesRoute. Текущий юзер становится владельцем и первым участником группы.
func (h *BatchesHandler) Create(c *gin.Context) {
	var params CreateBatchParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	batch, err := h.svs.Create(ctx, service.CreateBatchArgs{
		OwnerID:            getUserIDFromContext(c),
		Name:               params.Name,
		ContributionAmount: params.ContributionAmount,
		MaxMembers:         params.MaxMembers,
		CycleDays:          params.CycleDays,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBatchResponse(batch))
}

// Index GET RouteGroup + BatchesRoute. Группы, в которых состоит текущий юзер.
func (h *BatchesHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	batches, err := h.svs.ListForUser(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBatchesResponse(batches))
}

type BatchDetailsResponse struct {
	BatchResponse
	Members []MemberResponse `json:"members"`
}

// Show GET RouteGroup + BatchRoute.
func (h *BatchesHandler) Show(c *gin.Context) {
	batchID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	batch, err := h.svs.Get(ctx, batchID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	members, err := h.svs.Members(ctx, batchID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := BatchDetailsResponse{
		BatchResponse: newBatchResponse(batch),
		Members:       make([]MemberResponse, len(members)),
	}
	for i, m := range members {
		response.Members[i] = MemberResponse{UserID: m.UserID, Position: m.Position, JoinedAt: m.JoinedAt}
	}
	c.JSON(http.StatusOK, response)
}

type JoinBatchResponse struct {
	Batch    BatchResponse `json:"batch"`
	Position int           `json:"position"`
}

// Join POST RouteGroup + BatchJoinRoute.
func (h *BatchesHandler) Join(c *gin.Context) {
	batchID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	batch, member, err := h.svs.Join(ctx, batchID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, JoinBatchResponse{Batch: newBatchResponse(batch), Position: member.Position})
}

// Schedule GET RouteGroup + BatchScheduleRoute. График выплат, пустой пока группа набирается.
func (h *BatchesHandler) Schedule(c *gin.Context) {
	batchID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payouts, err := h.svs.PayoutSchedule(ctx, batchID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]PayoutResponse, len(payouts))
	for i, p := range payouts {
		response[i] = PayoutResponse{
			UserID:   p.UserID,
			Position: p.Position,
			DueDate:  p.DueDate,
			Amount:   p.Amount.InexactFloat64(),
			Status:   p.Status,
		}
	}
	c.JSON(http.StatusOK, response)
}
