package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	userService UserServicer
}

func NewProfileHandler(userService UserServicer) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// Show GET RouteGroup + ProfileRoute.
func (h *ProfileHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.Profile(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type UpdateProfileParams struct {
	FullName string `binding:"required,min=1,max_bytes=255" json:"fullName"`
}

// Update PATCH RouteGroup + ProfileRoute.
func (h *ProfileHandler) Update(c *gin.Context) {
	var params UpdateProfileParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.UpdateProfile(ctx, getUserIDFromContext(c), params.FullName)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

type UserDataResponse struct {
	User               UserResponse          `json:"user"`
	Batches            []BatchResponse       `json:"batches"`
	SavingsBalance     float64               `json:"savingsBalance"`
	Referrals          int                   `json:"referrals"`
	RecentTransactions []TransactionResponse `json:"recentTransactions"`
}

// Data GET RouteGroup + UserDataRoute. Сводка по пользователю для главного экрана.
func (h *ProfileHandler) Data(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	data, err := h.userService.UserData(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	recent := make([]TransactionResponse, len(data.RecentTransactions))
	for i := range data.RecentTransactions {
		recent[i] = newTransactionResponse(&data.RecentTransactions[i])
	}

	c.JSON(http.StatusOK, UserDataResponse{
		User:               newUserResponse(data.User),
		Batches:            newBatchesResponse(data.Batches),
		SavingsBalance:     data.SavingsBalance.InexactFloat64(),
		Referrals:          data.Referrals,
		RecentTransactions: recent,
	})
}
