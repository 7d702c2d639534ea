package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type ContractHandler struct {
	svc *application.ContractService
}

func NewContractHandler(svc *application.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

// ListContracts godoc
// @Summary Contracts the caller is party to
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} contract.Contract
// @Router /api/contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	cs, err := h.svc.ListMine(c.Request.Context(), claims.UserID, claims.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cs)
}

// GetContract godoc
// @Summary Get a contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} contract.Contract
// @Failure 404 {object} response.ErrorResponse
// @Router /api/contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	ct, err := h.svc.Get(c.Request.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// SignContract godoc
// @Summary Sign a contract as client or freelancer
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param input body contract.SignInput true "Wallet signature"
// @Success 200 {object} contract.Contract
// @Failure 409 {object} response.ErrorResponse
// @Router /api/contracts/{id}/sign [post]
func (h *ContractHandler) SignContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input contract.SignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ct, err := h.svc.Sign(c.Request.Context(), utils.ActorFromContext(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// FundContract godoc
// @Summary Record the escrow deposit
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param input body contract.FundInput true "Escrow transaction"
// @Success 200 {object} contract.Contract
// @Router /api/contracts/{id}/fund [post]
func (h *ContractHandler) FundContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input contract.FundInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	ct, err := h.svc.Fund(c.Request.Context(), utils.ActorFromContext(c), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// CompleteMilestone godoc
// @Summary Sign off one milestone
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contract ID"
// @Param index path int true "Milestone index, from 0"
// @Success 200 {object} contract.Contract
// @Router /api/contracts/{id}/milestones/{index}/complete [post]
func (h *ContractHandler) CompleteMilestone(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid milestone index"})
		return
	}

	ct, err := h.svc.CompleteMilestone(c.Request.Context(), utils.ActorFromContext(c), id, index)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// CancelContract godoc
// @Summary Cancel a contract before completion
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} contract.Contract
// @Router /api/contracts/{id}/cancel [post]
func (h *ContractHandler) CancelContract(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}

	ct, err := h.svc.Cancel(c.Request.Context(), utils.ActorFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}
