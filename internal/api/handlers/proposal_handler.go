package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/proposal"
	"github.com/linskybing/freelance-market/pkg/response"
	"github.com/linskybing/freelance-market/pkg/utils"
)

type ProposalHandler struct {
	svc *application.ProposalService
}

func NewProposalHandler(svc *application.ProposalService) *ProposalHandler {
	return &ProposalHandler{svc: svc}
}

// SubmitProposal godoc
// @Summary Bid on an open job
// @Tags proposals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param input body proposal.CreateProposalInput true "Proposal"
// @Success 201 {object} proposal.Proposal
// @Failure 409 {object} response.ErrorResponse "Job not open or duplicate proposal"
// @Router /api/jobs/{id}/proposals [post]
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	jobID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	var input proposal.CreateProposalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.svc.Submit(c.Request.Context(), utils.ActorFromContext(c), jobID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListJobProposals godoc
// @Summary Proposals on a job
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {array} proposal.Proposal
// @Failure 403 {object} response.ErrorResponse
// @Router /api/jobs/{id}/proposals [get]
func (h *ProposalHandler) ListJobProposals(c *gin.Context) {
	jobID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	ps, err := h.svc.ListForJob(c.Request.Context(), jobID, claims.UserID, claims.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// ListMyProposals godoc
// @Summary The caller's proposals
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Success 200 {array} proposal.Proposal
// @Router /api/proposals/mine [get]
func (h *ProposalHandler) ListMyProposals(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "unauthorized"})
		return
	}

	ps, err := h.svc.ListMine(c.Request.Context(), uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ps)
}

// WithdrawProposal godoc
// @Summary Withdraw a pending proposal
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} response.MessageResponse
// @Router /api/proposals/{id}/withdraw [post]
func (h *ProposalHandler) WithdrawProposal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}

	if err := h.svc.Withdraw(c.Request.Context(), utils.ActorFromContext(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Proposal withdrawn"})
}

// AcceptProposal godoc
// @Summary Accept a proposal and draft the contract
// @Description Other pending proposals on the job are rejected.
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 201 {object} contract.Contract
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /api/proposals/{id}/accept [post]
func (h *ProposalHandler) AcceptProposal(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid id"})
		return
	}

	ct, err := h.svc.Accept(c.Request.Context(), utils.ActorFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}
