package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/freelance-market/internal/application"
	"github.com/linskybing/freelance-market/internal/domain/account"
	"github.com/linskybing/freelance-market/internal/domain/contract"
	"github.com/linskybing/freelance-market/pkg/response"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{application.ErrInvalidBudget, http.StatusBadRequest},
	{application.ErrInvalidJob, http.StatusBadRequest},
	{application.ErrUnknownAction, http.StatusBadRequest},
	{application.ErrJobInProgress, http.StatusBadRequest},
	{application.ErrUnsupportedFileType, http.StatusBadRequest},
	{account.ErrUnknownRole, http.StatusBadRequest},
	{account.ErrUnknownProfileField, http.StatusBadRequest},
	{account.ErrInvalidFieldValue, http.StatusBadRequest},
	{account.ErrUnknownSetting, http.StatusBadRequest},
	{account.ErrInvalidSetting, http.StatusBadRequest},
	{contract.ErrMissingSignature, http.StatusBadRequest},
	{contract.ErrMilestoneIndex, http.StatusBadRequest},
	{contract.ErrUnderfunded, http.StatusBadRequest},

	{application.ErrInvalidCredentials, http.StatusUnauthorized},

	{application.ErrForbidden, http.StatusForbidden},
	{application.ErrAccountSuspended, http.StatusForbidden},
	{application.ErrReservedAccount, http.StatusForbidden},

	{application.ErrJobNotFound, http.StatusNotFound},
	{application.ErrAccountNotFound, http.StatusNotFound},
	{application.ErrProposalNotFound, http.StatusNotFound},
	{application.ErrContractNotFound, http.StatusNotFound},
	{application.ErrNotificationNotFound, http.StatusNotFound},

	{application.ErrInvalidTransition, http.StatusConflict},
	{application.ErrJobNotEditable, http.StatusConflict},
	{application.ErrJobNotOpen, http.StatusConflict},
	{application.ErrJobTaken, http.StatusConflict},
	{application.ErrEmailTaken, http.StatusConflict},
	{application.ErrDuplicateProposal, http.StatusConflict},
	{application.ErrProposalNotPending, http.StatusConflict},
	{contract.ErrInvalidState, http.StatusConflict},
	{contract.ErrAlreadySigned, http.StatusConflict},
	{contract.ErrMilestoneDone, http.StatusConflict},
	{contract.ErrJobDiverged, http.StatusConflict},

	{application.ErrStorageDisabled, http.StatusServiceUnavailable},
}

// writeError answers with the status mapped to err. Unmapped errors are
// logged and hidden behind a generic message.
func writeError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			c.JSON(e.status, response.ErrorResponse{Error: err.Error()})
			return
		}
	}
	slog.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
}

// bindError renders binding failures as friendly per-field messages.
func bindError(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl := fieldLabel(fe.StructField())

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "max":
			msg = fmt.Sprintf("%s must be at most %s characters", lbl, fe.Param())
		case "gte":
			msg = fmt.Sprintf("%s must be at least %s", lbl, fe.Param())
		case "gt":
			msg = fmt.Sprintf("%s must be greater than %s", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		case "oneof":
			msg = fmt.Sprintf("%s must be one of [%s]", lbl, fe.Param())
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
}

// fieldLabel turns a Go field name into its JSON spelling: BudgetMax -> budgetMax.
func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	if field == "ID" {
		return "id"
	}
	if strings.HasSuffix(field, "ID") {
		field = strings.TrimSuffix(field, "ID") + "Id"
	}
	return strings.ToLower(field[:1]) + field[1:]
}
