package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/httpserver"
	"dms-server/internal/shared_kernel/authz"
)

const (
	formsLocation = "/v1/forms"

	invalidRequestErrMessage  = "invalid request body"
	validationErrMessage      = "validation failed"
	forbiddenErrMessage       = "you are not allowed to perform this action"
	formNotFoundErrMessage    = "form not found"
	recordNotFoundErrMessage  = "record not found"
	tableNotFoundErrMessage   = "the form table no longer exists"
	invalidRecordIDErrMessage = "invalid record id"
	internalErrMessage        = "internal server error"
)

// replyWithServiceError maps a usecase error to a response. fallback is the
// message used when the error is a DDL failure or anything unexpected.
func replyWithServiceError(w http.ResponseWriter, err error, operation, fallback string) {
	var validation domain.ValidationErrors
	switch {
	case errors.Is(err, authz.ErrForbidden):
		httpserver.ReplyWithError(w, http.StatusForbidden, forbiddenErrMessage)
	case errors.As(err, &validation):
		httpserver.ReplyWithFieldErrors(w, http.StatusUnprocessableEntity, validationErrMessage, validation)
	case errors.Is(err, usecases.ErrDuplicateName):
		httpserver.ReplyWithFieldErrors(w, http.StatusConflict, usecases.ErrDuplicateName.Error(),
			map[string]string{"name": usecases.ErrDuplicateName.Error()})
	case errors.Is(err, usecases.ErrFormNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, formNotFoundErrMessage)
	case errors.Is(err, usecases.ErrRecordNotFound):
		httpserver.ReplyWithError(w, http.StatusNotFound, recordNotFoundErrMessage)
	case errors.Is(err, domain.ErrTableNotFound):
		slog.Warn(operation+": stale form reference", slog.String("error", err.Error()))
		w.Header().Set("Location", formsLocation)
		httpserver.ReplyWithError(w, http.StatusNotFound, tableNotFoundErrMessage)
	case errors.Is(err, domain.ErrDDLFailed):
		slog.Error(operation, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, fallback)
	default:
		slog.Error(operation, slog.String("error", err.Error()))
		httpserver.ReplyWithError(w, http.StatusInternalServerError, internalErrMessage)
	}
}
