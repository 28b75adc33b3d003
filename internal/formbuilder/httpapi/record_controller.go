package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	formdomain "dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/httpapi/internal"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/httpserver"
	"dms-server/internal/shared_kernel/domain"
)

const (
	entryFormErrMessage         = "failed to build entry form"
	listRecordsErrMessage       = "failed to list records"
	getRecordErrMessage         = "failed to get record"
	createRecordErrMessage      = "failed to create record"
	updateRecordErrMessage      = "failed to update record"
	deleteRecordErrMessage      = "failed to delete record"
	exportRecordsErrMessage     = "failed to export records"
	unsupportedFormatErrMessage = "unsupported export format"
)

func NewRecordController(service usecases.RecordService) *RecordController {
	return &RecordController{
		service: service,
	}
}

var _ httpserver.Controller = &RecordController{}

type RecordController struct {
	service usecases.RecordService
}

func (c *RecordController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/forms/{id}/entry", c.entryForm())
	router.Handle("GET /v1/forms/{id}/records", c.listRecords())
	router.Handle("POST /v1/forms/{id}/records", c.createRecord())
	router.Handle("GET /v1/forms/{id}/records/{record_id}", c.getRecord())
	router.Handle("PUT /v1/forms/{id}/records/{record_id}", c.updateRecord())
	router.Handle("DELETE /v1/forms/{id}/records/{record_id}", c.deleteRecord())
	router.Handle("GET /v1/forms/{id}/export/{format}", c.exportRecords())
}

func (c *RecordController) entryForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		descriptor, err := c.service.EntryForm(r.Context(), domain.ID(id))
		if err != nil {
			replyWithServiceError(w, err, "building entry form", entryFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormDescriptorResponse(descriptor))
	}
}

func (c *RecordController) listRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		page, err := c.service.ListRecords(r.Context(), domain.ID(id), pagination)
		if err != nil {
			replyWithServiceError(w, err, "listing records", listRecordsErrMessage)
			return
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, internal.ToRecordResponses(page.Records), page.Total, params)
	}
}

func (c *RecordController) getRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		recordID, ok := parseRecordID(w, r)
		if !ok {
			return
		}

		record, err := c.service.GetRecord(r.Context(), domain.ID(id), recordID)
		if err != nil {
			replyWithServiceError(w, err, "getting record", getRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToRecordResponse(record))
	}
}

func (c *RecordController) createRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.RecordRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create record request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidRequestErrMessage)
			return
		}

		recordID, err := c.service.CreateRecord(r.Context(), domain.ID(id), body.Values)
		if err != nil {
			replyWithSubmissionError(w, err, "creating record", createRecordErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.RecordCreatedResponse{ID: int64(recordID)})
	}
}

func (c *RecordController) updateRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		recordID, ok := parseRecordID(w, r)
		if !ok {
			return
		}

		var body internal.RecordRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update record request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidRequestErrMessage)
			return
		}

		err = c.service.UpdateRecord(r.Context(), domain.ID(id), recordID, body.Values)
		if err != nil {
			replyWithSubmissionError(w, err, "updating record", updateRecordErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *RecordController) deleteRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		recordID, ok := parseRecordID(w, r)
		if !ok {
			return
		}

		err := c.service.DeleteRecord(r.Context(), domain.ID(id), recordID)
		if err != nil {
			replyWithServiceError(w, err, "deleting record", deleteRecordErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *RecordController) exportRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		format := r.PathValue("format")

		export, err := c.service.ExportRecords(r.Context(), domain.ID(id), format)
		if errors.Is(err, usecases.ErrUnsupportedFormat) {
			httpserver.ReplyWithError(w, http.StatusBadRequest, unsupportedFormatErrMessage)
			return
		}
		if err != nil {
			replyWithServiceError(w, err, "exporting records", exportRecordsErrMessage)
			return
		}

		w.Header().Set("Content-Type", export.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
		w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(export.Data); err != nil {
			slog.Error("writing export", slog.String("file", export.FileName), slog.String("error", err.Error()))
		}
	}
}

func parseRecordID(w http.ResponseWriter, r *http.Request) (formdomain.RecordID, bool) {
	recordID, err := formdomain.ParseRecordID(r.PathValue("record_id"))
	if err != nil {
		httpserver.ReplyWithError(w, http.StatusBadRequest, invalidRecordIDErrMessage)
		return 0, false
	}
	return recordID, true
}

// replyWithSubmissionError answers a rejected submission with the field errors
// and the entry form prefilled with what was sent.
func replyWithSubmissionError(w http.ResponseWriter, err error, operation, fallback string) {
	var submission *usecases.SubmissionError
	if !errors.As(err, &submission) {
		replyWithServiceError(w, err, operation, fallback)
		return
	}

	httpserver.ReplyJSONResponse(w, http.StatusUnprocessableEntity, internal.SubmissionErrorResponse{
		Message: validationErrMessage,
		Fields:  submission.Errors,
		Form:    internal.ToFormDescriptorResponse(submission.Form),
	})
}
