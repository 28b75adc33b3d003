package httpapi

import (
	"log/slog"
	"net/http"

	"dms-server/internal/formbuilder/httpapi/internal"
	"dms-server/internal/formbuilder/usecases"
	"dms-server/internal/infra/httpserver"
	"dms-server/internal/shared_kernel/domain"
)

const (
	createFormErrMessage    = "failed to create form"
	addFieldsErrMessage     = "failed to update form schema"
	deleteFormErrMessage    = "failed to delete form"
	listFormsErrMessage     = "failed to list forms"
	getFormErrMessage       = "failed to get form"
	listColumnsErrMessage   = "failed to list columns"
	unknownActionErrMessage = "unknown action"

	actionDelete = "delete"
)

func NewFormController(service usecases.FormRegistryService) *FormController {
	return &FormController{
		service: service,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service usecases.FormRegistryService
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/forms", c.listForms())
	router.Handle("POST /v1/forms", c.createForm())
	router.Handle("POST /v1/forms/actions", c.formsAction())
	router.Handle("GET /v1/forms/{id}", c.getForm())
	router.Handle("DELETE /v1/forms/{id}", c.deleteForm())
	router.Handle("POST /v1/forms/{id}/fields", c.addFields())
	router.Handle("GET /v1/forms/{id}/columns", c.listColumns())
}

func (c *FormController) listForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		forms, total, err := c.service.ListLogicalForms(r.Context(), pagination)
		if err != nil {
			replyWithServiceError(w, err, "listing forms", listFormsErrMessage)
			return
		}

		responses := make([]internal.FormResponse, len(forms))
		for i, form := range forms {
			responses[i] = internal.ToFormResponse(form)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *FormController) createForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FormCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create form request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidRequestErrMessage)
			return
		}

		result, err := c.service.CreateLogicalForm(r.Context(), internal.ToCreateFormRequest(body))
		if err != nil {
			replyWithServiceError(w, err, "creating form", createFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToFormCreateResponse(result))
	}
}

func (c *FormController) getForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		form, err := c.service.GetLogicalForm(r.Context(), domain.ID(id))
		if err != nil {
			replyWithServiceError(w, err, "getting form", getFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormResponse(form))
	}
}

func (c *FormController) deleteForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		err := c.service.DeleteLogicalForm(r.Context(), domain.ID(id))
		if err != nil {
			replyWithServiceError(w, err, "deleting form", deleteFormErrMessage)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *FormController) addFields() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		var body internal.AddFieldsRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding add fields request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidRequestErrMessage)
			return
		}

		result, err := c.service.AddFields(r.Context(), domain.ID(id), internal.ToFieldSpecs(body.Fields))
		if err != nil {
			replyWithServiceError(w, err, "adding fields", addFieldsErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAddFieldsResponse(result))
	}
}

func (c *FormController) listColumns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		columns, err := c.service.ListColumns(r.Context(), domain.ID(id))
		if err != nil {
			replyWithServiceError(w, err, "listing columns", listColumnsErrMessage)
			return
		}

		if columns == nil {
			columns = []string{}
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ColumnsResponse{Columns: columns})
	}
}

func (c *FormController) formsAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FormsActionRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding forms action request", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidRequestErrMessage)
			return
		}

		if body.Action != actionDelete {
			httpserver.ReplyWithFieldErrors(w, http.StatusUnprocessableEntity, unknownActionErrMessage,
				map[string]string{"action": "select a supported action"})
			return
		}
		if len(body.SelectedIDs) == 0 {
			httpserver.ReplyWithFieldErrors(w, http.StatusUnprocessableEntity, validationErrMessage,
				map[string]string{"selected_ids": "select at least one form"})
			return
		}

		result, err := c.service.DeleteLogicalForms(r.Context(), internal.ToIDs(body.SelectedIDs))
		if err != nil {
			replyWithServiceError(w, err, "deleting forms", deleteFormErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToFormsActionResponse(body.Action, result))
	}
}
