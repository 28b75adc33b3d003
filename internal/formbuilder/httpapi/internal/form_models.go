package internal

import (
	"time"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/formbuilder/usecases"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

// Request models
type FieldSpecRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	MaxLength int    `json:"max_length,omitempty"`
	Required  bool   `json:"required,omitempty"`
}

type FormCreateRequest struct {
	Name         string             `json:"name"`
	DisplayTitle string             `json:"display_title"`
	WelcomeText  string             `json:"welcome_text"`
	Language     string             `json:"language"`
	Template     int                `json:"template"`
	Logo         *string            `json:"logo,omitempty"`
	Fields       []FieldSpecRequest `json:"fields,omitempty"`
}

type AddFieldsRequest struct {
	Fields []FieldSpecRequest `json:"fields"`
}

type FormsActionRequest struct {
	Action      string   `json:"action"`
	SelectedIDs []string `json:"selected_ids"`
}

// Response models
type FormResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	DisplayTitle string    `json:"display_title"`
	WelcomeText  string    `json:"welcome_text"`
	Language     string    `json:"language"`
	Template     int       `json:"template"`
	Logo         *string   `json:"logo,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type FormCreateResponse struct {
	FormResponse
	Added   []string `json:"added"`
	Skipped []string `json:"skipped"`
}

type AddFieldsResponse struct {
	Added   []string `json:"added"`
	Skipped []string `json:"skipped"`
}

type ColumnsResponse struct {
	Columns []string `json:"columns"`
}

type FormsActionResponse struct {
	Action  string            `json:"action"`
	Deleted []string          `json:"deleted"`
	Failed  map[string]string `json:"failed,omitempty"`
}

// Conversion functions
func ToFieldSpecs(fields []FieldSpecRequest) []domain.FieldSpec {
	specs := make([]domain.FieldSpec, len(fields))
	for i, f := range fields {
		specs[i] = domain.FieldSpec{
			Name:        f.Name,
			LogicalType: f.Type,
			MaxLength:   f.MaxLength,
			Required:    f.Required,
		}
	}
	return specs
}

func ToCreateFormRequest(body FormCreateRequest) usecases.CreateFormRequest {
	return usecases.CreateFormRequest{
		Name:         body.Name,
		DisplayTitle: body.DisplayTitle,
		WelcomeText:  body.WelcomeText,
		Language:     body.Language,
		Template:     body.Template,
		Logo:         body.Logo,
		Fields:       ToFieldSpecs(body.Fields),
	}
}

func ToFormResponse(form domain.LogicalForm) FormResponse {
	return FormResponse{
		ID:           form.ID.String(),
		Name:         form.Name.String(),
		DisplayTitle: string(form.DisplayTitle),
		WelcomeText:  string(form.WelcomeText),
		Language:     string(form.Language),
		Template:     int(form.Template),
		Logo:         form.Logo,
		Status:       string(form.Status),
		CreatedAt:    form.CreatedAt.Time,
		UpdatedAt:    form.UpdatedAt.Time,
	}
}

func ToFormCreateResponse(result usecases.CreateFormResult) FormCreateResponse {
	return FormCreateResponse{
		FormResponse: ToFormResponse(result.Form),
		Added:        nonNil(result.Added),
		Skipped:      nonNil(result.Skipped),
	}
}

func ToAddFieldsResponse(result usecases.AddFieldsResult) AddFieldsResponse {
	return AddFieldsResponse{
		Added:   nonNil(result.Added),
		Skipped: nonNil(result.Skipped),
	}
}

func ToIDs(values []string) []shareddomain.ID {
	ids := make([]shareddomain.ID, len(values))
	for i, v := range values {
		ids[i] = shareddomain.ID(v)
	}
	return ids
}

func ToFormsActionResponse(action string, result usecases.BulkDeleteResult) FormsActionResponse {
	response := FormsActionResponse{
		Action:  action,
		Deleted: make([]string, len(result.Deleted)),
	}
	for i, id := range result.Deleted {
		response.Deleted[i] = id.String()
	}
	if len(result.Failed) > 0 {
		response.Failed = make(map[string]string, len(result.Failed))
		for id, reason := range result.Failed {
			response.Failed[id.String()] = reason
		}
	}
	return response
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
