package internal

import (
	"time"

	"dms-server/internal/formbuilder/domain"
	"dms-server/internal/infra/utils"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

type LogicalForm struct {
	ID           string    `json:"id" msgpack:"id" gorm:"primaryKey"`
	Name         string    `json:"name" msgpack:"name" gorm:"uniqueIndex;not null"`
	DisplayTitle string    `json:"display_title" msgpack:"display_title"`
	WelcomeText  string    `json:"welcome_text" msgpack:"welcome_text"`
	Language     string    `json:"language" msgpack:"language" gorm:"not null;default:en"`
	Template     int       `json:"template" msgpack:"template" gorm:"not null;default:1"`
	Logo         *string   `json:"logo,omitempty" msgpack:"logo,omitempty"`
	Status       string    `json:"status" msgpack:"status" gorm:"index;not null"`
	CreatedAt    time.Time `json:"created_at" msgpack:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" msgpack:"updated_at"`
}

func (LogicalForm) TableName() string {
	return "logical_forms"
}

func (m LogicalForm) ToDomain() domain.LogicalForm {
	return domain.LogicalForm{
		ID:           shareddomain.ID(m.ID),
		Name:         domain.Identifier(m.Name),
		DisplayTitle: shareddomain.DisplayName(m.DisplayTitle),
		WelcomeText:  shareddomain.Description(m.WelcomeText),
		Language:     domain.Language(m.Language),
		Template:     domain.Template(m.Template),
		Logo:         m.Logo,
		Status:       domain.FormStatus(m.Status),
		CreatedAt:    utils.Time{Time: m.CreatedAt},
		UpdatedAt:    utils.Time{Time: m.UpdatedAt},
	}
}

func FromLogicalForm(value domain.LogicalForm) LogicalForm {
	return LogicalForm{
		ID:           value.ID.String(),
		Name:         value.Name.String(),
		DisplayTitle: string(value.DisplayTitle),
		WelcomeText:  string(value.WelcomeText),
		Language:     string(value.Language),
		Template:     int(value.Template),
		Logo:         value.Logo,
		Status:       string(value.Status),
		CreatedAt:    value.CreatedAt.Time,
		UpdatedAt:    value.UpdatedAt.Time,
	}
}
