package domain

import (
	"strings"
	"time"

	"dms-server/internal/infra/utils"
	shareddomain "dms-server/internal/shared_kernel/domain"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

func ParseLanguage(value string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(value))) {
	case "", LanguageEnglish:
		return LanguageEnglish, nil
	case LanguageArabic:
		return LanguageArabic, nil
	default:
		return "", ErrInvalidLanguage
	}
}

type Template int

const (
	TemplateOne   Template = 1
	TemplateTwo   Template = 2
	TemplateThree Template = 3
)

func ParseTemplate(value int) (Template, error) {
	switch Template(value) {
	case 0:
		return TemplateOne, nil
	case TemplateOne, TemplateTwo, TemplateThree:
		return Template(value), nil
	default:
		return 0, ErrInvalidTemplate
	}
}

// FormStatus tracks the two-phase wizard: a form is a draft until its table
// has at least one user column.
type FormStatus string

const (
	FormStatusDraft  FormStatus = "draft"
	FormStatusActive FormStatus = "active"
)

type LogicalForm struct {
	ID           shareddomain.ID
	Name         Identifier
	DisplayTitle shareddomain.DisplayName
	WelcomeText  shareddomain.Description
	Language     Language
	Template     Template
	Logo         *string
	Status       FormStatus
	CreatedAt    utils.Time
	UpdatedAt    utils.Time
}

// TableName is the physical table backing the form.
func (f LogicalForm) TableName() Identifier {
	return f.Name
}

func (f LogicalForm) IsDraft() bool {
	return f.Status == FormStatusDraft
}

// Activate moves a draft form to active. It reports whether anything changed.
func (f *LogicalForm) Activate() bool {
	if f.Status == FormStatusActive {
		return false
	}
	f.Status = FormStatusActive
	f.UpdatedAt = utils.Time{Time: time.Now()}
	return true
}

func NewLogicalFormBuilder() *logicalFormBuilder {
	return &logicalFormBuilder{}
}

type logicalFormBuilder struct {
	actions []logicalFormHandler
}

type logicalFormHandler func(v *LogicalForm) error

func (b *logicalFormBuilder) WithName(value Identifier) *logicalFormBuilder {
	b.actions = append(b.actions, func(f *LogicalForm) error {
		f.Name = value
		return nil
	})
	return b
}

func (b *logicalFormBuilder) WithDisplayTitle(value string) *logicalFormBuilder {
	b.actions = append(b.actions, func(f *LogicalForm) error {
		f.DisplayTitle = shareddomain.DisplayName(strings.TrimSpace(value))
		return nil
	})
	return b
}

func (b *logicalFormBuilder) WithWelcomeText(value string) *logicalFormBuilder {
	b.actions = append(b.actions, func(f *LogicalForm) error {
		f.WelcomeText = shareddomain.Description(value)
		return nil
	})
	return b
}

func (b *logicalFormBuilder) WithLanguage(value string) *logicalFormBuilder {
	b.actions = append(b.actions, func(f *LogicalForm) error {
		language, err := ParseLanguage(value)
		if err != nil {
			return err
		}
		f.Language = language
		return nil
	})
	return b
}

func (b *logicalFormBuilder) WithTemplate(value int) *logicalFormBuilder {
	b.actions = append(b.actions, func(f *LogicalForm) error {
		template, err := ParseTemplate(value)
		if err != nil {
			return err
		}
		f.Template = template
		return nil
	})
	return b
}

func (b *logicalFormBuilder) WithLogo(value *string) *logicalFormBuilder {
	b.actions = append(b.actions, func(f *LogicalForm) error {
		f.Logo = value
		return nil
	})
	return b
}

func (b *logicalFormBuilder) Build() (LogicalForm, error) {
	now := utils.Time{Time: time.Now()}
	result := LogicalForm{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Language:  LanguageEnglish,
		Template:  TemplateOne,
		Status:    FormStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return LogicalForm{}, err
		}
	}

	if result.Name == "" {
		return LogicalForm{}, ErrInvalidIdentifier{Reason: "must not be empty"}
	}

	if result.DisplayTitle == "" {
		result.DisplayTitle = shareddomain.DisplayName(result.Name.Label())
	}

	return result, nil
}
