// Package dto defines the request bodies accepted by the HTTP API and their
// validation rules.
package dto

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"template-renderer/internal/model"
	"template-renderer/pkg/fsutils"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func styleValues() []any {
	vals := make([]any, len(model.Styles))
	for i, s := range model.Styles {
		vals[i] = string(s)
	}
	return vals
}

// CreateClientConfigurationRequest is the body of POST /client-templates.
type CreateClientConfigurationRequest struct {
	ClientID    string                    `json:"clientId"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Style       string                    `json:"style"`
	Sections    []string                  `json:"sections"`
	Company     model.Company             `json:"company"`
	Theme       *model.Theme              `json:"theme"`
	CustomData  map[string]map[string]any `json:"customData"`
}

// Validate checks field-level rules. Required-section membership is checked
// by the configuration manager, not here.
func (r CreateClientConfigurationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ClientID,
			validation.Required,
			validation.Length(1, fsutils.MaxNameLength),
			validation.Match(identifierPattern)),
		validation.Field(&r.Style,
			validation.Required,
			validation.In(styleValues()...)),
		validation.Field(&r.Sections, validation.Required),
		validation.Field(&r.Company, validation.By(companyHasName)),
	)
}

func companyHasName(value any) error {
	company, ok := value.(model.Company)
	if !ok || strings.TrimSpace(company.Name) == "" {
		return validation.NewError("validation_company_name", "company name is required")
	}
	return nil
}

// UpdateClientConfigurationRequest is the partial body of
// PUT /client-templates/:clientId/configuration. Nil fields are left
// untouched.
type UpdateClientConfigurationRequest struct {
	Name        *string                      `json:"name"`
	Description *string                      `json:"description"`
	Style       *string                      `json:"style"`
	Sections    []model.SectionConfiguration `json:"sections"`
	Company     *model.Company               `json:"company"`
	Theme       *model.Theme                 `json:"theme"`
}

// Validate checks the fields that were supplied.
func (r UpdateClientConfigurationRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Style, validation.NilOrNotEmpty, validation.By(styleIsKnown)),
	)
}

func styleIsKnown(value any) error {
	style, ok := value.(*string)
	if !ok || style == nil {
		return nil
	}
	if !model.ValidStyle(*style) {
		return validation.NewError("validation_style", "unknown style")
	}
	return nil
}
