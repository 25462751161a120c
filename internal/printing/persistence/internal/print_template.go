package internal

import (
	"scout-server/internal/printing/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

type PrintTemplate struct {
	ID         string `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"not null"`
	HeaderHTML string `json:"header_html"`
	FooterHTML string `json:"footer_html"`
	CSS        string `json:"css" gorm:"column:css"`
	LogoURL    string `json:"logo_url"`
	IsDefault  bool   `json:"is_default" gorm:"index"`
}

func (PrintTemplate) TableName() string {
	return "print_templates"
}

func (s PrintTemplate) ToDomain() domain.PrintTemplate {
	return domain.PrintTemplate{
		ID:         shareddomain.ID(s.ID),
		Name:       s.Name,
		HeaderHTML: s.HeaderHTML,
		FooterHTML: s.FooterHTML,
		CSS:        s.CSS,
		LogoURL:    s.LogoURL,
		IsDefault:  s.IsDefault,
	}
}

func FromPrintTemplate(value domain.PrintTemplate) PrintTemplate {
	return PrintTemplate{
		ID:         value.ID.String(),
		Name:       value.Name,
		HeaderHTML: value.HeaderHTML,
		FooterHTML: value.FooterHTML,
		CSS:        value.CSS,
		LogoURL:    value.LogoURL,
		IsDefault:  value.IsDefault,
	}
}
