package internal

import "scout-server/internal/printing/domain"

type TemplateRequest struct {
	HeaderHTML string `json:"header_html"`
	FooterHTML string `json:"footer_html"`
	CSS        string `json:"css"`
	LogoURL    string `json:"logo_url"`
}

type TemplateResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	HeaderHTML string `json:"header_html"`
	FooterHTML string `json:"footer_html"`
	CSS        string `json:"css"`
	LogoURL    string `json:"logo_url"`
	IsDefault  bool   `json:"is_default"`
}

type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

func ToTemplateResponse(template domain.PrintTemplate) TemplateResponse {
	return TemplateResponse{
		ID:         template.ID.String(),
		Name:       template.Name,
		HeaderHTML: template.HeaderHTML,
		FooterHTML: template.FooterHTML,
		CSS:        template.CSS,
		LogoURL:    template.LogoURL,
		IsDefault:  template.IsDefault,
	}
}

func ToTemplateListResponse(templates []domain.PrintTemplate) TemplateListResponse {
	response := TemplateListResponse{Templates: make([]TemplateResponse, len(templates))}
	for i, template := range templates {
		response.Templates[i] = ToTemplateResponse(template)
	}
	return response
}
