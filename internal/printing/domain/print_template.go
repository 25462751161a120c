package domain

import (
	"strings"
	"time"

	"scout-server/internal/infra/utils"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

const (
	// PrintDateLayout is the dd/mm/yyyy format of the {{date}} placeholder.
	PrintDateLayout = "02/01/2006"

	TablePlaceholder = "{{table.display_name}}"
	DatePlaceholder  = "{{date}}"

	// OrganizationTitle stands in for the table name on documents that are
	// not bound to a table.
	OrganizationTitle = "Gestion des Scouts"
)

// PrintTemplate frames every printed document. Header and footer are trusted
// HTML written by admins.
type PrintTemplate struct {
	ID         shareddomain.ID
	Name       string
	HeaderHTML string
	FooterHTML string
	CSS        string
	LogoURL    string
	IsDefault  bool
}

func DefaultPrintTemplate() PrintTemplate {
	return PrintTemplate{
		ID:         shareddomain.ID(utils.GenerateUUID()),
		Name:       "Default",
		HeaderHTML: "<h1>" + TablePlaceholder + "</h1>",
		FooterHTML: "<p>Document généré le " + DatePlaceholder + "</p>",
		IsDefault:  true,
	}
}

// Update replaces the editable parts of the template.
func (t *PrintTemplate) Update(headerHTML, footerHTML, css, logoURL string) {
	t.HeaderHTML = headerHTML
	t.FooterHTML = footerHTML
	t.CSS = css
	t.LogoURL = strings.TrimSpace(logoURL)
}

// Frame returns header and footer with their placeholders substituted.
func (t PrintTemplate) Frame(title string, date time.Time) (header, footer string) {
	replacer := strings.NewReplacer(
		TablePlaceholder, title,
		DatePlaceholder, date.Format(PrintDateLayout),
	)
	return replacer.Replace(t.HeaderHTML), replacer.Replace(t.FooterHTML)
}
