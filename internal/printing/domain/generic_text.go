package domain

import (
	"fmt"
	"strings"

	"scout-server/internal/infra/utils"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

const (
	CampAuthorizationText = "autorisation_camp"
	DefaultTextContent    = "Texte par défaut"

	campAuthorizationContent = "<h2>Autorisation de Camp</h2>" +
		"<p>Je soussigné(e), [nom du parent], autorise [nom de l'enfant] à participer au camp scout " +
		"qui se déroulera du [date début] au [date fin] à [lieu].</p>" +
		"<p>Fait à _________________, le _________________</p>" +
		"<p>Signature: _________________</p>"
)

// GenericText is a named HTML snippet admins edit and print as is.
type GenericText struct {
	ID      shareddomain.ID
	Name    string
	Content string
}

// NewGenericText builds a text holding the default content for its name.
func NewGenericText(name string) (GenericText, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GenericText{}, fmt.Errorf("%w: text name is required", shareddomain.ErrInvalidInput)
	}

	content := DefaultTextContent
	if name == CampAuthorizationText {
		content = campAuthorizationContent
	}

	return GenericText{
		ID:      shareddomain.ID(utils.GenerateUUID()),
		Name:    name,
		Content: content,
	}, nil
}
