package internal

import "scout-server/internal/printing/domain"

type GenericTextRequest struct {
	Content string `json:"content"`
}

type GenericTextResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func ToGenericTextResponse(text domain.GenericText) GenericTextResponse {
	return GenericTextResponse{
		ID:      text.ID.String(),
		Name:    text.Name,
		Content: text.Content,
	}
}
