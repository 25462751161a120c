package usecases

import (
	"context"

	"scout-server/internal/printing/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/printing/usecases/api_mock.go -package=usecases

type TemplateService interface {
	GetDefault(ctx context.Context) (domain.PrintTemplate, error)
	List(ctx context.Context) ([]domain.PrintTemplate, error)
	Update(ctx context.Context, id shareddomain.ID, input TemplateInput) (domain.PrintTemplate, error)
}

type GenericTextService interface {
	Get(ctx context.Context, name string) (domain.GenericText, error)
	Update(ctx context.Context, name, content string) (domain.GenericText, error)
	Print(ctx context.Context, name string) ([]byte, error)
}

type ExportService interface {
	Spreadsheet(ctx context.Context, userID, tableID shareddomain.ID, request ExportRequest) (domain.Export, error)
	PrintTable(ctx context.Context, userID, tableID shareddomain.ID) ([]byte, error)
	PrintRecord(ctx context.Context, userID, tableID, recordID shareddomain.ID) ([]byte, error)
}

type TemplateInput struct {
	HeaderHTML string
	FooterHTML string
	CSS        string
	LogoURL    string
}

// ExportRequest selects the exported columns and narrows the rows. Filters
// map a field id to the exact text its value must hold.
type ExportRequest struct {
	FieldIDs []shareddomain.ID
	Filters  map[shareddomain.ID]string
}
