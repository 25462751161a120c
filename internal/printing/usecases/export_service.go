package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/render"
	recorddomain "scout-server/internal/records/domain"
	recordusecases "scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
)

const _exportSheet = "Data"

func NewExportService(
	schema recordusecases.SchemaService,
	records recordusecases.RecordService,
	values recordusecases.ValueStore,
	templates TemplateService,
	location *time.Location,
) *SimpleExportService {
	if location == nil {
		location = time.UTC
	}

	return &SimpleExportService{
		schema:    schema,
		records:   records,
		values:    values,
		templates: templates,
		location:  location,
		now:       time.Now,
	}
}

var _ ExportService = &SimpleExportService{}

type SimpleExportService struct {
	schema    recordusecases.SchemaService
	records   recordusecases.RecordService
	values    recordusecases.ValueStore
	templates TemplateService
	location  *time.Location
	now       func() time.Time
}

func (s *SimpleExportService) WithClock(now func() time.Time) *SimpleExportService {
	s.now = now
	return s
}

// Spreadsheet exports the caller's visible records of the table. Columns
// follow field order; without a selection every field is exported. Each
// filter keeps only records whose text value equals the filter exactly.
func (s *SimpleExportService) Spreadsheet(ctx context.Context, userID, tableID shareddomain.ID, request ExportRequest) (domain.Export, error) {
	table, err := s.schema.GetTable(ctx, tableID)
	if err != nil {
		return domain.Export{}, err
	}

	fields, err := s.schema.ListFields(ctx, tableID)
	if err != nil {
		return domain.Export{}, err
	}

	views, _, err := s.records.ListRecords(ctx, userID, tableID, recordusecases.Pagination{})
	if err != nil {
		return domain.Export{}, err
	}

	views, err = s.applyFilters(ctx, tableID, fields, views, request.Filters)
	if err != nil {
		return domain.Export{}, err
	}

	selected := selectFields(fields, request.FieldIDs)
	sheet := domain.Sheet{
		Name:    _exportSheet,
		Columns: columnNames(selected),
		Rows:    make([][]any, 0, len(views)),
	}
	for _, view := range views {
		row := make([]any, len(selected))
		for i, field := range selected {
			row[i] = view.Values[field.Name]
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	body, err := render.Spreadsheet(sheet)
	if err != nil {
		slog.Error("rendering spreadsheet", slog.String("error", err.Error()))
		return domain.Export{}, fmt.Errorf("exporting table %s: %w", table.Name, err)
	}

	slog.Info("table exported",
		slog.String("table_id", tableID.String()),
		slog.Int("rows", len(sheet.Rows)),
	)

	return domain.Export{
		Filename:    table.Name + "_export.xlsx",
		ContentType: render.SpreadsheetContentType,
		Body:        body,
	}, nil
}

// PrintTable renders every visible record of the table as one grid.
func (s *SimpleExportService) PrintTable(ctx context.Context, userID, tableID shareddomain.ID) ([]byte, error) {
	table, err := s.schema.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	fields, err := s.schema.ListFields(ctx, tableID)
	if err != nil {
		return nil, err
	}

	views, _, err := s.records.ListRecords(ctx, userID, tableID, recordusecases.Pagination{})
	if err != nil {
		return nil, err
	}

	document, err := s.document(ctx, table.DisplayName)
	if err != nil {
		return nil, err
	}

	document.Columns = columnNames(fields)
	document.Rows = make([][]string, 0, len(views))
	for _, view := range views {
		row := make([]string, len(fields))
		for i, field := range fields {
			row[i] = field.Type.Format(view.Values[field.Name])
		}
		document.Rows = append(document.Rows, row)
	}

	return render.HTML(document)
}

// PrintRecord renders one record as label and value pairs.
func (s *SimpleExportService) PrintRecord(ctx context.Context, userID, tableID, recordID shareddomain.ID) ([]byte, error) {
	table, err := s.schema.GetTable(ctx, tableID)
	if err != nil {
		return nil, err
	}

	fields, err := s.schema.ListFields(ctx, tableID)
	if err != nil {
		return nil, err
	}

	view, err := s.records.GetRecord(ctx, userID, tableID, recordID)
	if err != nil {
		return nil, err
	}

	document, err := s.document(ctx, table.DisplayName)
	if err != nil {
		return nil, err
	}

	document.Entries = make([]domain.Entry, 0, len(fields))
	for _, field := range fields {
		document.Entries = append(document.Entries, domain.Entry{
			Label: field.DisplayName,
			Value: field.Type.Format(view.Values[field.Name]),
		})
	}

	return render.HTML(document)
}

func (s *SimpleExportService) document(ctx context.Context, title string) (domain.Document, error) {
	template, err := s.templates.GetDefault(ctx)
	if err != nil {
		return domain.Document{}, err
	}

	return domain.Document{
		Title:    title,
		Template: template,
		Date:     s.now().In(s.location),
	}, nil
}

func (s *SimpleExportService) applyFilters(
	ctx context.Context,
	tableID shareddomain.ID,
	fields []recorddomain.Field,
	views []recorddomain.RecordView,
	filters map[shareddomain.ID]string,
) ([]recorddomain.RecordView, error) {
	known := make(map[shareddomain.ID]bool, len(fields))
	for _, field := range fields {
		known[field.ID] = true
	}

	for fieldID, text := range filters {
		if text == "" {
			continue
		}
		if !known[fieldID] {
			return nil, recordusecases.ErrFieldNotFound
		}

		ids, err := s.values.RecordIDsWithText(ctx, tableID, fieldID, text)
		if err != nil {
			return nil, fmt.Errorf("filtering export: %w", err)
		}

		matching := make(map[shareddomain.ID]bool, len(ids))
		for _, id := range ids {
			matching[id] = true
		}

		kept := views[:0:0]
		for _, view := range views {
			if matching[view.ID] {
				kept = append(kept, view)
			}
		}
		views = kept
	}

	return views, nil
}

// selectFields keeps the requested fields in table order, ignoring ids that
// are not fields of the table. An empty selection keeps every field.
func selectFields(fields []recorddomain.Field, ids []shareddomain.ID) []recorddomain.Field {
	if len(ids) == 0 {
		return fields
	}

	wanted := make(map[shareddomain.ID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	selected := make([]recorddomain.Field, 0, len(ids))
	for _, field := range fields {
		if wanted[field.ID] {
			selected = append(selected, field)
		}
	}
	return selected
}

func columnNames(fields []recorddomain.Field) []string {
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.DisplayName
	}
	return names
}
