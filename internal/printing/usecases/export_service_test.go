package usecases_test

import (
	"bytes"
	"context"
	"time"

	"scout-server/internal/infra/sql"
	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/usecases"
	recorddomain "scout-server/internal/records/domain"
	recordpersistence "scout-server/internal/records/persistence"
	recordusecases "scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	sharedpersistence "scout-server/internal/shared_kernel/persistence"
	sharedusecases "scout-server/internal/shared_kernel/usecases"
	mockusecases "scout-server/test/unit/doubles/printing/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ExportService", func() {
	var (
		ctx           context.Context
		ctrl          *gomock.Controller
		mockTemplates *mockusecases.MockTemplateService

		users       *sharedusecases.SimpleUserService
		schema      *recordusecases.SimpleSchemaService
		permissions *recordusecases.SimplePermissionService
		records     *recordusecases.SimpleRecordService
		service     *usecases.SimpleExportService

		admin  shareddomain.User
		reader shareddomain.User
		table  recorddomain.Table
		fields map[string]recorddomain.Field
	)

	newUser := func(username string, role shareddomain.Role) shareddomain.User {
		user, err := users.CreateUser(ctx, sharedusecases.UserInput{
			Username: username,
			Email:    username + "@scouts.fr",
			Password: "secret",
			Role:     role,
		})
		Expect(err).NotTo(HaveOccurred())
		return user
	}

	newRecord := func(values recorddomain.RawValues) recorddomain.RecordView {
		view, err := records.CreateRecord(ctx, table.ID, admin.ID, values)
		Expect(err).NotTo(HaveOccurred())
		return view
	}

	readSheet := func(export domain.Export) [][]string {
		file, err := excelize.OpenReader(bytes.NewReader(export.Body))
		Expect(err).NotTo(HaveOccurred())
		defer file.Close()

		Expect(file.GetSheetList()).To(Equal([]string{"Data"}))
		rows, err := file.GetRows("Data")
		Expect(err).NotTo(HaveOccurred())
		return rows
	}

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockTemplates = mockusecases.NewMockTemplateService(ctrl)

		orm, err := sql.NewMemoryORM()
		Expect(err).NotTo(HaveOccurred())
		userRepository, err := sharedpersistence.NewUserRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		schemaRepository, err := recordpersistence.NewSchemaRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		values, err := recordpersistence.NewValueStore(orm)
		Expect(err).NotTo(HaveOccurred())
		recordRepository, err := recordpersistence.NewRecordRepository(orm)
		Expect(err).NotTo(HaveOccurred())
		permissionRepository, err := recordpersistence.NewPermissionRepository(orm)
		Expect(err).NotTo(HaveOccurred())

		users = sharedusecases.NewUserService(userRepository)
		schema = recordusecases.NewSchemaService(schemaRepository)
		permissions = recordusecases.NewPermissionService(permissionRepository, schemaRepository, values, users)
		records = recordusecases.NewRecordService(schemaRepository, recordRepository, values, permissions, users)
		service = usecases.NewExportService(schema, records, values, mockTemplates, time.UTC).
			WithClock(func() time.Time { return time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC) })

		admin = newUser("akela", shareddomain.RoleAdmin)
		reader = newUser("mowgli", shareddomain.RoleReadonly)

		table, err = schema.CreateTable(ctx, recordusecases.TableInput{Name: "cotisation", DisplayName: "Cotisation"})
		Expect(err).NotTo(HaveOccurred())

		fields = map[string]recorddomain.Field{}
		for _, input := range []recordusecases.FieldInput{
			{Name: "scout", DisplayName: "Scout", Type: recorddomain.FieldTypeText},
			{Name: "montant", DisplayName: "Montant", Type: recorddomain.FieldTypeNumber},
			{Name: "unite", DisplayName: "Unité", Type: recorddomain.FieldTypeDropdown, Options: "Louveteaux\nScouts"},
		} {
			field, err := schema.CreateField(ctx, table.ID, input)
			Expect(err).NotTo(HaveOccurred())
			fields[field.Name] = field
		}

		newRecord(recorddomain.RawValues{"scout": ptr("Jean"), "montant": ptr("25.5"), "unite": ptr("Scouts")})
		newRecord(recorddomain.RawValues{"scout": ptr("Marie"), "montant": ptr("30"), "unite": ptr("Louveteaux")})
		newRecord(recorddomain.RawValues{"scout": ptr("Paul"), "unite": ptr("Scouts")})
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Spreadsheet", func() {
		It("exports every field and record for editors", func() {
			export, err := service.Spreadsheet(ctx, admin.ID, table.ID, usecases.ExportRequest{})
			Expect(err).NotTo(HaveOccurred())
			Expect(export.Filename).To(Equal("cotisation_export.xlsx"))
			Expect(export.ContentType).To(Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"))

			rows := readSheet(export)
			Expect(rows).To(HaveLen(4))
			Expect(rows[0]).To(Equal([]string{"Scout", "Montant", "Unité"}))
			Expect(rows[1:]).To(ConsistOf(
				[]string{"Jean", "25.5", "Scouts"},
				[]string{"Marie", "30", "Louveteaux"},
				[]string{"Paul", "", "Scouts"},
			))
		})

		It("keeps the selected columns in field order", func() {
			export, err := service.Spreadsheet(ctx, admin.ID, table.ID, usecases.ExportRequest{
				FieldIDs: []shareddomain.ID{fields["unite"].ID, fields["scout"].ID, "foreign"},
			})
			Expect(err).NotTo(HaveOccurred())

			rows := readSheet(export)
			Expect(rows[0]).To(Equal([]string{"Scout", "Unité"}))
		})

		It("narrows the rows with exact text filters", func() {
			export, err := service.Spreadsheet(ctx, admin.ID, table.ID, usecases.ExportRequest{
				FieldIDs: []shareddomain.ID{fields["scout"].ID},
				Filters: map[shareddomain.ID]string{
					fields["unite"].ID: "Scouts",
					fields["scout"].ID: "",
				},
			})
			Expect(err).NotTo(HaveOccurred())

			rows := readSheet(export)
			Expect(rows[1:]).To(ConsistOf([]string{"Jean"}, []string{"Paul"}))
		})

		It("never matches number filters", func() {
			export, err := service.Spreadsheet(ctx, admin.ID, table.ID, usecases.ExportRequest{
				Filters: map[shareddomain.ID]string{fields["montant"].ID: "30"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(readSheet(export)).To(HaveLen(1))
		})

		It("rejects filters on fields of other tables", func() {
			_, err := service.Spreadsheet(ctx, admin.ID, table.ID, usecases.ExportRequest{
				Filters: map[shareddomain.ID]string{"foreign": "x"},
			})
			Expect(err).To(MatchError(recordusecases.ErrFieldNotFound))
		})

		It("exports only the rows a reader may see", func() {
			_, err := permissions.AddRule(ctx, table.ID, recordusecases.RuleInput{
				UserID:     reader.ID,
				FieldID:    fields["scout"].ID,
				MatchValue: "Marie",
			})
			Expect(err).NotTo(HaveOccurred())

			export, err := service.Spreadsheet(ctx, reader.ID, table.ID, usecases.ExportRequest{})
			Expect(err).NotTo(HaveOccurred())

			rows := readSheet(export)
			Expect(rows).To(HaveLen(2))
			Expect(rows[1][0]).To(Equal("Marie"))
		})

		It("reports unknown tables", func() {
			_, err := service.Spreadsheet(ctx, admin.ID, "missing", usecases.ExportRequest{})
			Expect(err).To(MatchError(recordusecases.ErrTableNotFound))
		})
	})

	Context("PrintTable", func() {
		It("renders the visible records inside the default template", func() {
			mockTemplates.EXPECT().GetDefault(gomock.Any()).Return(domain.DefaultPrintTemplate(), nil)

			body, err := service.PrintTable(ctx, admin.ID, table.ID)
			Expect(err).NotTo(HaveOccurred())

			html := string(body)
			Expect(html).To(ContainSubstring("<h1>Cotisation</h1>"))
			Expect(html).To(ContainSubstring("Document généré le 05/03/2024"))
			Expect(html).To(ContainSubstring("<th>Montant</th>"))
			Expect(html).To(ContainSubstring("<td>25.5</td>"))
			Expect(html).To(ContainSubstring("<td>Paul</td>"))
		})

		It("prints nothing the reader cannot see", func() {
			mockTemplates.EXPECT().GetDefault(gomock.Any()).Return(domain.DefaultPrintTemplate(), nil)

			body, err := service.PrintTable(ctx, reader.ID, table.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).NotTo(ContainSubstring("<td>Jean</td>"))
		})
	})

	Context("PrintRecord", func() {
		It("lists the fields of the record", func() {
			view := newRecord(recorddomain.RawValues{"scout": ptr("Akela"), "montant": ptr("12")})
			mockTemplates.EXPECT().GetDefault(gomock.Any()).Return(domain.DefaultPrintTemplate(), nil)

			body, err := service.PrintRecord(ctx, admin.ID, table.ID, view.ID)
			Expect(err).NotTo(HaveOccurred())

			html := string(body)
			Expect(html).To(ContainSubstring("<dt>Scout</dt><dd>Akela</dd>"))
			Expect(html).To(ContainSubstring("<dt>Montant</dt><dd>12</dd>"))
			Expect(html).To(ContainSubstring("<dt>Unité</dt><dd></dd>"))
		})

		It("refuses records hidden from the caller", func() {
			view := newRecord(recorddomain.RawValues{"scout": ptr("Akela")})

			_, err := service.PrintRecord(ctx, reader.ID, table.ID, view.ID)
			Expect(err).To(MatchError(recordusecases.ErrRecordNotVisible))
		})
	})
})
