package httpapi_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"scout-server/internal/infra/httpserver"
	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/httpapi"
	"scout-server/internal/printing/httpapi/internal"
	"scout-server/internal/printing/usecases"
	recordusecases "scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	mockusecases "scout-server/test/unit/doubles/printing/usecases"
	mocksharedusecases "scout-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ExportController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockExportService
		mockRoles   *mocksharedusecases.MockRoleResolver
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockExportService(ctrl)
		mockRoles = mocksharedusecases.NewMockRoleResolver(ctrl)
		router = http.NewServeMux()
		httpapi.NewExportController(mockService, mockRoles).AddRoutes(router)
		recorder = httptest.NewRecorder()

		mockRoles.EXPECT().GetRole(gomock.Any(), readerID).Return(shareddomain.RoleReadonly, nil).AnyTimes()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("export", func() {
		It("sends the workbook as an attachment", func() {
			mockService.EXPECT().
				Spreadsheet(gomock.Any(), readerID, shareddomain.ID("t-1"), usecases.ExportRequest{
					FieldIDs: []shareddomain.ID{"f-1"},
					Filters:  map[shareddomain.ID]string{"f-2": "Scouts"},
				}).
				Return(domain.Export{
					Filename:    "cotisation_export.xlsx",
					ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
					Body:        []byte("xlsx"),
				}, nil)

			router.ServeHTTP(recorder, newRequest("POST", "/v1/tables/t-1/export", readerID, internal.ExportRequest{
				FieldIDs: []string{"f-1"},
				Filters:  map[string]string{"f-2": "Scouts"},
			}))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Disposition")).To(Equal(`attachment; filename="cotisation_export.xlsx"`))
			Expect(recorder.Body.String()).To(Equal("xlsx"))
		})

		It("rejects malformed bodies", func() {
			request := httptest.NewRequest("POST", "/v1/tables/t-1/export", bytes.NewBufferString("["))
			request.Header.Set(httpserver.UserIDHeader, readerID.String())

			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("answers not found for unknown tables", func() {
			mockService.EXPECT().Spreadsheet(gomock.Any(), readerID, gomock.Any(), gomock.Any()).
				Return(domain.Export{}, recordusecases.ErrTableNotFound)

			router.ServeHTTP(recorder, newRequest("POST", "/v1/tables/missing/export", readerID, internal.ExportRequest{}))

			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Context("print", func() {
		It("renders the table", func() {
			mockService.EXPECT().PrintTable(gomock.Any(), readerID, shareddomain.ID("t-1")).Return([]byte("<html></html>"), nil)

			router.ServeHTTP(recorder, newRequest("GET", "/v1/tables/t-1/print", readerID, nil))

			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).To(HavePrefix("text/html"))
		})

		It("refuses hidden records", func() {
			mockService.EXPECT().PrintRecord(gomock.Any(), readerID, shareddomain.ID("t-1"), shareddomain.ID("r-1")).
				Return(nil, recordusecases.ErrRecordNotVisible)

			router.ServeHTTP(recorder, newRequest("GET", "/v1/tables/t-1/records/r-1/print", readerID, nil))

			Expect(recorder.Code).To(Equal(http.StatusForbidden))
		})
	})
})
