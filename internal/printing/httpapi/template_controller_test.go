package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/httpapi"
	"scout-server/internal/printing/httpapi/internal"
	"scout-server/internal/printing/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	mockusecases "scout-server/test/unit/doubles/printing/usecases"
	mocksharedusecases "scout-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("TemplateController", func() {
	var (
		ctrl        *gomock.Controller
		mockService *mockusecases.MockTemplateService
		mockRoles   *mocksharedusecases.MockRoleResolver
		router      *http.ServeMux
		recorder    *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockTemplateService(ctrl)
		mockRoles = mocksharedusecases.NewMockRoleResolver(ctrl)
		router = http.NewServeMux()
		httpapi.NewTemplateController(mockService, mockRoles).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("serves the active template to readers", func() {
		mockRoles.EXPECT().GetRole(gomock.Any(), readerID).Return(shareddomain.RoleReadonly, nil)
		mockService.EXPECT().GetDefault(gomock.Any()).Return(domain.PrintTemplate{ID: "t-1", Name: "Default", IsDefault: true}, nil)

		router.ServeHTTP(recorder, newRequest("GET", "/v1/print-templates/active", readerID, nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response internal.TemplateResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.ID).To(Equal("t-1"))
		Expect(response.IsDefault).To(BeTrue())
	})

	It("lists templates", func() {
		mockRoles.EXPECT().GetRole(gomock.Any(), readerID).Return(shareddomain.RoleReadonly, nil)
		mockService.EXPECT().List(gomock.Any()).Return([]domain.PrintTemplate{{ID: "t-1"}, {ID: "t-2"}}, nil)

		router.ServeHTTP(recorder, newRequest("GET", "/v1/print-templates", readerID, nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response internal.TemplateListResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Templates).To(HaveLen(2))
	})

	It("lets admins edit a template", func() {
		mockRoles.EXPECT().GetRole(gomock.Any(), adminID).Return(shareddomain.RoleAdmin, nil)
		mockService.EXPECT().
			Update(gomock.Any(), shareddomain.ID("t-1"), usecases.TemplateInput{HeaderHTML: "<h2>Camp</h2>", CSS: "h2{}"}).
			Return(domain.PrintTemplate{ID: "t-1", HeaderHTML: "<h2>Camp</h2>", CSS: "h2{}"}, nil)

		router.ServeHTTP(recorder, newRequest("PUT", "/v1/print-templates/t-1", adminID, internal.TemplateRequest{
			HeaderHTML: "<h2>Camp</h2>",
			CSS:        "h2{}",
		}))

		Expect(recorder.Code).To(Equal(http.StatusOK))
	})

	It("forbids readers from editing", func() {
		mockRoles.EXPECT().GetRole(gomock.Any(), readerID).Return(shareddomain.RoleReadonly, nil)

		router.ServeHTTP(recorder, newRequest("PUT", "/v1/print-templates/t-1", readerID, internal.TemplateRequest{}))

		Expect(recorder.Code).To(Equal(http.StatusForbidden))
	})

	It("answers not found for unknown templates", func() {
		mockRoles.EXPECT().GetRole(gomock.Any(), adminID).Return(shareddomain.RoleAdmin, nil)
		mockService.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.PrintTemplate{}, usecases.ErrTemplateNotFound)

		router.ServeHTTP(recorder, newRequest("PUT", "/v1/print-templates/missing", adminID, internal.TemplateRequest{}))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})
})
