package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"scout-server/internal/records/httpapi"
	"scout-server/internal/records/httpapi/internal"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	mockusecases "scout-server/test/unit/doubles/records/usecases"
	mocksharedusecases "scout-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DashboardController", func() {
	It("renders the caller's dashboard", func() {
		ctrl := gomock.NewController(GinkgoT())
		service := mockusecases.NewMockDashboardService(ctrl)
		roles := mocksharedusecases.NewMockRoleResolver(ctrl)
		router := http.NewServeMux()
		httpapi.NewDashboardController(service, roles).AddRoutes(router)
		recorder := httptest.NewRecorder()

		roles.EXPECT().GetRole(gomock.Any(), readerID).Return(shareddomain.RoleReadonly, nil)
		service.EXPECT().Summary(gomock.Any(), readerID).Return(usecases.Dashboard{
			Tables:       []usecases.TableCount{{TableID: "t1", DisplayName: "Accident", Count: 2}},
			TotalRecords: 2,
			UsersByRole:  map[shareddomain.Role]int{shareddomain.RoleReadonly: 3},
		}, nil)

		router.ServeHTTP(recorder, newRequest("GET", "/v1/dashboard", readerID, nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response internal.DashboardResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.TotalRecords).To(Equal(2))
		Expect(response.UsersByRole).To(HaveKeyWithValue("readonly", 3))
		Expect(response.RecentRecords).To(BeEmpty())
	})
})
