package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"scout-server/internal/records/domain"
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

var _ = Describe("TableController", func() {
	var (
		ctrl     *gomock.Controller
		service  *mockusecases.MockSchemaService
		roles    *mocksharedusecases.MockRoleResolver
		router   *http.ServeMux
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = mockusecases.NewMockSchemaService(ctrl)
		roles = mocksharedusecases.NewMockRoleResolver(ctrl)
		router = http.NewServeMux()
		httpapi.NewTableController(service, roles).AddRoutes(router)
		recorder = httptest.NewRecorder()
	})

	callerIs := func(id shareddomain.ID, role shareddomain.Role) {
		roles.EXPECT().GetRole(gomock.Any(), id).Return(role, nil)
	}

	It("lets any known user list tables", func() {
		callerIs(readerID, shareddomain.RoleReadonly)
		service.EXPECT().ListTables(gomock.Any()).Return([]domain.Table{
			{ID: "t1", Name: "accident", DisplayName: "Accident"},
		}, nil)

		router.ServeHTTP(recorder, newRequest("GET", "/v1/tables", readerID, nil))

		Expect(recorder.Code).To(Equal(http.StatusOK))
		var response internal.TableListResponse
		Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
		Expect(response.Tables).To(HaveLen(1))
		Expect(response.Tables[0].DisplayName).To(Equal("Accident"))
	})

	It("keeps schema changes to admins", func() {
		callerIs(editorID, shareddomain.RoleEditor)

		router.ServeHTTP(recorder, newRequest("POST", "/v1/tables", editorID, internal.TableRequest{Name: "camp"}))

		Expect(recorder.Code).To(Equal(http.StatusForbidden))
	})

	It("creates a table", func() {
		callerIs(adminID, shareddomain.RoleAdmin)
		service.EXPECT().
			CreateTable(gomock.Any(), usecases.TableInput{Name: "camp", DisplayName: "Camp"}).
			Return(domain.Table{ID: "t1", Name: "camp", DisplayName: "Camp"}, nil)

		router.ServeHTTP(recorder, newRequest("POST", "/v1/tables", adminID, internal.TableRequest{Name: "camp", DisplayName: "Camp"}))

		Expect(recorder.Code).To(Equal(http.StatusCreated))
	})

	It("reports a duplicate table name as a conflict", func() {
		callerIs(adminID, shareddomain.RoleAdmin)
		service.EXPECT().CreateTable(gomock.Any(), gomock.Any()).Return(domain.Table{}, usecases.ErrTableDuplicated)

		router.ServeHTTP(recorder, newRequest("POST", "/v1/tables", adminID, internal.TableRequest{Name: "camp"}))

		Expect(recorder.Code).To(Equal(http.StatusConflict))
	})

	It("answers not found for unknown tables", func() {
		callerIs(readerID, shareddomain.RoleReadonly)
		service.EXPECT().GetTable(gomock.Any(), shareddomain.ID("ghost")).Return(domain.Table{}, usecases.ErrTableNotFound)

		router.ServeHTTP(recorder, newRequest("GET", "/v1/tables/ghost", readerID, nil))

		Expect(recorder.Code).To(Equal(http.StatusNotFound))
	})

	Context("fields", func() {
		BeforeEach(func() {
			callerIs(adminID, shareddomain.RoleAdmin)
		})

		It("creates a dropdown field from its text options", func() {
			service.EXPECT().
				CreateField(gomock.Any(), shareddomain.ID("t1"), usecases.FieldInput{
					Name:    "type",
					Type:    domain.FieldTypeDropdown,
					Options: "Réunion\nSortie",
				}).
				Return(domain.Field{
					ID:      "f1",
					TableID: "t1",
					Name:    "type",
					Type:    domain.FieldTypeDropdown,
					Options: []string{"Réunion", "Sortie"},
					Order:   1,
				}, nil)

			router.ServeHTTP(recorder, newRequest("POST", "/v1/tables/t1/fields", adminID, internal.FieldRequest{
				Name:      "type",
				FieldType: "dropdown",
				Options:   "Réunion\nSortie",
			}))

			Expect(recorder.Code).To(Equal(http.StatusCreated))
			var response internal.FieldResponse
			Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Options).To(Equal([]string{"Réunion", "Sortie"}))
		})

		It("leaves the type to the service when an update omits it", func() {
			service.EXPECT().
				UpdateField(gomock.Any(), shareddomain.ID("t1"), shareddomain.ID("f1"), usecases.FieldInput{
					Name:        "montant",
					DisplayName: "Montant payé",
				}).
				Return(domain.Field{ID: "f1", TableID: "t1", Name: "montant", Type: domain.FieldTypeNumber}, nil)

			router.ServeHTTP(recorder, newRequest("PUT", "/v1/tables/t1/fields/f1", adminID, internal.FieldRequest{
				Name:        "montant",
				DisplayName: "Montant payé",
			}))

			Expect(recorder.Code).To(Equal(http.StatusOK))
		})

		It("rejects unknown field types", func() {
			router.ServeHTTP(recorder, newRequest("POST", "/v1/tables/t1/fields", adminID, internal.FieldRequest{
				Name:      "photo",
				FieldType: "image",
			}))

			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("reorders fields", func() {
			service.EXPECT().
				ReorderFields(gomock.Any(), shareddomain.ID("t1"), map[shareddomain.ID]int{"f1": 2, "f2": 1}).
				Return(nil)

			router.ServeHTTP(recorder, newRequest("POST", "/v1/tables/t1/fields/order", adminID, internal.ReorderFieldsRequest{
				Fields: []internal.FieldOrder{{ID: "f1", Order: 2}, {ID: "f2", Order: 1}},
			}))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})

		It("deletes a field of the table", func() {
			service.EXPECT().DeleteField(gomock.Any(), shareddomain.ID("t1"), shareddomain.ID("f1")).Return(nil)

			router.ServeHTTP(recorder, newRequest("DELETE", "/v1/tables/t1/fields/f1", adminID, nil))

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})
})
