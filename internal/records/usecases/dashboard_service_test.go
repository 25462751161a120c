package usecases_test

import (
	"context"
	"time"

	"scout-server/internal/records/domain"
	"scout-server/internal/records/usecases"
	shareddomain "scout-server/internal/shared_kernel/domain"
	mockusecases "scout-server/test/unit/doubles/records/usecases"
	mocksharedusecases "scout-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("DashboardService", func() {
	var (
		ctx         context.Context
		ctrl        *gomock.Controller
		schema      *mockusecases.MockSchemaRepository
		records     *mockusecases.MockRecordRepository
		permissions *mockusecases.MockPermissionService
		users       *mocksharedusecases.MockUserService
		service     *usecases.SimpleDashboardService
		paris       *time.Location

		camp, accident domain.Table
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		schema = mockusecases.NewMockSchemaRepository(ctrl)
		records = mockusecases.NewMockRecordRepository(ctrl)
		permissions = mockusecases.NewMockPermissionService(ctrl)
		users = mocksharedusecases.NewMockUserService(ctrl)

		var err error
		paris, err = time.LoadLocation("Europe/Paris")
		Expect(err).NotTo(HaveOccurred())

		// Wednesday 2024-01-17, 10:00 in Paris
		now := time.Date(2024, 1, 17, 10, 0, 0, 0, paris)
		service = usecases.NewDashboardService(schema, records, permissions, users, paris).
			WithClock(func() time.Time { return now })

		camp = domain.Table{ID: "camp", DisplayName: "Autorisation de Camp"}
		accident = domain.Table{ID: "accident", DisplayName: "Accident"}
	})

	expectCounts := func(created []time.Time) {
		schema.EXPECT().ListTables(ctx).Return([]domain.Table{accident, camp}, nil)
		records.EXPECT().CountByTable(ctx).Return(map[shareddomain.ID]int{"camp": 3, "accident": 1}, nil)
		records.EXPECT().CreationTimes(ctx).Return(created, nil)
		users.EXPECT().CountByRole(ctx).Return(map[shareddomain.Role]int{shareddomain.RoleAdmin: 1}, nil)
	}

	It("aggregates counts and activity in the configured timezone", func() {
		expectCounts([]time.Time{
			// 23:30 UTC on the 16th is already the 17th in Paris
			time.Date(2024, 1, 16, 23, 30, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 14, 8, 0, 0, 0, time.UTC),
			time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC),
		})
		permissions.EXPECT().VisibleRecordIDs(ctx, shareddomain.ID("reader"), gomock.Any()).
			Return(domain.NoRecords(), nil).Times(2)

		dashboard, err := service.Summary(ctx, "reader")
		Expect(err).NotTo(HaveOccurred())

		Expect(dashboard.TotalRecords).To(Equal(4))
		Expect(dashboard.Tables).To(Equal([]usecases.TableCount{
			{TableID: "accident", DisplayName: "Accident", Count: 1},
			{TableID: "camp", DisplayName: "Autorisation de Camp", Count: 3},
		}))
		Expect(dashboard.RecordsToday).To(Equal(1))
		Expect(dashboard.RecordsWeek).To(Equal(2))

		Expect(dashboard.Trend).To(HaveLen(14))
		Expect(dashboard.Trend[0]).To(Equal(usecases.DayCount{Date: "2024-01-04", Count: 0}))
		Expect(dashboard.Trend[10]).To(Equal(usecases.DayCount{Date: "2024-01-14", Count: 1}))
		Expect(dashboard.Trend[13]).To(Equal(usecases.DayCount{Date: "2024-01-17", Count: 1}))

		Expect(dashboard.ActivityByDay).To(HaveLen(7))
		Expect(dashboard.ActivityByDay[0]).To(Equal(usecases.WeekdayCount{Day: "Lundi", Count: 1}))
		Expect(dashboard.ActivityByDay[2]).To(Equal(usecases.WeekdayCount{Day: "Mercredi", Count: 1}))
		Expect(dashboard.ActivityByDay[4]).To(Equal(usecases.WeekdayCount{Day: "Vendredi", Count: 1}))
		Expect(dashboard.ActivityByDay[6]).To(Equal(usecases.WeekdayCount{Day: "Dimanche", Count: 1}))

		Expect(dashboard.UsersByRole).To(HaveKeyWithValue(shareddomain.RoleAdmin, 1))
		Expect(dashboard.RecentRecords).To(BeEmpty())
	})

	It("lists the recent records the caller can see across tables", func() {
		expectCounts(nil)

		visible := domain.NoRecords()
		visible.Add("r1")
		permissions.EXPECT().VisibleRecordIDs(ctx, shareddomain.ID("reader"), shareddomain.ID("accident")).
			Return(domain.NoRecords(), nil)
		permissions.EXPECT().VisibleRecordIDs(ctx, shareddomain.ID("reader"), shareddomain.ID("camp")).
			Return(visible, nil)

		createdAt := time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)
		records.EXPECT().
			ListRecords(ctx, []usecases.RecordScope{{TableID: "camp", Visibility: visible}}, usecases.Pagination{Limit: 5}).
			Return([]domain.Record{{ID: "r1", TableID: "camp", CreatedAt: createdAt}}, 1, nil)

		dashboard, err := service.Summary(ctx, "reader")
		Expect(err).NotTo(HaveOccurred())
		Expect(dashboard.RecentRecords).To(Equal([]usecases.RecentRecord{{
			ID:               "r1",
			TableID:          "camp",
			TableDisplayName: "Autorisation de Camp",
			CreatedAt:        createdAt,
		}}))
	})
})
