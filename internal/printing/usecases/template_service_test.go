package usecases_test

import (
	"context"
	"errors"
	"time"

	"scout-server/internal/printing/domain"
	"scout-server/internal/printing/usecases"
	mockusecases "scout-server/test/unit/doubles/printing/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("TemplateService", func() {
	var (
		ctx            context.Context
		ctrl           *gomock.Controller
		mockRepository *mockusecases.MockTemplateRepository
		service        *usecases.SimpleTemplateService
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = mockusecases.NewMockTemplateRepository(ctrl)
		service = usecases.NewTemplateService(mockRepository, newCache(), usecases.CacheTTL(time.Minute))
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("GetDefault", func() {
		It("creates the placeholder template on first access only", func() {
			var created domain.PrintTemplate
			mockRepository.EXPECT().GetDefault(gomock.Any()).Return(domain.PrintTemplate{}, usecases.ErrTemplateNotFound)
			mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, template domain.PrintTemplate) error {
					created = template
					return nil
				},
			)

			first, err := service.GetDefault(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.IsDefault).To(BeTrue())
			Expect(first.HeaderHTML).To(Equal("<h1>{{table.display_name}}</h1>"))
			Expect(first.FooterHTML).To(Equal("<p>Document généré le {{date}}</p>"))
			Expect(first).To(Equal(created))

			second, err := service.GetDefault(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("returns the stored template", func() {
			stored := domain.PrintTemplate{ID: "t-1", Name: "Default", IsDefault: true}
			mockRepository.EXPECT().GetDefault(gomock.Any()).Return(stored, nil)

			template, err := service.GetDefault(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(template).To(Equal(stored))
		})

		It("does not create on database failures", func() {
			mockRepository.EXPECT().GetDefault(gomock.Any()).Return(domain.PrintTemplate{}, errors.New("connection lost"))

			_, err := service.GetDefault(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Update", func() {
		It("saves the new parts and drops the cached default", func() {
			stored := domain.PrintTemplate{ID: "t-1", Name: "Default", IsDefault: true}
			gomock.InOrder(
				mockRepository.EXPECT().GetDefault(gomock.Any()).Return(stored, nil),
				mockRepository.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil),
				mockRepository.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil),
				mockRepository.EXPECT().GetDefault(gomock.Any()).Return(stored, nil),
			)

			_, err := service.GetDefault(ctx)
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.Update(ctx, stored.ID, usecases.TemplateInput{
				HeaderHTML: "<h2>{{table.display_name}}</h2>",
				FooterHTML: "",
				CSS:        "h2{color:green}",
				LogoURL:    "  /logo.png ",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.HeaderHTML).To(Equal("<h2>{{table.display_name}}</h2>"))
			Expect(updated.LogoURL).To(Equal("/logo.png"))
			Expect(updated.IsDefault).To(BeTrue())

			_, err = service.GetDefault(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports unknown templates", func() {
			mockRepository.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(domain.PrintTemplate{}, usecases.ErrTemplateNotFound)

			_, err := service.Update(ctx, "missing", usecases.TemplateInput{})
			Expect(err).To(MatchError(usecases.ErrTemplateNotFound))
		})
	})

	Context("List", func() {
		It("ensures the default exists before listing", func() {
			stored := domain.PrintTemplate{ID: "t-1", Name: "Default", IsDefault: true}
			mockRepository.EXPECT().GetDefault(gomock.Any()).Return(domain.PrintTemplate{}, usecases.ErrTemplateNotFound)
			mockRepository.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			mockRepository.EXPECT().List(gomock.Any()).Return([]domain.PrintTemplate{stored}, nil)

			templates, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(templates).To(HaveLen(1))
		})
	})
})
