package domain_test

import (
	"errors"
	"time"

	"scout-server/internal/printing/domain"
	shareddomain "scout-server/internal/shared_kernel/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PrintTemplate", func() {
	It("substitutes the table name and the french date", func() {
		template := domain.DefaultPrintTemplate()

		header, footer := template.Frame("Accident", time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC))

		Expect(header).To(Equal("<h1>Accident</h1>"))
		Expect(footer).To(Equal("<p>Document généré le 05/03/2024</p>"))
	})

	It("updates every editable part", func() {
		template := domain.DefaultPrintTemplate()

		template.Update("<h1>Scouts</h1>", "", "body{margin:0}", " https://example.com/logo.png ")

		Expect(template.HeaderHTML).To(Equal("<h1>Scouts</h1>"))
		Expect(template.FooterHTML).To(BeEmpty())
		Expect(template.LogoURL).To(Equal("https://example.com/logo.png"))
		Expect(template.IsDefault).To(BeTrue())
	})
})

var _ = Describe("GenericText", func() {
	It("starts the camp authorization with its letter", func() {
		text, err := domain.NewGenericText(domain.CampAuthorizationText)
		Expect(err).NotTo(HaveOccurred())
		Expect(text.Content).To(ContainSubstring("Autorisation de Camp"))
	})

	It("starts other texts with a placeholder", func() {
		text, err := domain.NewGenericText("reglement")
		Expect(err).NotTo(HaveOccurred())
		Expect(text.Content).To(Equal(domain.DefaultTextContent))
	})

	It("requires a name", func() {
		_, err := domain.NewGenericText(" ")
		Expect(errors.Is(err, shareddomain.ErrInvalidInput)).To(BeTrue())
	})
})
