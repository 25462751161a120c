package utils_test

import (
	"scout-server/internal/infra/utils"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Timezone", func() {
	ginkgo.Context("LoadLocation", func() {
		ginkgo.It("should resolve IANA names", func() {
			location, err := utils.LoadLocation("Europe/Paris")
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(location.String()).To(gomega.Equal("Europe/Paris"))
		})

		ginkgo.It("should reject the empty name", func() {
			_, err := utils.LoadLocation("")
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("cannot be empty")))
		})

		ginkgo.It("should reject unknown zones", func() {
			err := utils.ValidateTimezone("Mars/Olympus_Mons")
			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})
})
