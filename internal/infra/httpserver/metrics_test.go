package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var _ = ginkgo.Describe("Metrics", func() {
	ginkgo.Context("MetricsMiddleware", func() {
		var reader *metric.ManualReader

		ginkgo.BeforeEach(func() {
			reader = metric.NewManualReader()
			otel.SetMeterProvider(metric.NewMeterProvider(metric.WithReader(reader)))
			ResetMetricsForTesting()
		})

		ginkgo.It("counts requests per normalized endpoint", func() {
			handler := MetricsMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/v1/tables/123e4567-e89b-12d3-a456-426614174000", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusNotFound))
			gomega.Expect(IsMetricsInitialized()).To(gomega.BeTrue())

			var collected metricdata.ResourceMetrics
			gomega.Expect(reader.Collect(context.Background(), &collected)).To(gomega.Succeed())

			var total metricdata.Sum[int64]
			for _, scope := range collected.ScopeMetrics {
				for _, m := range scope.Metrics {
					if m.Name == "scout_server.http.requests.total" {
						total = m.Data.(metricdata.Sum[int64])
					}
				}
			}
			gomega.Expect(total.DataPoints).To(gomega.HaveLen(1))

			point := total.DataPoints[0]
			gomega.Expect(point.Value).To(gomega.Equal(int64(1)))
			endpoint, _ := point.Attributes.Value("http.endpoint")
			gomega.Expect(endpoint.AsString()).To(gomega.Equal("/v1/tables/_id"))
			status, _ := point.Attributes.Value("http.status_code")
			gomega.Expect(status.AsInt64()).To(gomega.Equal(int64(http.StatusNotFound)))
		})
	})

	ginkgo.DescribeTable("normalizeEndpoint",
		func(path, expected string) {
			gomega.Expect(normalizeEndpoint(path)).To(gomega.Equal(expected))
		},
		ginkgo.Entry("root", "/", "root"),
		ginkgo.Entry("empty", "", "root"),
		ginkgo.Entry("static route", "/v1/dashboard", "/v1/dashboard"),
		ginkgo.Entry("table id", "/v1/tables/123e4567-e89b-12d3-a456-426614174000", "/v1/tables/_id"),
		ginkgo.Entry("record print",
			"/v1/tables/123e4567-e89b-12d3-a456-426614174000/records/987fcdeb-51a2-43d7-8f9e-123456789abc/print",
			"/v1/tables/_id/records/_id/print"),
		ginkgo.Entry("generic text", "/v1/generic-texts/autorisation_camp/print", "/v1/generic-texts/_name/print"),
	)

	ginkgo.It("remembers the status written by the handler", func() {
		recorder := httptest.NewRecorder()
		wrapped := &responseWriter{ResponseWriter: recorder, statusCode: http.StatusOK}

		wrapped.WriteHeader(http.StatusConflict)

		gomega.Expect(wrapped.statusCode).To(gomega.Equal(http.StatusConflict))
		gomega.Expect(recorder.Code).To(gomega.Equal(http.StatusConflict))
	})
})
