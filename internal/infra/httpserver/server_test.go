package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

type stubController struct{}

func (stubController) AddRoutes(router *http.ServeMux) {
	router.HandleFunc("GET /v1/stub", func(w http.ResponseWriter, r *http.Request) {
		ReplyJSONResponse(w, http.StatusOK, map[string]string{"user": GetUserID(r)})
	})
}

var _ = ginkgo.Describe("HTTPServer", func() {
	var (
		tp       *trace.TracerProvider
		recorder *tracetest.SpanRecorder
	)

	ginkgo.BeforeEach(func() {
		recorder = tracetest.NewSpanRecorder()
		tp = trace.NewTracerProvider(trace.WithSpanProcessor(recorder))
		otel.SetTracerProvider(tp)
	})

	ginkgo.AfterEach(func() {
		tp.Shutdown(context.Background())
	})

	ginkgo.Context("TracingMiddleware", func() {
		ginkgo.It("should add a span to the request context", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				span := GetSpanFromContext(r)
				gomega.Expect(span.SpanContext().HasSpanID()).To(gomega.BeTrue())
				w.WriteHeader(http.StatusTeapot)
			})

			wrappedHandler := createTracingMiddleware()(testHandler)
			rec := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusTeapot))
			gomega.Expect(recorder.Ended()).To(gomega.HaveLen(1))
		})
	})

	ginkgo.Context("GetSpanFromContext", func() {
		ginkgo.It("should return a no-op span when the request is not traced", func() {
			span := GetSpanFromContext(httptest.NewRequest("GET", "/test", nil))
			gomega.Expect(span).NotTo(gomega.BeNil())
			gomega.Expect(span.SpanContext().IsValid()).To(gomega.BeFalse())
		})
	})

	ginkgo.Context("UserHeaderMiddleware", func() {
		ginkgo.It("should pass requests through with and without identity", func() {
			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			wrappedHandler := createTracingMiddleware()(createUserHeaderMiddleware()(testHandler))

			withUser := httptest.NewRequest("GET", "/test", nil)
			withUser.Header.Set(UserIDHeader, "user-123")
			rec := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(rec, withUser)
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))

			rec = httptest.NewRecorder()
			wrappedHandler.ServeHTTP(rec, httptest.NewRequest("GET", "/test", nil))
			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
		})
	})

	ginkgo.Context("NewServer", func() {
		ginkgo.It("should route to registered controllers", func() {
			server := NewServer(Options{}, stubController{})
			req := httptest.NewRequest("GET", "/v1/stub", nil)
			req.Header.Set(UserIDHeader, "user-123")
			rec := httptest.NewRecorder()

			server.server.Handler.ServeHTTP(rec, req)

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("user-123"))
		})

		ginkgo.It("should answer health checks", func() {
			server := NewServer(Options{})
			rec := httptest.NewRecorder()

			server.server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

			gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("success"))
		})

		ginkgo.When("the database cannot be reached", func() {
			ginkgo.It("should report not ready", func() {
				server := NewServer(Options{Readiness: stubPinger{err: errors.New("connection refused")}})
				rec := httptest.NewRecorder()

				server.server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusServiceUnavailable))
				gomega.Expect(rec.Body.String()).To(gomega.ContainSubstring("connection refused"))
			})
		})

		ginkgo.When("the database answers", func() {
			ginkgo.It("should report ready", func() {
				server := NewServer(Options{Readiness: stubPinger{}})
				rec := httptest.NewRecorder()

				server.server.Handler.ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))

				gomega.Expect(rec.Code).To(gomega.Equal(http.StatusOK))
			})
		})
	})
})
