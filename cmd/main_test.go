package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	app "github.com/okian/campusdine/internal/app"
	"github.com/okian/campusdine/internal/config"
	"github.com/okian/campusdine/internal/domain/types"
	"github.com/okian/campusdine/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func fixedClock() time.Time {
	return time.Date(2024, time.March, 4, 12, 0, 0, 0, time.Local)
}

func TestMainConfiguration(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When configuration comes from the environment", func() {
			_ = os.Setenv("DINE_ADDR", ":8080")
			_ = os.Setenv("DINE_MAX_BODY_BYTES", "4096")
			defer func() {
				_ = os.Unsetenv("DINE_ADDR")
				_ = os.Unsetenv("DINE_MAX_BODY_BYTES")
			}()

			convey.Convey("Then the HTTP server should use it", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)

				srv := newHTTPServer(cfg, http.NewServeMux())
				convey.So(srv.Addr, convey.ShouldEqual, ":8080")
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, readHeaderTimeout)
				convey.So(srv.WriteTimeout, convey.ShouldEqual, writeTimeout)
			})
		})

		convey.Convey("When the configuration is invalid", func() {
			_ = os.Setenv("DINE_ADDR", "")
			defer func() { _ = os.Unsetenv("DINE_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestMainRoutes(t *testing.T) {
	convey.Convey("Given the full route table behind a test server", t, func() {
		ctx := context.Background()
		svc := app.New(app.WithClock(fixedClock))
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		ts := httptest.NewServer(newMux(ctx, config.New(ctx), svc))
		defer ts.Close()

		get := func(path string) (*http.Response, string) {
			resp, err := http.Get(ts.URL + path)
			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()
			body, err := io.ReadAll(resp.Body)
			convey.So(err, convey.ShouldBeNil)
			return resp, string(body)
		}

		convey.Convey("When posting a recommendation request", func() {
			resp, err := http.Post(ts.URL+"/recommend", "application/json",
				strings.NewReader(`{"food":"cake","time":"8:00 PM"}`))
			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			convey.Convey("Then the open dessert venues should come back", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(resp.Header.Get("X-Request-ID"), convey.ShouldNotBeEmpty)

				var rec types.Recommendation
				convey.So(json.NewDecoder(resp.Body).Decode(&rec), convey.ShouldBeNil)
				convey.So(rec.Success, convey.ShouldBeTrue)
				convey.So(rec.Count, convey.ShouldEqual, 3)
				convey.So(rec.Recommendations[0].Name, convey.ShouldEqual, "Earhart")
				convey.So(rec.Recommendations[1].Name, convey.ShouldEqual, "Ford")
				convey.So(rec.Recommendations[2].Name, convey.ShouldEqual, "Wiley")
			})
		})

		convey.Convey("When fetching the index page", func() {
			resp, body := get("/")

			convey.Convey("Then it should list the categories", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(body, convey.ShouldContainSubstring, `<option value="Stir Fry">`)
			})
		})

		convey.Convey("When fetching the docs and metrics", func() {
			page, _ := get("/api-docs")
			definition, _ := get("/openapi.yaml")
			health, metricsBody := get("/healthz")

			convey.Convey("Then each should be served", func() {
				convey.So(page.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(definition.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(health.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(metricsBody, convey.ShouldContainSubstring, "campusdine_recommender_catalog_venues 4")
			})
		})

		convey.Convey("When fetching an unknown path", func() {
			resp, _ := get("/nope")

			convey.Convey("Then it should be not found", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestMainSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When its context expires", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			convey.Convey("Then it should return without panicking", func() {
				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When updating once", func() {
			convey.So(func() {
				updateSystemMetrics()
			}, convey.ShouldNotPanic)
		})
	})
}
