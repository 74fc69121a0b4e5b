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

	service "github.com/okian/staffgen/internal/app"
	"github.com/okian/staffgen/internal/config"
	"github.com/okian/staffgen/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(io.Discard)); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("STAFFGEN_ADDR", ":8080")
			_ = os.Setenv("STAFFGEN_MAX_COUNT", "500")
			defer func() {
				_ = os.Unsetenv("STAFFGEN_ADDR")
				_ = os.Unsetenv("STAFFGEN_MAX_COUNT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxCount, convey.ShouldEqual, 500)
			})
		})

		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("STAFFGEN_MAX_COUNT", "-5")
			defer func() { _ = os.Unsetenv("STAFFGEN_MAX_COUNT") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given the assembled HTTP handler", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithMaxCount(100))
		server := httptest.NewServer(newHandler(ctx, svc))
		defer server.Close()

		convey.Convey("When generating employees over HTTP", func() {
			resp, err := http.Post(server.URL+"/employees", "application/json",
				strings.NewReader(`{"count":10,"age":{"min":25,"max":45}}`))
			convey.So(err, convey.ShouldBeNil)
			defer resp.Body.Close()

			convey.Convey("Then the response should carry the run id and ten employees", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
				convey.So(resp.Header.Get("X-Run-Id"), convey.ShouldNotBeEmpty)

				var body struct {
					Employees  []map[string]interface{} `json:"employees"`
					Statistics map[string]interface{}   `json:"statistics"`
				}
				convey.So(json.NewDecoder(resp.Body).Decode(&body), convey.ShouldBeNil)
				convey.So(body.Employees, convey.ShouldHaveLength, 10)
				convey.So(body.Statistics["total"], convey.ShouldEqual, 10.0)
			})
		})

		convey.Convey("When requesting the docs routes", func() {
			for _, path := range []string{"/openapi.yaml", "/api-docs", "/healthz", "/stats"} {
				resp, err := http.Get(server.URL + path)
				convey.So(err, convey.ShouldBeNil)
				_ = resp.Body.Close()
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("When requesting an unknown route", func() {
			resp, err := http.Get(server.URL + "/unknown")
			convey.So(err, convey.ShouldBeNil)
			_ = resp.Body.Close()

			convey.Convey("Then it should return 404", func() {
				convey.So(resp.StatusCode, convey.ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When the system metrics updater context ends", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then the updater should return", func() {
				done := make(chan struct{})
				go func() {
					startSystemMetricsUpdater(ctx)
					close(done)
				}()

				select {
				case <-done:
				case <-time.After(2 * time.Second):
					t.Fatal("system metrics updater did not stop")
				}
			})
		})

		convey.Convey("When updating system metrics", func() {
			convey.Convey("Then it should not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
