package config_test

import (
	"testing"

	"github.com/okian/staffgen/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.MaxCount, convey.ShouldEqual, 10_000)
			convey.So(cfg.DefaultCount, convey.ShouldEqual, 10)
			convey.So(cfg.DefaultMinAge, convey.ShouldEqual, 19)
			convey.So(cfg.DefaultMaxAge, convey.ShouldEqual, 35)
		})

		convey.Convey("Then the default request should mirror the defaults", func() {
			req := cfg.DefaultRequest()
			convey.So(req.Count, convey.ShouldEqual, 10)
			convey.So(req.Age.Min, convey.ShouldEqual, 19)
			convey.So(req.Age.Max, convey.ShouldEqual, 35)
		})

		convey.Convey("Then it should validate", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}
