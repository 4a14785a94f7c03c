package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/st-1989/Correlation-game/internal/config"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no file and no environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults should come back", func() {
			So(err, ShouldBeNil)
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.SampleSize, ShouldEqual, 75)
			So(cfg.TargetCorrelation, ShouldEqual, 0.6)
			So(cfg.Tolerance, ShouldEqual, 0.1)
		})
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CORRGAME_SAMPLE_SIZE", "200")
	t.Setenv("CORRGAME_TARGET_CORRELATION", "0.8")
	t.Setenv("CORRGAME_LOG_LEVEL", "debug")

	Convey("Given CORRGAME_ environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env values should win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.SampleSize, ShouldEqual, 200)
			So(cfg.TargetCorrelation, ShouldEqual, 0.8)
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}

func TestLoadClampsEnvValues(t *testing.T) {
	t.Setenv("CORRGAME_SAMPLE_SIZE", "9999")
	t.Setenv("CORRGAME_TOLERANCE", "-1")

	Convey("Given out-of-range environment values", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then loading should clamp instead of failing", func() {
			So(err, ShouldBeNil)
			So(cfg.SampleSize, ShouldEqual, config.MaxSampleSize)
			So(cfg.Tolerance, ShouldEqual, config.DefaultTolerance)
		})
	})
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corrgame.yaml")
	body := []byte("sample_size: 150\ntolerance: 0.05\n")
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CORRGAME_CONFIG", path)

	Convey("Given a YAML config file", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then file values should override defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.SampleSize, ShouldEqual, 150)
			So(cfg.Tolerance, ShouldEqual, 0.05)
		})
	})

	Convey("Given a missing config file", t, func() {
		t.Setenv("CORRGAME_CONFIG", filepath.Join(dir, "absent.yaml"))
		_, err := config.Load(context.Background())

		Convey("Then loading should fail with the load sentinel", func() {
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})
}
