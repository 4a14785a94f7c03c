package cli_test

import (
	"bytes"
	"testing"

	"github.com/st-1989/Correlation-game/internal/cli"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRootCommand(t *testing.T) {
	Convey("Given the root command", t, func() {
		cmd := cli.NewRootCmd()

		Convey("It should expose the play and calibrate subcommands", func() {
			names := make(map[string]bool)
			for _, sub := range cmd.Commands() {
				names[sub.Name()] = true
			}
			So(names["play"], ShouldBeTrue)
			So(names["calibrate"], ShouldBeTrue)
		})

		Convey("When run with --version", func() {
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{"--version"})

			err := cmd.Execute()

			Convey("It should print the release version", func() {
				So(err, ShouldBeNil)
				So(out.String(), ShouldContainSubstring, "correlation-game v")
			})
		})

		Convey("When run with an unknown subcommand", func() {
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{"does-not-exist"})

			err := cmd.Execute()

			Convey("It should fail", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestPlayCommandFlags(t *testing.T) {
	Convey("Given the play subcommand", t, func() {
		cmd := cli.NewRootCmd()
		play, _, err := cmd.Find([]string{"play"})
		So(err, ShouldBeNil)

		Convey("It should declare the session flags", func() {
			for _, name := range []string{"size", "target", "tolerance", "jitter", "seed", "rounds", "log-level"} {
				So(play.Flags().Lookup(name), ShouldNotBeNil)
			}
		})
	})
}

func TestCalibrateCommandFlags(t *testing.T) {
	Convey("Given the calibrate subcommand", t, func() {
		cmd := cli.NewRootCmd()
		cal, _, err := cmd.Find([]string{"calibrate"})
		So(err, ShouldBeNil)

		Convey("It should declare the sweep flags", func() {
			for _, name := range []string{"targets", "reps", "size", "workers", "drift", "seed"} {
				So(cal.Flags().Lookup(name), ShouldNotBeNil)
			}
		})
	})
}
