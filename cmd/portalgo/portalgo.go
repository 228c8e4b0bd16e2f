package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"portalgo/internal/config"
	"portalgo/internal/picker"
	"portalgo/internal/portal"
)

var (
	version    string
	build      string
	debugPtr   = flag.Bool("debug", false, "Enable debug logging.")
	versionPtr = flag.Bool("version", false, "Print version.")
)

func main() {
	flag.Parse()

	if *versionPtr {
		if version == "" {
			version = "devel"
		}
		fmt.Printf("portalgo Version: %s, Build: %s\n", version, build)
		os.Exit(0)
	}

	conf, err := config.GetAppConfig()
	check(err)

	conf.ApplyLogLevel()
	if *debugPtr {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var logOutput io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	if conf.LogFile != "" {
		f, err := os.OpenFile(conf.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		check(err)
		logOutput = f
	}

	logger := zerolog.New(logOutput).With().Timestamp().Logger()

	conn, err := dbus.ConnectSessionBus()
	check(err)

	filechooser := &portal.FileChooser{
		Picker: picker.NewNative(),
		Logger: logger,
	}
	appchooser := &portal.AppChooser{
		Logger: logger,
	}

	err = conn.Export(filechooser, portal.ObjectPath, portal.FileChooserInterface)
	check(err)

	err = conn.Export(appchooser, portal.ObjectPath, portal.AppChooserInterface)
	check(err)

	err = conn.Export(introspect.NewIntrospectable(portal.Node()), portal.ObjectPath, "org.freedesktop.DBus.Introspectable")
	check(err)

	_, err = prop.Export(conn, portal.ObjectPath, portal.Props())
	check(err)

	reply, err := conn.RequestName(portal.BusName, dbus.NameFlagDoNotQueue)
	check(err)
	if reply != dbus.RequestNameReplyPrimaryOwner {
		check(errors.Errorf("main: bus name %s already has an owner", portal.BusName))
	}

	logger.Info().
		Str("name", portal.BusName).
		Str("path", string(portal.ObjectPath)).
		Msg("serving file chooser portal")

	// The bus library dispatches incoming calls on its own goroutines;
	// there is nothing left to do here but wait. The process stops by
	// being terminated.
	select {}
}

func check(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
