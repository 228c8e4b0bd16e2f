package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	// First call creates the default config file.
	conf, err := GetAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s.", err)
	}
	if conf.Debug || conf.LogFile != "" {
		t.Fatalf("unexpected defaults: %+v.", conf)
	}

	conf.Debug = true
	conf.LogFile = "/tmp/portalgo.log"
	if err := conf.SaveAppConfig(); err != nil {
		t.Fatalf("unexpected error: %s.", err)
	}

	got, err := GetAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %s.", err)
	}
	if !got.Debug {
		t.Error("expected debug to persist.")
	}
	if got.LogFile != conf.LogFile {
		t.Errorf("got: %s, want: %s.", got.LogFile, conf.LogFile)
	}
}

func TestApplyLogLevel(t *testing.T) {
	tt := []struct {
		name  string
		input Config
		want  zerolog.Level
	}{
		{
			`Test #1`,
			Config{Debug: false},
			zerolog.InfoLevel,
		},
		{
			`Test #2`,
			Config{Debug: true},
			zerolog.DebugLevel,
		},
	}

	for _, tc := range tt {
		tc.input.ApplyLogLevel()
		if zerolog.GlobalLevel() != tc.want {
			t.Errorf("%s: got: %s, want: %s.", tc.name, zerolog.GlobalLevel(), tc.want)
		}
	}
}
