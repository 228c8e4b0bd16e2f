package picker

import (
	"testing"
)

func TestModeString(t *testing.T) {
	tt := []struct {
		name  string
		input Mode
		want  string
	}{
		{
			`Test #1`,
			OpenFile,
			`open-file`,
		},
		{
			`Test #2`,
			OpenFiles,
			`open-files`,
		},
		{
			`Test #3`,
			OpenDir,
			`open-directory`,
		},
		{
			`Test #4`,
			OpenDirs,
			`open-directories`,
		},
		{
			`Test #5`,
			SaveFile,
			`save-file`,
		},
		{
			`Test #6`,
			Mode(42),
			`unknown`,
		},
	}

	for _, tc := range tt {
		out := tc.input.String()
		if out != tc.want {
			t.Errorf("%s: got: %s, want: %s.", tc.name, out, tc.want)
		}
	}
}

func TestNativeUnknownMode(t *testing.T) {
	// An out-of-range mode must fail before any dialog is shown.
	_, err := NewNative().Pick(Request{Title: "nope", Mode: Mode(42)})
	if err == nil {
		t.Fatal("expected an error for an unknown dialog mode")
	}
}
