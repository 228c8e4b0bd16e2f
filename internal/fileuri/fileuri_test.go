package fileuri

import (
	"reflect"
	"testing"
)

func TestEncode(t *testing.T) {
	tt := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			`Test #1`,
			`/home/alice/report.pdf`,
			`file://localhost/home/alice/report.pdf`,
			false,
		},
		{
			`Test #2`,
			`/tmp/a.txt`,
			`file://localhost/tmp/a.txt`,
			false,
		},
		{
			`Test #3`,
			`/srv/data/video+(final).mp4`,
			`file://localhost/srv/data/video+(final).mp4`,
			false,
		},
		{
			`Test #4`,
			`/tmp/a b.txt`,
			``,
			true,
		},
		{
			`Test #5`,
			`/home/alice/résumé.pdf`,
			``,
			true,
		},
		{
			`Test #6`,
			`relative/path.txt`,
			``,
			true,
		},
		{
			`Test #7`,
			``,
			``,
			true,
		},
	}

	for _, tc := range tt {
		out, err := Encode(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error for input %q, got %q.", tc.name, tc.input, out)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %s.", tc.name, err)
			continue
		}
		if out != tc.want {
			t.Errorf("%s: got: %s, want: %s.", tc.name, out, tc.want)
		}
	}
}

func TestEncodeAllOrder(t *testing.T) {
	in := []string{"/tmp/a.txt", "/tmp/b.txt", "/var/log/syslog"}
	want := []string{
		"file://localhost/tmp/a.txt",
		"file://localhost/tmp/b.txt",
		"file://localhost/var/log/syslog",
	}

	out, err := EncodeAll(in)
	if err != nil {
		t.Fatalf("unexpected error: %s.", err)
	}

	if !reflect.DeepEqual(out, want) {
		t.Errorf("got: %v, want: %v.", out, want)
	}
}

func TestEncodeAllAbortsOnFailure(t *testing.T) {
	in := []string{"/tmp/a.txt", "/tmp/bad name.txt", "/tmp/c.txt"}

	out, err := EncodeAll(in)
	if err == nil {
		t.Fatal("expected an error for a path with a space")
	}
	if out != nil {
		t.Errorf("expected no partial results, got: %v.", out)
	}
}

func TestEncodeAllEmpty(t *testing.T) {
	out, err := EncodeAll(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s.", err)
	}
	if len(out) != 0 {
		t.Errorf("expected an empty result, got: %v.", out)
	}
}
