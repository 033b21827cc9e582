package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmigpin/flashwin/util/imageutil"
)

func TestRootCmdNoArgs(t *testing.T) {
	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error")
	}
}

// The icon is checked before any window exists, so these run headless.

func TestRunCorruptIcon(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	filename := filepath.Join(dir, "icon.png")
	if err := os.WriteFile(filename, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FLASHWIN_ICON_PATH", filename)

	err := run()
	var de *imageutil.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("err: %v", err)
	}
	if de.Path != filename {
		t.Fatal(de.Path)
	}
}

func TestRunMissingIcon(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("FLASHWIN_ICON_PATH", filepath.Join(dir, "nosuchicon.png"))

	err := run()
	var ie *imageutil.IoError
	if !errors.As(err, &ie) {
		t.Fatalf("err: %v", err)
	}
}

func TestRunBadTriggerKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("FLASHWIN_TRIGGER", "key")
	t.Setenv("FLASHWIN_TRIGGER_KEY", "nosuchkey")

	if err := run(); err == nil {
		t.Fatal("expected error")
	}
}

func TestRootCmdReportsErrorOnce(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("FLASHWIN_ICON_PATH", filepath.Join(dir, "nosuchicon.png"))

	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(nil)
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error")
	}
	if n := bytes.Count(buf.Bytes(), []byte("icon read")); n != 1 {
		t.Fatalf("reported %v times: %q", n, buf.String())
	}
}

// chdir mirrors testing.T.Chdir (go1.24+): it changes the working
// directory for the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
