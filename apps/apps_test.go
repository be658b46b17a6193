package apps

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/mstarongithub/gayshell/util/multiplexer"
)

func writeDesktopFile(t *testing.T, dir, name, content string) {
	t.Helper()
	appsDir := filepath.Join(dir, "applications")
	if err := os.MkdirAll(appsDir, 0o755); err != nil {
		t.Fatalf("failed to make %s: %v", appsDir, err)
	}
	if err := os.WriteFile(filepath.Join(appsDir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestScanDirsPicksUpApplications(t *testing.T) {
	dir := t.TempDir()
	writeDesktopFile(t, dir, "files.desktop", `[Desktop Entry]
Type=Application
Name=Files
Exec=files --new-window %U
`)
	writeDesktopFile(t, dir, "hidden.desktop", `[Desktop Entry]
Type=Application
Name=Hidden
Exec=hidden
Hidden=true
`)
	writeDesktopFile(t, dir, "nodisplay.desktop", `[Desktop Entry]
Type=Application
Name=Sneaky
Exec=sneaky
NoDisplay=true
`)
	writeDesktopFile(t, dir, "link.desktop", `[Desktop Entry]
Type=Link
Name=Somewhere
URL=https://example.com
`)
	writeDesktopFile(t, dir, "broken.desktop", `[Desktop Entry]
Type=Application
Name=NoCommand
`)

	entries := ScanDirs([]string{dir})
	if len(entries) != 1 {
		t.Fatalf("expected 1 visible application, got %d: %+v", len(entries), entries)
	}
	if entries[0].Name != "Files" {
		t.Errorf("got entry %q", entries[0].Name)
	}
	if entries[0].Exec != "files --new-window %U" {
		t.Errorf("exec line mangled: %q", entries[0].Exec)
	}
}

func TestScanDirsEarlierDirWins(t *testing.T) {
	userDir := t.TempDir()
	systemDir := t.TempDir()
	writeDesktopFile(t, userDir, "editor.desktop", `[Desktop Entry]
Type=Application
Name=My Editor
Exec=editor-dev
`)
	writeDesktopFile(t, systemDir, "editor.desktop", `[Desktop Entry]
Type=Application
Name=Editor
Exec=editor
`)

	entries := ScanDirs([]string{userDir, systemDir})
	if len(entries) != 1 {
		t.Fatalf("expected the duplicate id to collapse to 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "My Editor" {
		t.Errorf("system entry shadowed the user one: %q", entries[0].Name)
	}
}

func TestParseIgnoresOtherGroups(t *testing.T) {
	dir := t.TempDir()
	writeDesktopFile(t, dir, "term.desktop", `[Desktop Entry]
Type=Application
Name=Terminal
Exec=term

[Desktop Action new-window]
Name=New Window
Exec=term --new-window
`)

	entries := ScanDirs([]string{dir})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Exec != "term" {
		t.Errorf("action group leaked into the entry: %q", entries[0].Exec)
	}
}

func TestCommandLine(t *testing.T) {
	for _, tc := range []struct {
		exec string
		want []string
	}{
		{"files", []string{"files"}},
		{"files --new-window %U", []string{"files", "--new-window"}},
		{"env FOO=bar app %f %F %u %i %c %k", []string{"env", "FOO=bar", "app"}},
		{`"/opt/my app/run" --flag`, []string{"/opt/my app/run", "--flag"}},
		{"show %% done", []string{"show", "%", "done"}},
		{"", []string{}},
	} {
		if got := CommandLine(tc.exec); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("CommandLine(%q) = %v, want %v", tc.exec, got, tc.want)
		}
	}
}

func TestLauncherReportsExit(t *testing.T) {
	exitChan := make(chan ExitNotice, 1)
	plexer := multiplexer.NewManyToOne(exitChan)
	launcher := NewLauncher(&plexer)

	launcher.Launch(Entry{Name: "truth", Exec: "true"})

	select {
	case notice := <-exitChan:
		if notice.Name != "truth" {
			t.Errorf("notice names %q", notice.Name)
		}
		if notice.Code != 0 {
			t.Errorf("true exited with %d", notice.Code)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no exit notice arrived")
	}
}

func TestLauncherSwallowsStartFailure(t *testing.T) {
	exitChan := make(chan ExitNotice, 1)
	plexer := multiplexer.NewManyToOne(exitChan)
	launcher := NewLauncher(&plexer)

	// Must not panic and must not produce an exit notice
	launcher.Launch(Entry{Name: "ghost", Exec: "/does/not/exist/anywhere"})
	launcher.Launch(Entry{Name: "empty", Exec: "%U"})

	select {
	case notice := <-exitChan:
		t.Errorf("got an exit notice for a failed start: %+v", notice)
	case <-time.After(200 * time.Millisecond):
	}
}
