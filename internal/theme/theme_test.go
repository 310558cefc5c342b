package theme

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTheme(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		wantAccent string
		wantTitle  string
		wantErr    bool
	}{
		{
			name:       "full theme",
			yaml:       "title: 运气\naccent_color: \"#336699\"\n",
			wantAccent: "#336699",
			wantTitle:  "运气",
		},
		{
			name:       "defaults applied",
			yaml:       "{}\n",
			wantAccent: DefaultAccentColor,
			wantTitle:  DefaultTitle,
		},
		{
			name:    "invalid color",
			yaml:    "accent_color: red\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "title: [unterminated\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.AccentColor != tt.wantAccent {
				t.Errorf("AccentColor = %q, want %q", got.AccentColor, tt.wantAccent)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Footer == "" {
				t.Error("Footer should default to the disclaimer")
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	got, err := LoadOrDefault("", "#123456")
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if got.AccentColor != "#123456" {
		t.Errorf("AccentColor = %q, want %q", got.AccentColor, "#123456")
	}

	if _, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"), "#123456"); err == nil {
		t.Error("LoadOrDefault() with missing file succeeded, want error")
	}
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	s := NewStore(Default("#111111"))

	got := s.Current()
	got.AccentColor = "#222222"

	if s.Current().AccentColor != "#111111" {
		t.Error("mutating the returned theme changed the store")
	}

	s.Set(Default("#333333"))
	if s.Current().AccentColor != "#333333" {
		t.Errorf("AccentColor = %q after Set, want %q", s.Current().AccentColor, "#333333")
	}
}

func TestWatch_NoPath(t *testing.T) {
	err := Watch(context.Background(), "", quietLogger(), func(Theme) {})
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("Watch(\"\") error = %v, want ErrNoPath", err)
	}
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeTheme(t, path, "accent_color: \"#111111\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Theme, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, quietLogger(), func(th Theme) { changes <- th })
	}()

	// Rewrite until the watcher picks it up; the first write may race Add.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case th := <-changes:
			if th.AccentColor != "#222222" {
				t.Fatalf("AccentColor = %q, want %q", th.AccentColor, "#222222")
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() returned %v", err)
			}
			return
		case <-tick.C:
			writeTheme(t, path, "accent_color: \"#222222\"\n")
		case <-deadline:
			t.Fatal("no reload observed within 5s")
		}
	}
}

// renameTheme performs an editor-style atomic save: write a sibling temp
// file, then rename it over path.
func renameTheme(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	writeTheme(t, tmp, content)
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename theme: %v", err)
	}
}

// waitForAccent applies save every tick until a reload with want arrives.
func waitForAccent(t *testing.T, changes <-chan Theme, want string, save func()) {
	t.Helper()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case th := <-changes:
			if th.AccentColor == want {
				return
			}
		case <-tick.C:
			save()
		case <-deadline:
			t.Fatalf("no reload to %s observed within 5s", want)
		}
	}
}

func TestWatch_SurvivesAtomicSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeTheme(t, path, "accent_color: \"#111111\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Theme, 64)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, quietLogger(), func(th Theme) { changes <- th })
	}()

	waitForAccent(t, changes, "#222222", func() {
		renameTheme(t, path, "accent_color: \"#222222\"\n")
	})

	// The watch must still be alive after the original inode was replaced.
	waitForAccent(t, changes, "#333333", func() {
		writeTheme(t, path, "accent_color: \"#333333\"\n")
	})

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() returned %v", err)
	}
}

func TestWatch_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	writeTheme(t, path, "accent_color: \"#111111\"\n")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	called := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, quietLogger(), func(Theme) { called <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	writeTheme(t, filepath.Join(dir, "other.yaml"), "accent_color: \"#222222\"\n")

	if err := <-done; err != nil {
		t.Errorf("Watch() returned %v", err)
	}
	select {
	case <-called:
		t.Error("onChange called for a write to a different file")
	default:
	}
}

func TestWatch_InvalidReloadSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	writeTheme(t, path, "accent_color: \"#111111\"\n")

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	called := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, quietLogger(), func(Theme) { called <- struct{}{} })
	}()

	time.Sleep(100 * time.Millisecond)
	writeTheme(t, path, "accent_color: not-a-color\n")

	if err := <-done; err != nil {
		t.Errorf("Watch() returned %v", err)
	}
	select {
	case <-called:
		t.Error("onChange called for an invalid theme")
	default:
	}
}
