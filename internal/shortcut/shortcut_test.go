package shortcut

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/read-lnk/read-lnk/internal/lnktest"
)

func TestLnkDecoder_Notepad(t *testing.T) {
	path := lnktest.Write(t, t.TempDir(), "notepad.lnk", lnktest.Notepad)

	got, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	want := Record{
		TargetPath: `C:\Windows\notepad.exe`,
		WorkingDir: `C:\Windows`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestLnkDecoder_AllStrings(t *testing.T) {
	path := lnktest.Write(t, t.TempDir(), "full.lnk", lnktest.Shortcut{
		LocalBasePath: `C:\Program Files\Editor\editor.exe`,
		Name:          "Text editor",
		RelativePath:  `..\..\Program Files\Editor\editor.exe`,
		WorkingDir:    `C:\Users\Public`,
		Arguments:     `--new-window "notes.txt"`,
		IconLocation:  `%SystemRoot%\system32\shell32.dll`,
		TargetSize:    201216,
	})

	got, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	want := Record{
		TargetPath:   `C:\Program Files\Editor\editor.exe`,
		WorkingDir:   `C:\Users\Public`,
		Arguments:    `--new-window "notes.txt"`,
		Description:  "Text editor",
		RelativePath: `..\..\Program Files\Editor\editor.exe`,
		IconLocation: `%SystemRoot%\system32\shell32.dll`,
		TargetSize:   201216,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestLnkDecoder_LocalSuffix(t *testing.T) {
	path := lnktest.Write(t, t.TempDir(), "suffix.lnk", lnktest.Shortcut{
		LocalBasePath:    `C:\`,
		CommonPathSuffix: `Windows\System32\calc.exe`,
	})

	got, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.TargetPath != `C:\Windows\System32\calc.exe` {
		t.Errorf("TargetPath = %q, want %q", got.TargetPath, `C:\Windows\System32\calc.exe`)
	}
}

func TestLnkDecoder_UnicodeBasePath(t *testing.T) {
	path := lnktest.Write(t, t.TempDir(), "unicode.lnk", lnktest.Shortcut{
		LocalBasePath:           `C:\PROGRA~1\EDITOR~1\EDITOR.EXE`,
		LocalBasePathUnicode:    `C:\Program Files\Editor Suite\`,
		CommonPathSuffixUnicode: `editor.exe`,
		WorkingDir:              `C:\Program Files\Editor Suite`,
	})

	got, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	want := Record{
		TargetPath: `C:\Program Files\Editor Suite\editor.exe`,
		WorkingDir: `C:\Program Files\Editor Suite`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestLnkDecoder_NetworkShare(t *testing.T) {
	path := lnktest.Write(t, t.TempDir(), "share.lnk", lnktest.Shortcut{
		NetName:          `\\fileserver\reports`,
		CommonPathSuffix: `2026\q3.xlsx`,
		Arguments:        `/r`,
	})

	got, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	want := Record{
		TargetPath: `\\fileserver\reports\2026\q3.xlsx`,
		Arguments:  `/r`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestLnkDecoder_RelativeOnly(t *testing.T) {
	path := lnktest.Write(t, t.TempDir(), "relative.lnk", lnktest.Shortcut{
		RelativePath: `.\tools\run.bat`,
	})

	got, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.TargetPath != `.\tools\run.bat` {
		t.Errorf("TargetPath = %q, want %q", got.TargetPath, `.\tools\run.bat`)
	}
}

func TestLnkDecoder_Idempotent(t *testing.T) {
	path := lnktest.Write(t, t.TempDir(), "notepad.lnk", lnktest.Notepad)

	first, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("first Decode error: %v", err)
	}
	second, err := LnkDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("second Decode error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Decode differs (-first +second):\n%s", diff)
	}
}

func TestLnkDecoder_FileNotFound(t *testing.T) {
	_, err := LnkDecoder{}.Decode(filepath.Join(t.TempDir(), "missing.lnk"))
	if err == nil {
		t.Fatal("expected error for nonexistent file, got nil")
	}
}

func TestLnkDecoder_NotAShortcut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.lnk")
	if err := os.WriteFile(path, []byte("this is a plain text file, not a shell link\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := (LnkDecoder{}).Decode(path); err == nil {
		t.Fatal("expected error for non-shortcut file, got nil")
	}
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name      string
		localBase string
		suffix    string
		netName   string
		relative  string
		want      string
	}{
		{"local only", `C:\Windows\notepad.exe`, "", "", "", `C:\Windows\notepad.exe`},
		{"local with suffix", `C:\`, `Windows\notepad.exe`, "", "", `C:\Windows\notepad.exe`},
		{"local suffix appended as stored", `D:\Tools`, `bin\app.exe`, "", "", `D:\Toolsbin\app.exe`},
		{"local beats network", `C:\app.exe`, "", `\\server\share`, "", `C:\app.exe`},
		{"network share", "", `docs\report.docx`, `\\server\share`, "", `\\server\share\docs\report.docx`},
		{"network share trailing slash", "", `docs`, `\\server\share\`, "", `\\server\share\docs`},
		{"network share only", "", "", `\\server\share`, "", `\\server\share`},
		{"relative fallback", "", "", "", `..\app.exe`, `..\app.exe`},
		{"nothing", "", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveTarget(tt.localBase, tt.suffix, tt.netName, tt.relative)
			if got != tt.want {
				t.Errorf("resolveTarget() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecoderFunc(t *testing.T) {
	dec := DecoderFunc(func(path string) (Record, error) {
		return Record{TargetPath: path}, nil
	})
	got, err := dec.Decode("x.lnk")
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.TargetPath != "x.lnk" {
		t.Errorf("TargetPath = %q, want %q", got.TargetPath, "x.lnk")
	}
}
