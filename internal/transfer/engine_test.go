package transfer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/handiism/photo-organizer/internal/model"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("%s exists, want it absent", path)
	}
}

func TestEngine_Move(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in", "a.jpg")
	dst := filepath.Join(dir, "lib", "2025", "06", "15", "a.jpg")
	writeFile(t, src, "A")

	out := NewEngine(model.ActionMove, false).Transfer(model.TransferPair{Source: src, Destination: dst})

	if got, ok := out.(Transferred); !ok || got.Path != dst {
		t.Fatalf("Transfer() = %#v, want Transferred{%q}", out, dst)
	}
	if got := readFile(t, dst); got != "A" {
		t.Errorf("destination content = %q, want %q", got, "A")
	}
	assertMissing(t, src)
}

func TestEngine_Copy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in", "a.jpg")
	dst := filepath.Join(dir, "lib", "a.jpg")
	writeFile(t, src, "A")

	out := NewEngine(model.ActionCopy, false).Transfer(model.TransferPair{Source: src, Destination: dst})

	if _, ok := out.(Transferred); !ok {
		t.Fatalf("Transfer() = %#v, want Transferred", out)
	}
	if got := readFile(t, dst); got != "A" {
		t.Errorf("destination content = %q, want %q", got, "A")
	}
	if got := readFile(t, src); got != "A" {
		t.Errorf("source content = %q, want it untouched", got)
	}
}

func TestEngine_CollisionSafety(t *testing.T) {
	for _, action := range []model.Action{model.ActionMove, model.ActionCopy} {
		t.Run(action.String(), func(t *testing.T) {
			dir := t.TempDir()
			first := filepath.Join(dir, "in", "photo1.jpg")
			second := filepath.Join(dir, "in", "sub", "photo1.jpg")
			dst := filepath.Join(dir, "lib", "photo1.jpg")
			writeFile(t, first, "first")
			writeFile(t, second, "second")

			pairs := []model.TransferPair{
				{Source: first, Destination: dst},
				{Source: second, Destination: dst},
			}
			counts := NewEngine(action, false).TransferAll(pairs, nil)

			if counts != (Counts{Transferred: 2}) {
				t.Fatalf("TransferAll() = %+v, want 2 transferred", counts)
			}
			if got := readFile(t, dst); got != "first" {
				t.Errorf("%s = %q, want %q", dst, got, "first")
			}
			suffixed := filepath.Join(dir, "lib", "photo1(1).jpg")
			if got := readFile(t, suffixed); got != "second" {
				t.Errorf("%s = %q, want %q", suffixed, got, "second")
			}
		})
	}
}

func TestEngine_CollisionSkipsTakenSuffixes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in", "raw")
	lib := filepath.Join(dir, "lib")
	writeFile(t, src, "new")
	writeFile(t, filepath.Join(lib, "raw"), "old")
	writeFile(t, filepath.Join(lib, "raw(1)"), "older")

	out := NewEngine(model.ActionMove, false).Transfer(model.TransferPair{Source: src, Destination: filepath.Join(lib, "raw")})

	want := filepath.Join(lib, "raw(2)")
	if got, ok := out.(Transferred); !ok || got.Path != want {
		t.Fatalf("Transfer() = %#v, want Transferred{%q}", out, want)
	}
	if got := readFile(t, filepath.Join(lib, "raw")); got != "old" {
		t.Errorf("existing file overwritten: %q", got)
	}
	if got := readFile(t, filepath.Join(lib, "raw(1)")); got != "older" {
		t.Errorf("existing suffixed file overwritten: %q", got)
	}
}

func TestEngine_AlreadyInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib", "2025", "06", "15", "a.jpg")
	writeFile(t, path, "A")

	var seen []Outcome
	counts := NewEngine(model.ActionMove, false).TransferAll(
		[]model.TransferPair{{Source: path, Destination: filepath.Join(dir, "lib", "2025", "06", "..", "06", "15", "a.jpg")}},
		func(_ model.TransferPair, out Outcome) { seen = append(seen, out) },
	)

	if counts != (Counts{AlreadyInPlace: 1}) {
		t.Fatalf("TransferAll() = %+v, want 1 already in place", counts)
	}
	if len(seen) != 1 {
		t.Fatalf("callback called %d times, want 1", len(seen))
	}
	if got := readFile(t, path); got != "A" {
		t.Errorf("file content = %q, want untouched", got)
	}
}

func TestEngine_AlreadyAtSuffixedName(t *testing.T) {
	for _, dryRun := range []bool{false, true} {
		t.Run(fmt.Sprintf("dryRun=%v", dryRun), func(t *testing.T) {
			dir := t.TempDir()
			lib := filepath.Join(dir, "lib")
			writeFile(t, filepath.Join(lib, "20250615_143000.jpg"), "first")
			suffixed := filepath.Join(lib, "20250615_143000(1).jpg")
			writeFile(t, suffixed, "second")

			out := NewEngine(model.ActionMove, dryRun).Transfer(model.TransferPair{
				Source:      suffixed,
				Destination: filepath.Join(lib, "20250615_143000.jpg"),
			})

			if got, ok := out.(AlreadyInPlace); !ok || got.Path != suffixed {
				t.Fatalf("Transfer() = %#v, want AlreadyInPlace{%q}", out, suffixed)
			}
			assertMissing(t, filepath.Join(lib, "20250615_143000(2).jpg"))
		})
	}
}

func TestEngine_DryRunReportsCollisionName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in", "a.jpg")
	dst := filepath.Join(dir, "lib", "a.jpg")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	out := NewEngine(model.ActionCopy, true).Transfer(model.TransferPair{Source: src, Destination: dst})

	want := filepath.Join(dir, "lib", "a(1).jpg")
	if got, ok := out.(Transferred); !ok || got.Path != want {
		t.Fatalf("Transfer() = %#v, want Transferred{%q}", out, want)
	}
	assertMissing(t, want)
}

func TestEngine_CrossDeviceFallback(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "card", "a.jpg")
	dst := filepath.Join(dir, "lib", "a.jpg")
	content := bytes.Repeat([]byte("exif"), 1024)
	writeFile(t, src, string(content))

	var renameCalls int
	engine := NewEngine(model.ActionMove, false, WithRenameFunc(func(oldpath, newpath string) error {
		renameCalls++
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}))

	out := engine.Transfer(model.TransferPair{Source: src, Destination: dst})

	if _, ok := out.(Transferred); !ok {
		t.Fatalf("Transfer() = %#v, want Transferred", out)
	}
	if renameCalls != 1 {
		t.Errorf("rename called %d times, want 1", renameCalls)
	}
	if got := readFile(t, dst); got != string(content) {
		t.Errorf("destination bytes differ from source")
	}
	assertMissing(t, src)
}

func TestEngine_RenameFailureContinues(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "in", "bad.jpg")
	good := filepath.Join(dir, "in", "good.jpg")
	writeFile(t, bad, "B")
	writeFile(t, good, "G")

	engine := NewEngine(model.ActionMove, false, WithRenameFunc(func(oldpath, newpath string) error {
		if oldpath == bad {
			return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EACCES}
		}
		return os.Rename(oldpath, newpath)
	}))

	counts := engine.TransferAll([]model.TransferPair{
		{Source: bad, Destination: filepath.Join(dir, "lib", "bad.jpg")},
		{Source: good, Destination: filepath.Join(dir, "lib", "good.jpg")},
	}, nil)

	if counts != (Counts{Transferred: 1, Failed: 1}) {
		t.Fatalf("TransferAll() = %+v, want 1 transferred and 1 failed", counts)
	}
	if got := readFile(t, bad); got != "B" {
		t.Errorf("failed source changed: %q", got)
	}
	assertMissing(t, filepath.Join(dir, "lib", "bad.jpg"))
}

func TestEngine_MissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	out := NewEngine(model.ActionCopy, false).Transfer(model.TransferPair{
		Source:      filepath.Join(dir, "gone.jpg"),
		Destination: filepath.Join(dir, "lib", "gone.jpg"),
	})
	if _, ok := out.(Failed); !ok {
		t.Fatalf("Transfer() = %#v, want Failed", out)
	}
}

func TestEngine_DryRun(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in", "a.jpg")
	inPlace := filepath.Join(dir, "lib", "b.jpg")
	writeFile(t, src, "A")
	writeFile(t, inPlace, "B")

	pairs := []model.TransferPair{
		{Source: src, Destination: filepath.Join(dir, "lib", "2025", "a.jpg")},
		{Source: inPlace, Destination: inPlace},
		{Source: filepath.Join(dir, "in", "missing.jpg"), Destination: filepath.Join(dir, "lib", "missing.jpg")},
	}

	counts := NewEngine(model.ActionMove, true).TransferAll(pairs, nil)

	if counts != (Counts{Transferred: 2, AlreadyInPlace: 1}) {
		t.Fatalf("TransferAll() = %+v, want 2 transferred and 1 already in place", counts)
	}
	assertMissing(t, filepath.Join(dir, "lib", "2025"))
	if got := readFile(t, src); got != "A" {
		t.Errorf("dry run touched source: %q", got)
	}
}

func TestCounts_Add(t *testing.T) {
	var c Counts
	for _, out := range []Outcome{Transferred{}, Transferred{}, AlreadyInPlace{}, Failed{}} {
		c.Add(out)
	}
	if c != (Counts{Transferred: 2, AlreadyInPlace: 1, Failed: 1}) {
		t.Errorf("Counts = %+v", c)
	}
	if c.Total() != 4 {
		t.Errorf("Total() = %d, want 4", c.Total())
	}
}
