package font

import "os"
import "context"
import "strings"
import "testing"
import "path/filepath"

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gomono"

func TestLibrary(t *testing.T) {
	ensureTestAssetsLoaded(t)
	lib := NewLibrary()
	if lib.Size() != 0 { t.Fatal("really?") }

	dir := writeTestFontsDir(t)
	name, err := lib.ParseFromPath(filepath.Join(dir, "a_regular.ttf"))
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if name != testNameA { t.Fatalf("expected %s, got %s", testNameA, name) }
	name, err = lib.ParseFromPath(filepath.Join(dir, "c_dup.ttf"))
	if err != ErrAlreadyPresent { t.Fatalf("expected ErrAlreadyPresent, got %v", err) }
	if name != testNameA { t.Fatalf("expected %s, got %s", testNameA, name) }
	name, err = lib.ParseFromBytes(gomono.TTF)
	if err != nil || name != testNameB { t.Fatalf("unexpected result %s, %v", name, err) }

	if !lib.HasFont(testNameA) || lib.GetFont(testNameA) == nil {
		t.Fatalf("expected library to include %s", testNameA)
	}
	if lib.GetFont("SurelyYouDontNameYourFontsLikeThis_") != nil { t.Fatal("well, well, well...") }
	names := lib.Names()
	if len(names) != 2 || names[0] > names[1] { t.Fatalf("expected 2 sorted names, got %v", names) }

	_, err = lib.ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err == nil { t.Fatal("expected error to be non-nil") }
	if lib.Size() != 2 { t.Fatalf("expected 2 fonts, got %d", lib.Size()) }
}

func TestLibraryEachFont(t *testing.T) {
	ensureTestAssetsLoaded(t)
	lib := NewLibrary()
	_, _, err := lib.ParseGoFonts()
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	var visited []string
	err = lib.EachFont(func(name string, font *sfnt.Font) error {
		family, err := GetFamily(font)
		if err != nil { return err }
		if family == "" || !strings.HasPrefix(name, family) { t.Fatalf("unexpected family %q for %s", family, name) }
		visited = append(visited, name)
		return nil
	})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	names := lib.Names()
	if len(visited) != len(names) { t.Fatalf("expected %v, got %v", names, visited) }
	for i := range names {
		if visited[i] != names[i] { t.Fatalf("expected %v, got %v", names, visited) }
	}

	stop := errors.New("stop")
	count := 0
	err = lib.EachFont(func(string, *sfnt.Font) error { count += 1 ; return stop })
	if err != stop || count != 1 { t.Fatalf("expected the iteration to stop, got %d visits and %v", count, err) }
}

func TestLibraryParseAllFromFS(t *testing.T) {
	ensureTestAssetsLoaded(t)
	dir := writeTestFontsDir(t)

	for _, workers := range []int{ 0, 1, 3 } {
		lib := NewLibrary()
		added, skipped, err := lib.ParseAllFromFS(context.Background(), os.DirFS(dir), ".", workers)
		if err != nil { t.Fatalf("unexpected error: %s", err) }
		if added != 2 || skipped != 1 {
			t.Fatalf("workers %d: expected 2 added and 1 skipped, got %d and %d", workers, added, skipped)
		}
		if !lib.HasFont(testNameA) || !lib.HasFont(testNameB) { t.Fatal("missing fonts") }
	}

	// nested directories and non-font files are ignored
	lib := NewLibrary()
	added, skipped, err := lib.ParseAllFromFS(context.Background(), testfs, "fonts", 2)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if added != 2 || skipped != 0 { t.Fatalf("expected 2 added and 0 skipped, got %d and %d", added, skipped) }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	lib = NewLibrary()
	_, _, err = lib.ParseAllFromFS(ctx, testfs, "fonts", 2)
	if err == nil { t.Fatal("expected error with canceled context") }
	if lib.Size() != 0 { t.Fatal("no fonts should be added on error") }

	_, _, err = lib.ParseAllFromFS(context.Background(), testfs, "missing", 2)
	if err == nil { t.Fatal("expected error on missing directory") }
}

func TestLibraryGoFonts(t *testing.T) {
	lib := NewLibrary()
	added, skipped, err := lib.ParseGoFonts()
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if added != 4 || skipped != 0 { t.Fatalf("expected 4 added and 0 skipped, got %d and %d", added, skipped) }
	if !lib.HasFont(GoRegular) { t.Fatalf("expected %s, got %v", GoRegular, lib.Names()) }
	if !lib.HasFont(GoMono) { t.Fatalf("expected %s, got %v", GoMono, lib.Names()) }

	added, skipped, err = lib.ParseGoFonts()
	if err != nil || added != 0 || skipped != 4 { t.Fatalf("expected all fonts to be skipped, got %d, %d, %v", added, skipped, err) }
}
