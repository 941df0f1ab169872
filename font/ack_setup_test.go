package font

// This file sets up the test fonts and provides some helper methods.

import "os"
import "sync"
import "testing"
import "testing/fstest"
import "path/filepath"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/font/gofont/gomono"
import "golang.org/x/image/font/gofont/goregular"

var testFontA *sfnt.Font
var testFontB *sfnt.Font
var testNameA string
var testNameB string
var assetsLoadMutex sync.Mutex

// in-memory filesystem with the test fonts and some noise
var testfs = fstest.MapFS{
	"fonts/regular.ttf": &fstest.MapFile{ Data: goregular.TTF },
	"fonts/mono.ttf"   : &fstest.MapFile{ Data: gomono.TTF },
	"fonts/readme.txt" : &fstest.MapFile{ Data: []byte("not a font") },
	"fonts/sub/dup.ttf": &fstest.MapFile{ Data: goregular.TTF },
}

func ensureTestAssetsLoaded(t *testing.T) {
	assetsLoadMutex.Lock()
	defer assetsLoadMutex.Unlock()
	if testFontA != nil { return }

	var err error
	testFontA, testNameA, err = ParseFromBytes(goregular.TTF)
	if err != nil { t.Fatalf("TESTS INIT: %s", err) }
	testFontB, testNameB, err = ParseFromBytes(gomono.TTF)
	if err != nil { t.Fatalf("TESTS INIT: %s", err) }
}

// Writes the test fonts to a temporary directory and returns its path.
func writeTestFontsDir(t *testing.T) string {
	dir := t.TempDir()
	files := map[string][]byte{
		"a_regular.ttf": goregular.TTF,
		"b_mono.otf"   : gomono.TTF, // only the extension matters
		"c_dup.ttf"    : goregular.TTF,
		"notes.txt"    : []byte("not a font"),
	}
	for name, data := range files {
		err := os.WriteFile(filepath.Join(dir, name), data, 0o644)
		if err != nil { t.Fatalf("writing %s: %s", name, err) }
	}
	err := os.Mkdir(filepath.Join(dir, "nested"), 0o755)
	if err != nil { t.Fatal(err) }
	err = os.WriteFile(filepath.Join(dir, "nested", "skipped.ttf"), gomono.TTF, 0o644)
	if err != nil { t.Fatal(err) }
	return dir
}
