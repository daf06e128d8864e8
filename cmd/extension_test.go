package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	setup(t)
	config.Currency = "EUR"

	bin := t.TempDir()
	script := "#!/bin/sh\necho \"file=$WALLET_FILE currency=$WALLET_CURRENCY args=$*\"\nexit 3\n"
	if err := os.WriteFile(filepath.Join(bin, "wlt-hello"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))

	var out bytes.Buffer
	stdout = &out
	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 3 {
		t.Fatalf("RunExtension(hello) = %v, %d, want true, 3", found, code)
	}
	want := "file=" + config.File + " currency=EUR args=a b"
	if got := strings.TrimSpace(out.String()); got != want {
		t.Errorf("extension output = %q, want %q", got, want)
	}
}

func TestRunExtensionNotFound(t *testing.T) {
	setup(t)
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("nope", nil); found || code != 0 {
		t.Errorf("RunExtension(nope) = %v, %d, want false, 0", found, code)
	}
}
