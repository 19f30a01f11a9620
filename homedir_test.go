package main

import "testing"

func TestAppDataDirEmptyName(t *testing.T) {
	if got := appDataDir("", false); got != "." {
		t.Errorf("appDataDir(\"\") = %q, want %q", got, ".")
	}
	if got := appDataDir(".", false); got != "." {
		t.Errorf("appDataDir(\".\") = %q, want %q", got, ".")
	}
}

func TestAppDataDirNonEmpty(t *testing.T) {
	got := appDataDir("ccoind", false)
	if got == "" {
		t.Error("appDataDir(\"ccoind\") returned an empty string")
	}
}
