package main

import "testing"

func TestVersionFormat(t *testing.T) {
	got := version()
	want := "0.1.0"
	if got != want {
		t.Errorf("version() = %q, want %q", got, want)
	}
}
