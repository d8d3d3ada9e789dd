package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand()

	want := []string{"reciters", "surahs", "resolve", "fetch", "preflight", "config"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestRangeFlagsAreRequired(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"resolve", "fetch"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatalf("find %s: %v", name, err)
		}
		for _, flag := range []string{"reciter", "surah", "end"} {
			f := cmd.Flags().Lookup(flag)
			if f == nil {
				t.Fatalf("%s: missing flag --%s", name, flag)
			}
			if f.Annotations[cobra.BashCompOneRequiredFlag] == nil {
				t.Fatalf("%s: flag --%s should be required", name, flag)
			}
		}
		start := cmd.Flags().Lookup("start")
		if start == nil || start.DefValue != "1" {
			t.Fatalf("%s: start flag should default to 1", name)
		}
	}
}

func TestRenderRowsPlainMode(t *testing.T) {
	if stdoutIsTerminal() {
		t.Skip("stdout is a terminal")
	}
	got := renderRows(
		[]string{"ID", "Name"},
		[][]string{{"1", "alpha"}, {"2", "beta"}},
	)
	want := "1\talpha\n2\tbeta"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
