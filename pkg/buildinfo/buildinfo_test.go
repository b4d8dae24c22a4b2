package buildinfo

import (
	"testing"
)

func TestBinaryVersion(t *testing.T) {
	if BinaryVersion != "dev" {
		t.Errorf("Expected BinaryVersion to be 'dev', got '%s'", BinaryVersion)
	}
}

func TestModuleVersionNeverDevel(t *testing.T) {
	if v := ModuleVersion(); v == "(devel)" {
		t.Errorf("ModuleVersion should hide the (devel) marker")
	}
}

func TestVersionPrefersLdflags(t *testing.T) {
	orig := BinaryVersion
	defer func() { BinaryVersion = orig }()

	BinaryVersion = "v1.4.0"
	if got := Version(); got != "v1.4.0" {
		t.Errorf("Version() = %q, want v1.4.0", got)
	}
}

func TestVersionFallback(t *testing.T) {
	orig := BinaryVersion
	defer func() { BinaryVersion = orig }()

	BinaryVersion = "dev"
	got := Version()
	if got == "" {
		t.Error("Version() should never be empty")
	}
	if mv := ModuleVersion(); mv != "" && got != mv {
		t.Errorf("Version() = %q, want module version %q", got, mv)
	}
}
