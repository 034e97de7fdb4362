package rename

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestNewPlanKeepsDirAndExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan0001.pdf")
	touch(t, src)

	p, err := NewPlan(src, "2023-10-27_invoice_1023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "2023-10-27_invoice_1023.pdf")
	if p.TargetPath != want {
		t.Errorf("target: got %q, want %q", p.TargetPath, want)
	}
	if p.CollisionResolved {
		t.Error("no collision expected")
	}
}

func TestNewPlanMissingSource(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewPlan(filepath.Join(dir, "gone.pdf"), "stem"); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestNewPlanResolvesCollision(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan0001.pdf")
	touch(t, src)
	touch(t, filepath.Join(dir, "invoice_1023.pdf"))

	p, err := NewPlan(src, "invoice_1023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(dir, "invoice_1023-1.pdf")
	if p.TargetPath != want {
		t.Errorf("target: got %q, want %q", p.TargetPath, want)
	}
	if !p.CollisionResolved {
		t.Error("expected CollisionResolved")
	}
}

func TestNewPlanCountsPastMultipleCollisions(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan0001.pdf")
	touch(t, src)
	touch(t, filepath.Join(dir, "invoice.pdf"))
	touch(t, filepath.Join(dir, "invoice-1.pdf"))
	touch(t, filepath.Join(dir, "invoice-2.pdf"))

	p, err := NewPlan(src, "invoice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := p.TargetPath, filepath.Join(dir, "invoice-3.pdf"); got != want {
		t.Errorf("target: got %q, want %q", got, want)
	}
}

func TestNewPlanSelfRenameIsNoCollision(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "invoice_1023.pdf")
	touch(t, src)

	p, err := NewPlan(src, "invoice_1023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TargetPath != src {
		t.Errorf("target: got %q, want source %q", p.TargetPath, src)
	}
	if p.CollisionResolved {
		t.Error("renaming to the current name must not disambiguate")
	}
}

func TestNewPlanDotPrefixedSourceIsSelfRename(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	touch(t, "invoice_1023.pdf")

	p, err := NewPlan("./invoice_1023.pdf", "invoice_1023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TargetPath != "invoice_1023.pdf" {
		t.Errorf("target: got %q, want invoice_1023.pdf", p.TargetPath)
	}
	if p.CollisionResolved {
		t.Error("a differently spelled self-rename must not disambiguate")
	}
	if err := Apply(p, false); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := os.Stat("invoice_1023.pdf"); err != nil {
		t.Errorf("file lost its name: %v", err)
	}
	if _, err := os.Stat("invoice_1023-1.pdf"); err == nil {
		t.Error("self-rename produced a disambiguated copy")
	}
}

func TestApplyDryRunLeavesFileAlone(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan0001.pdf")
	touch(t, src)

	p, err := NewPlan(src, "invoice_1023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Apply(p, true); err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("dry run moved the source: %v", err)
	}
	if _, err := os.Stat(p.TargetPath); err == nil {
		t.Error("dry run created the target")
	}
}

func TestApplyRenames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan0001.pdf")
	touch(t, src)

	p, err := NewPlan(src, "invoice_1023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Apply(p, false); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if _, err := os.Stat(src); err == nil {
		t.Error("source still exists after rename")
	}
	if _, err := os.Stat(p.TargetPath); err != nil {
		t.Errorf("target missing after rename: %v", err)
	}
}

func TestApplyFailsWhenSourceVanished(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "scan0001.pdf")
	touch(t, src)

	p, err := NewPlan(src, "invoice_1023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.Remove(src); err != nil {
		t.Fatal(err)
	}
	if err := Apply(p, false); err == nil {
		t.Fatal("expected error when the source vanished")
	}
}
