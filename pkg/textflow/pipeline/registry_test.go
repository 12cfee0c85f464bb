package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/cognicore/textflow/pkg/textflow/internalerr"
)

func TestRegistryRegisterAndResolve(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Op", constOp("v"))

	fn, err := reg.Resolve("Op")
	if err != nil {
		t.Fatal(err)
	}
	v, err := fn(context.Background(), nil, nil, nil, nil)
	if err != nil || v != "v" {
		t.Errorf("resolved op returned %v, %v", v, err)
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve("nope")
	if !errors.Is(err, internalerr.ErrUnknownOperation) {
		t.Fatalf("expected unknown-operation error, got %v", err)
	}
}

func TestRegistryNamesCaseSensitive(t *testing.T) {
	reg := NewRegistry()
	reg.Register("clean", constOp(1))
	reg.Register("Clean", constOp(2))

	if _, err := reg.Resolve("CLEAN"); !errors.Is(err, internalerr.ErrUnknownOperation) {
		t.Error("names must be case-sensitive")
	}
	names := reg.Names()
	if len(names) != 2 || names[0] != "Clean" || names[1] != "clean" {
		t.Errorf("names = %v", names)
	}
}

func TestRegistryOverwrite(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Op", constOp("old"))
	reg.Register("Op", constOp("new"))

	fn, err := reg.Resolve("Op")
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := fn(context.Background(), nil, nil, nil, nil); v != "new" {
		t.Errorf("overwrite not applied, got %v", v)
	}
}

func TestRegistryCloneIsIndependent(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Op", constOp(1))

	clone := reg.Clone()
	clone.Register("Extra", constOp(2))

	if _, err := reg.Resolve("Extra"); !errors.Is(err, internalerr.ErrUnknownOperation) {
		t.Error("clone registration leaked into the original")
	}
	if _, err := clone.Resolve("Op"); err != nil {
		t.Error("clone lost original registration")
	}
}
