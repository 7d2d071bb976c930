package render

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-ctxgen/pkg/model"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Extension() string   { return ".txt" }
func (n namedRenderer) Render(context.Context, model.Document) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"xml", "plain"} {
		if err := registry.Register(namedRenderer(name)); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	if diff := cmp.Diff([]string{"plain", "xml"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("xml") {
		t.Fatalf("expected xml to be registered")
	}
	got, err := registry.Get("plain")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name() != "plain" {
		t.Fatalf("unexpected renderer %q", got.Name())
	}
}

func TestRegistry_Errors(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}
	if err := registry.Register(namedRenderer("plain")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(namedRenderer("plain")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if _, err := registry.Get("yaml"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
