package sessions

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	idPersona := int64(3)
	identity := &Identity{IDUsuario: 1, Usuario: "admin", Rol: "admin", IDPersona: &idPersona}
	if err := store.Set(ctx, "tok", identity, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Usuario != "admin" || got.IDPersona == nil || *got.IDPersona != 3 {
		t.Errorf("unexpected identity: %+v", got)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("unknown token should resolve to nil, got %+v", got)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	identity := &Identity{IDUsuario: 1, Usuario: "admin", Rol: "admin"}
	if err := store.Set(ctx, "tok", identity, -time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expired session should resolve to nil, got %+v", got)
	}
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	identity := &Identity{IDUsuario: 1, Usuario: "admin", Rol: "admin"}
	if err := store.Set(ctx, "tok", identity, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Destroy(ctx, "tok"); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}

	got, err := store.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("destroyed session should resolve to nil, got %+v", got)
	}

	// Destroying an already-missing token is not an error.
	if err := store.Destroy(ctx, "tok"); err != nil {
		t.Errorf("Destroy on missing token failed: %v", err)
	}
}
