package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorrillazz-bootstrap/internal/domain"
	"gorrillazz-bootstrap/internal/storage"
)

func TestPriceStore_InsertAndLatest(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, price := range []float64{1.00, 1.40, 1.10} {
		p := &domain.Price{Price: price, Timestamp: base.Add(time.Duration(i) * time.Hour)}
		id, err := store.Insert(ctx, p)
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		if id != p.ID.Hex() {
			t.Errorf("returned id %s does not match assigned id %s", id, p.ID.Hex())
		}
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.Price != 1.10 {
		t.Errorf("Latest price: got %v, want 1.10", latest.Price)
	}

	n, _ := store.Count(ctx)
	if n != 3 {
		t.Errorf("Count: got %d, want 3", n)
	}
}

func TestPriceStore_LatestEmpty(t *testing.T) {
	store := NewPriceStore()

	_, err := store.Latest(context.Background())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPriceStore_ReturnsCopies(t *testing.T) {
	store := NewPriceStore()
	ctx := context.Background()

	p := domain.NewSeedPrice(time.Now())
	if _, err := store.Insert(ctx, p); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	p.Price = 99

	latest, _ := store.Latest(ctx)
	if latest.Price != domain.InitialPrice {
		t.Errorf("stored price mutated through caller pointer: got %v", latest.Price)
	}
}
