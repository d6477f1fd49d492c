package ledger

import (
	"errors"
	"testing"

	"buildpro-backend/internal/models"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		minStock int
		want     Status
	}{
		{"zero is out of stock", 0, 10, StatusOutOfStock},
		{"zero beats threshold", 0, 0, StatusOutOfStock},
		{"below threshold", 3, 10, StatusLowStock},
		{"one below threshold", 9, 10, StatusLowStock},
		{"at threshold", 10, 10, StatusInStock},
		{"above threshold", 50, 10, StatusInStock},
		{"custom threshold low", 15, 20, StatusLowStock},
		{"custom threshold in stock", 20, 20, StatusInStock},
		{"missing threshold falls back to 10", 9, 0, StatusLowStock},
		{"missing threshold in stock", 10, 0, StatusInStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.stock, tt.minStock); got != tt.want {
				t.Errorf("DeriveStatus(%d, %d) = %q, want %q", tt.stock, tt.minStock, got, tt.want)
			}
		})
	}
}

func TestValidateIntake(t *testing.T) {
	if err := ValidateIntake("Cement", "Binder", "bag", 0, 0); err != nil {
		t.Errorf("valid intake rejected: %v", err)
	}
	if err := ValidateIntake("", "Binder", "bag", 5, 1); err == nil {
		t.Error("missing name accepted")
	}
	if err := ValidateIntake("Cement", "  ", "bag", 5, 1); err == nil {
		t.Error("blank category accepted")
	}
	if err := ValidateIntake("Cement", "Binder", "bag", -1, 1); err == nil {
		t.Error("negative stock accepted")
	}
	if err := ValidateIntake("Cement", "Binder", "bag", 5, -0.5); err == nil {
		t.Error("negative price accepted")
	}
}

func TestRestock(t *testing.T) {
	m := &models.Material{Stock: 3, MinStock: 10}
	if err := Restock(m, 5); err != nil {
		t.Fatalf("restock: %v", err)
	}
	if m.Stock != 8 {
		t.Errorf("stock = %d, want 8", m.Stock)
	}
	if m.Status != string(StatusLowStock) {
		t.Errorf("status = %q, want %q", m.Status, StatusLowStock)
	}

	if err := Restock(m, 2); err != nil {
		t.Fatalf("restock: %v", err)
	}
	if m.Status != string(StatusInStock) {
		t.Errorf("status after reaching threshold = %q, want %q", m.Status, StatusInStock)
	}

	if err := Restock(m, -1); !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("negative restock err = %v, want ErrNegativeQuantity", err)
	}
	if m.Stock != 10 {
		t.Errorf("stock changed by rejected restock: %d", m.Stock)
	}
}

func TestRecordUsage(t *testing.T) {
	m := &models.Material{Stock: 10, MinStock: 10, Status: string(StatusInStock)}

	err := RecordUsage(m, 12)
	var ins *InsufficientStockError
	if !errors.As(err, &ins) {
		t.Fatalf("over-usage err = %v, want InsufficientStockError", err)
	}
	if ins.Available != 10 {
		t.Errorf("reported available = %d, want 10", ins.Available)
	}
	if m.Stock != 10 || m.Status != string(StatusInStock) {
		t.Errorf("rejected usage mutated material: stock=%d status=%q", m.Stock, m.Status)
	}

	if err := RecordUsage(m, 4); err != nil {
		t.Fatalf("usage: %v", err)
	}
	if m.Stock != 6 || m.Status != string(StatusLowStock) {
		t.Errorf("after usage: stock=%d status=%q, want 6/Low Stock", m.Stock, m.Status)
	}

	if err := RecordUsage(m, 6); err != nil {
		t.Fatalf("usage to zero: %v", err)
	}
	if m.Stock != 0 || m.Status != string(StatusOutOfStock) {
		t.Errorf("after draining: stock=%d status=%q, want 0/Out of Stock", m.Stock, m.Status)
	}

	if err := RecordUsage(m, -3); !errors.Is(err, ErrNegativeQuantity) {
		t.Errorf("negative usage err = %v, want ErrNegativeQuantity", err)
	}
}

func TestReceive(t *testing.T) {
	m := &models.Material{Stock: 0, MinStock: 15, Status: string(StatusOutOfStock)}

	Receive(m, 20)
	if m.Stock != 20 || m.Status != string(StatusInStock) {
		t.Errorf("after receipt: stock=%d status=%q, want 20/In Stock", m.Stock, m.Status)
	}

	m2 := &models.Material{Stock: 1, MinStock: 10}
	Receive(m2, 3)
	if m2.Stock != 4 || m2.Status != string(StatusLowStock) {
		t.Errorf("after small receipt: stock=%d status=%q, want 4/Low Stock", m2.Stock, m2.Status)
	}
}
