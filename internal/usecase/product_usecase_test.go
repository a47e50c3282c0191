package usecase

import (
	"fmt"
	"testing"
	"time"

	"github.com/Yasinqurni/m-app-server/internal/apperror"
	"github.com/Yasinqurni/m-app-server/internal/models"
)

// ---- mock repository ----

type mockProductRepo struct {
	createFn             func(*models.Product) error
	findByIDFn           func(int) (*models.Product, error)
	findByNameFn         func(string) (*models.Product, error)
	findWithPaginationFn func(models.ProductListQuery) (*models.PaginatedResult[models.Product], error)
	updateFn             func(int, *models.UpdateProductRequest) (*models.Product, error)
	deleteFn             func(int) error
}

func (m *mockProductRepo) Create(p *models.Product) error {
	if m.createFn != nil {
		return m.createFn(p)
	}
	return fmt.Errorf("not configured")
}
func (m *mockProductRepo) FindByID(id int) (*models.Product, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockProductRepo) FindByName(name string) (*models.Product, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(name)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockProductRepo) FindWithPagination(q models.ProductListQuery) (*models.PaginatedResult[models.Product], error) {
	if m.findWithPaginationFn != nil {
		return m.findWithPaginationFn(q)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockProductRepo) Update(id int, req *models.UpdateProductRequest) (*models.Product, error) {
	if m.updateFn != nil {
		return m.updateFn(id, req)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockProductRepo) Delete(id int) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return fmt.Errorf("not configured")
}

func timePtr(t time.Time) *time.Time { return &t }

var widgetTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func aWidget() *models.Product {
	return &models.Product{
		ID: 1, Name: "Widget", HppAmount: 100, SellingAmount: 150,
		CreatedAt: timePtr(widgetTime), UpdatedAt: timePtr(widgetTime),
	}
}

// ---- tests ----

func TestProductCreate(t *testing.T) {
	t.Run("success - inserts then rereads by name", func(t *testing.T) {
		var stored *models.Product
		repo := &mockProductRepo{
			findByNameFn: func(name string) (*models.Product, error) {
				if stored != nil && stored.Name == name {
					return stored, nil
				}
				return nil, nil
			},
			createFn: func(p *models.Product) error {
				clone := *p
				clone.ID = 1
				stored = &clone
				return nil
			},
		}
		u := NewProductUsecase(repo)

		view, err := u.Create(models.CreateProductRequest{Name: "Widget", HppAmount: 100, SellingAmount: 150})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if view.ID != 1 || view.Name != "Widget" || view.HppAmount != 100 || view.SellingAmount != 150 {
			t.Errorf("unexpected view: %+v", view)
		}
		if view.CreatedAt == nil || view.UpdatedAt == nil {
			t.Fatal("timestamps not set")
		}
		if !view.CreatedAt.Equal(*view.UpdatedAt) {
			t.Errorf("created_at %v != updated_at %v at creation", view.CreatedAt, view.UpdatedAt)
		}
		if stored.DeletedAt != nil {
			t.Error("new product must not be soft-deleted")
		}
	})

	t.Run("conflict - duplicate name aborts before insert", func(t *testing.T) {
		created := false
		repo := &mockProductRepo{
			findByNameFn: func(string) (*models.Product, error) { return aWidget(), nil },
			createFn:     func(*models.Product) error { created = true; return nil },
		}
		u := NewProductUsecase(repo)

		_, err := u.Create(models.CreateProductRequest{Name: "Widget"})
		if apperror.KindOf(err) != apperror.KindBadRequest {
			t.Errorf("expected bad request, got %v", err)
		}
		if created {
			t.Error("insert should not happen after duplicate check fails")
		}
	})

	t.Run("internal - inserted row missing on reread", func(t *testing.T) {
		repo := &mockProductRepo{
			findByNameFn: func(string) (*models.Product, error) { return nil, nil },
			createFn:     func(*models.Product) error { return nil },
		}
		u := NewProductUsecase(repo)

		_, err := u.Create(models.CreateProductRequest{Name: "Widget"})
		if apperror.KindOf(err) != apperror.KindInternal {
			t.Errorf("expected internal error, got %v", err)
		}
	})
}

func TestProductGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &mockProductRepo{findByIDFn: func(int) (*models.Product, error) { return aWidget(), nil }}
		u := NewProductUsecase(repo)

		view, err := u.Get(1)
		if err != nil {
			t.Fatalf("Get returned error: %v", err)
		}
		if view.Name != "Widget" {
			t.Errorf("unexpected view: %+v", view)
		}
	})

	t.Run("absent row becomes not found", func(t *testing.T) {
		repo := &mockProductRepo{findByIDFn: func(int) (*models.Product, error) { return nil, nil }}
		u := NewProductUsecase(repo)

		_, err := u.Get(9)
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if err.Error() != "Product with id 9 not found" {
			t.Errorf("unexpected message: %q", err.Error())
		}
	})
}

func TestProductList(t *testing.T) {
	repo := &mockProductRepo{
		findWithPaginationFn: func(q models.ProductListQuery) (*models.PaginatedResult[models.Product], error) {
			return &models.PaginatedResult[models.Product]{
				Data:       []models.Product{*aWidget()},
				Total:      11,
				Page:       2,
				Limit:      5,
				TotalPages: 3,
			}, nil
		},
	}
	u := NewProductUsecase(repo)

	page, err := u.List(models.ProductListQuery{Page: "2", Limit: "5"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Total != 11 || page.Page != 2 || page.Limit != 5 || page.TotalPages != 3 {
		t.Errorf("paging metadata lost: %+v", page)
	}
	if len(page.Data) != 1 || page.Data[0].Name != "Widget" {
		t.Errorf("unexpected data: %+v", page.Data)
	}
}

func TestProductUpdate(t *testing.T) {
	name := "Gadget"

	t.Run("not found", func(t *testing.T) {
		repo := &mockProductRepo{findByIDFn: func(int) (*models.Product, error) { return nil, nil }}
		u := NewProductUsecase(repo)

		_, err := u.Update(9, models.UpdateProductRequest{Name: &name})
		if apperror.KindOf(err) != apperror.KindNotFound {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("renaming to a taken name conflicts", func(t *testing.T) {
		repo := &mockProductRepo{
			findByIDFn:   func(int) (*models.Product, error) { return aWidget(), nil },
			findByNameFn: func(string) (*models.Product, error) { return &models.Product{ID: 2, Name: "Gadget"}, nil },
		}
		u := NewProductUsecase(repo)

		_, err := u.Update(1, models.UpdateProductRequest{Name: &name})
		if apperror.KindOf(err) != apperror.KindBadRequest {
			t.Errorf("expected bad request, got %v", err)
		}
	})

	t.Run("keeping the same name skips the uniqueness check", func(t *testing.T) {
		same := "Widget"
		amount := 200
		repo := &mockProductRepo{
			findByIDFn: func(int) (*models.Product, error) { return aWidget(), nil },
			findByNameFn: func(string) (*models.Product, error) {
				t.Error("uniqueness check should not run for an unchanged name")
				return nil, nil
			},
			updateFn: func(id int, req *models.UpdateProductRequest) (*models.Product, error) {
				p := aWidget()
				p.SellingAmount = *req.SellingAmount
				return p, nil
			},
		}
		u := NewProductUsecase(repo)

		view, err := u.Update(1, models.UpdateProductRequest{Name: &same, SellingAmount: &amount})
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
		if view.SellingAmount != 200 {
			t.Errorf("selling amount not applied: %+v", view)
		}
	})
}

func TestProductDelete(t *testing.T) {
	t.Run("not found - no delete issued", func(t *testing.T) {
		deleted := false
		repo := &mockProductRepo{
			findByIDFn: func(int) (*models.Product, error) { return nil, nil },
			deleteFn:   func(int) error { deleted = true; return nil },
		}
		u := NewProductUsecase(repo)

		if err := u.Delete(9); apperror.KindOf(err) != apperror.KindNotFound {
			t.Errorf("expected not found, got %v", err)
		}
		if deleted {
			t.Error("delete should not run for a missing product")
		}
	})

	t.Run("success", func(t *testing.T) {
		repo := &mockProductRepo{
			findByIDFn: func(int) (*models.Product, error) { return aWidget(), nil },
			deleteFn:   func(id int) error { return nil },
		}
		u := NewProductUsecase(repo)

		if err := u.Delete(1); err != nil {
			t.Errorf("Delete returned error: %v", err)
		}
	})
}
