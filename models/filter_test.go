package models

import "testing"

func TestFilterProducts(t *testing.T) {
	products := []Product{
		{ID: 1, Code: "GL-AUR-01", Name: "Aurora", FullName: "Aurora Round Acetate", Category: "eyeglasses"},
		{ID: 2, Code: "GL-HAL-02", Name: "Halo", FullName: "Halo Titanium Aviator", Category: "sunglasses"},
	}

	if got := FilterProducts(products, "aur"); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("search by code/name: got %v", got)
	}
	if got := FilterProducts(products, "SUNGLASSES"); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("case-insensitive category search: got %v", got)
	}
	if got := FilterProducts(products, "  "); len(got) != 2 {
		t.Errorf("blank term must match all, got %d", len(got))
	}
}

func TestFilterCustomers(t *testing.T) {
	customers := []Customer{
		{ID: 1, Username: "minhanh", Email: "minhanh@example.com", FullName: "Nguyen Minh Anh", Phone: "0901234567"},
		{ID: 2, Username: "quangvu", Email: "quangvu@example.com", FullName: "Tran Quang Vu", Phone: "0937654321"},
	}

	if got := FilterCustomers(customers, "Anh"); len(got) != 1 || got[0].ID != 1 {
		t.Errorf("search by name: got %v", got)
	}
	if got := FilterCustomers(customers, "0937"); len(got) != 1 || got[0].ID != 2 {
		t.Errorf("search by phone substring: got %v", got)
	}
	if got := FilterCustomers(customers, "example.com"); len(got) != 2 {
		t.Errorf("search by email domain: got %d", len(got))
	}
}
