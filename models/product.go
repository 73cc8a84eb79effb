package models

import "strings"

type ProductMaterials struct {
	Frame  string `json:"frame"`
	Lens   string `json:"lens"`
	Temple string `json:"temple"`
}

type ProductSpecifications struct {
	LensWidth    int    `json:"lensWidth"`
	BridgeWidth  int    `json:"bridgeWidth"`
	TempleLength int    `json:"templeLength"`
	FrameWidth   int    `json:"frameWidth"`
	FrameHeight  int    `json:"frameHeight"`
	Weight       string `json:"weight"`
}

type ProductColor struct {
	Name  string `json:"name"`
	Code  string `json:"code"`
	Image string `json:"image"`
	Stock int    `json:"stock"`
}

type Product struct {
	ID             int                   `json:"id"`
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	FullName       string                `json:"fullName"`
	Price          float64               `json:"price"`
	OriginalPrice  float64               `json:"originalPrice"`
	Stock          int                   `json:"stock"`
	Category       string                `json:"category"`
	Collection     string                `json:"collection"`
	Status         string                `json:"status"`
	Description    string                `json:"description"`
	Materials      ProductMaterials      `json:"materials"`
	Specifications ProductSpecifications `json:"specifications"`
	Features       []string              `json:"features"`
	Colors         []ProductColor        `json:"colors"`
}

// FilterProducts matches the term against code, name, full name and
// category, case-insensitively. A blank term matches everything.
func FilterProducts(products []Product, term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	var out []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Code), term) ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.FullName), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}
