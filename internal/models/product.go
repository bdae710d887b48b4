package models

// ProductType identifies one of the supported Islamic finance products
type ProductType string

const (
	ProductMurabaha ProductType = "murabaha"
	ProductIjara    ProductType = "ijara"
	ProductSukuk    ProductType = "sukuk"
	ProductZakat    ProductType = "zakat"
)

// ValidProductTypes lists every product the calculation engine supports
var ValidProductTypes = []ProductType{ProductMurabaha, ProductIjara, ProductSukuk, ProductZakat}

// IsValid reports whether the product type is one of the supported products
func (p ProductType) IsValid() bool {
	switch p {
	case ProductMurabaha, ProductIjara, ProductSukuk, ProductZakat:
		return true
	}
	return false
}

// IsAmortizing reports whether the product produces a period-by-period
// amortization schedule. Sukuk and Zakat are closed-form calculations only.
func (p ProductType) IsAmortizing() bool {
	return p == ProductMurabaha || p == ProductIjara
}

func (p ProductType) String() string {
	return string(p)
}
