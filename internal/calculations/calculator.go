package calculations

import (
	"fmt"
	"time"

	"amanah-finance/internal/models"
)

// Calculate dispatches a calculation input to the product's calculator and
// wraps the typed summary in a CalculationResult. Calculators are pure and
// deterministic: identical input always yields an identical result.
func Calculate(product models.ProductType, input models.CalculationInput) (*models.CalculationResult, error) {
	var (
		summary any
		err     error
	)

	switch product {
	case models.ProductMurabaha:
		summary, err = Murabaha(input)
	case models.ProductIjara:
		summary, err = Ijara(input)
	case models.ProductSukuk:
		summary, err = Sukuk(input)
	case models.ProductZakat:
		summary, err = Zakat(input)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, product)
	}

	if err != nil {
		return nil, err
	}

	return &models.CalculationResult{
		Product:     product,
		Summary:     summary,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
