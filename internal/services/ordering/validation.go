package ordering

import (
	"fmt"

	"pizzeria-orders/internal/errs"
	"pizzeria-orders/internal/models"
)

const maxItemsPerOrder = 20

// validateLines checks the shape of requested order lines before any
// catalog resolution happens.
func validateLines(lines []models.OrderLine) error {
	if len(lines) == 0 {
		return errs.Validation("items", "items cannot be empty")
	}
	if len(lines) > maxItemsPerOrder {
		return errs.Validation("items", fmt.Sprintf("a maximum of %d items is allowed", maxItemsPerOrder))
	}

	for i, line := range lines {
		if err := validateLine(line, i); err != nil {
			return err
		}
	}
	return nil
}

func validateLine(line models.OrderLine, index int) error {
	if !line.Kind.Valid() {
		return errs.Validation(
			fmt.Sprintf("items[%d].type", index),
			fmt.Sprintf("Invalid item type: %s. Only 'pizza' and 'beer' are supported", line.Kind),
		)
	}

	if line.ProductName == "" {
		return errs.Validation(fmt.Sprintf("items[%d].product_name", index), "product name is required")
	}

	if line.Quantity < 1 {
		return errs.Validation(fmt.Sprintf("items[%d].quantity", index), "quantity must be greater than 0")
	}

	return nil
}
