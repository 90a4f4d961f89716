package kernel

// Subject names the domain concept a value object belongs to. It only shapes
// validation messages, so "menu.price" and "product.price" fail distinguishably.
type Subject string

const (
	SubjectProduct       Subject = "product"
	SubjectMenu          Subject = "menu"
	SubjectMenuProduct   Subject = "menu_product"
	SubjectMenuGroup     Subject = "menu_group"
	SubjectOrderTable    Subject = "order_table"
	SubjectOrderLineItem Subject = "order_line_item"
)

// Param returns the qualified parameter name used in error messages.
func (s Subject) Param(field string) string {
	if s == "" {
		return field
	}
	return string(s) + "." + field
}
