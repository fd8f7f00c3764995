package service

import "fmt"

// Events are keyed by the acting user (falling back to the product for
// catalog events) so a consumer sees one entity's activity in order.
func eventKey(event map[string]any) string {
	if v, ok := event["userID"]; ok {
		return fmt.Sprint(v)
	}
	return fmt.Sprint(event["productID"])
}
