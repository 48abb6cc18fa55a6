package domain

import "fmt"

// Bulk admin actions are closed sets per entity type. The zero value of each
// action type is invalid and rejected by the API client.

type ProductAction struct{ name string }

var (
	ProductActivate   = ProductAction{"activate"}
	ProductDeactivate = ProductAction{"deactivate"}
	ProductDelete     = ProductAction{"delete"}
)

func (a ProductAction) String() string { return a.name }
func (a ProductAction) IsZero() bool   { return a.name == "" }

func ParseProductAction(s string) (ProductAction, error) {
	for _, a := range []ProductAction{ProductActivate, ProductDeactivate, ProductDelete} {
		if a.name == s {
			return a, nil
		}
	}
	return ProductAction{}, fmt.Errorf("product action[%s] is not valid", s)
}

type OrderAction struct{ name string }

var (
	OrderCancel  = OrderAction{"cancel"}
	OrderShip    = OrderAction{"ship"}
	OrderDeliver = OrderAction{"deliver"}
)

func (a OrderAction) String() string { return a.name }
func (a OrderAction) IsZero() bool   { return a.name == "" }

func ParseOrderAction(s string) (OrderAction, error) {
	for _, a := range []OrderAction{OrderCancel, OrderShip, OrderDeliver} {
		if a.name == s {
			return a, nil
		}
	}
	return OrderAction{}, fmt.Errorf("order action[%s] is not valid", s)
}

type UserAction struct{ name string }

var (
	UserActivate   = UserAction{"activate"}
	UserDeactivate = UserAction{"deactivate"}
	UserDelete     = UserAction{"delete"}
)

func (a UserAction) String() string { return a.name }
func (a UserAction) IsZero() bool   { return a.name == "" }

func ParseUserAction(s string) (UserAction, error) {
	for _, a := range []UserAction{UserActivate, UserDeactivate, UserDelete} {
		if a.name == s {
			return a, nil
		}
	}
	return UserAction{}, fmt.Errorf("user action[%s] is not valid", s)
}
