package payment

import (
	"fmt"
	"strings"
)

type Method struct {
	Name string
}

func (m Method) Code() string {
	return m.Name
}

func (m Method) Label() string {
	switch m.Name {
	case "upi":
		return "UPI"
	case "card":
		return "Card"
	case "cod":
		return "Cash on Delivery"
	}
	parts := strings.Split(m.Name, "-")
	for i := range parts {
		if len(parts[i]) > 0 {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, " ")
}

type Enum struct {
	UPI  Method
	Card Method
	COD  Method
}

var Methods = Enum{
	UPI:  Method{Name: "upi"},
	Card: Method{Name: "card"},
	COD:  Method{Name: "cod"},
}

var All = []Method{
	Methods.UPI,
	Methods.Card,
	Methods.COD,
}

// Parse returns the payment method matching code.
func Parse(code string) (Method, error) {
	for _, m := range All {
		if m.Name == code {
			return m, nil
		}
	}
	return Method{}, fmt.Errorf("unknown payment method %q", code)
}

func IsValid(code string) bool {
	_, err := Parse(code)
	return err == nil
}
