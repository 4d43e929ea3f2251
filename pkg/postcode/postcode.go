// Package postcode models the result of the client-side postal address
// lookup widget and the rule for turning it into a display address.
package postcode

// Address types reported by the lookup widget.
const (
	TypeRoad = "R" // road-name address
	TypeLot  = "J" // lot-number (jibun) address
)

// Result is the structured payload returned by the postal lookup widget.
type Result struct {
	Address      string `json:"address" validate:"required"`
	AddressType  string `json:"address_type" validate:"omitempty,oneof=R J"`
	Bname        string `json:"bname"`         // legal district (dong) name
	BuildingName string `json:"building_name"` // building name, if any
}

// DisplayAddress concatenates the widget result into the address string shown
// and stored for a profile. Road-name addresses append the district and
// building name in parentheses; lot-number addresses are used as-is.
func (r Result) DisplayAddress() string {
	if r.AddressType != TypeRoad {
		return r.Address
	}

	extra := ""
	if r.Bname != "" {
		extra = r.Bname
	}
	if r.BuildingName != "" {
		if extra != "" {
			extra += ", " + r.BuildingName
		} else {
			extra = r.BuildingName
		}
	}

	if extra == "" {
		return r.Address
	}
	return r.Address + " (" + extra + ")"
}
