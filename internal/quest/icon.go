package quest

import (
	"bytes"
	"encoding/json"
)

// Icon names the pixel icon shown on a cell.
// The zero value means "no icon chosen"; use Resolve to get the icon to display.
type Icon string

const (
	IconNone   Icon = ""
	IconShoe   Icon = "Shoe"
	IconBook   Icon = "Book"
	IconApple  Icon = "Apple"
	IconCoffee Icon = "Coffee"
	IconHeart  Icon = "Heart"
	IconStar   Icon = "Star"
	IconMedal  Icon = "Medal"
	IconSun    Icon = "Sun"
	IconGift   Icon = "Gift"
)

// DefaultIcon is shown for cells that never had an icon picked.
const DefaultIcon = IconStar

// Icons lists every selectable icon in picker order.
var Icons = []Icon{
	IconShoe, IconBook, IconApple, IconCoffee, IconHeart,
	IconStar, IconMedal, IconSun, IconGift,
}

// ParseIcon returns the icon with the given name.
func ParseIcon(name string) (Icon, bool) {
	for _, ic := range Icons {
		if string(ic) == name {
			return ic, true
		}
	}
	return IconNone, false
}

// Valid reports whether the icon is one of Icons.
func (i Icon) Valid() bool {
	_, ok := ParseIcon(string(i))
	return ok
}

// Resolve returns the icon to display. Unset or unknown icons resolve to DefaultIcon.
// Every reader of Cell.Icon goes through this so the default lives in one place.
func (i Icon) Resolve() Icon {
	if i.Valid() {
		return i
	}
	return DefaultIcon
}

// Next returns the icon after i in picker order, wrapping around.
func (i Icon) Next() Icon {
	cur := i.Resolve()
	for idx, ic := range Icons {
		if ic == cur {
			return Icons[(idx+1)%len(Icons)]
		}
	}
	return DefaultIcon
}

// Glyph returns a single-width terminal glyph for the icon.
func (i Icon) Glyph() string {
	switch i.Resolve() {
	case IconShoe:
		return "ʃ"
	case IconBook:
		return "≡"
	case IconApple:
		return "ó"
	case IconCoffee:
		return "ɕ"
	case IconHeart:
		return "♥"
	case IconMedal:
		return "◎"
	case IconSun:
		return "☼"
	case IconGift:
		return "▣"
	default:
		return "★"
	}
}

// MarshalJSON encodes IconNone as null.
func (i Icon) MarshalJSON() ([]byte, error) {
	if i == IconNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(i))
}

// UnmarshalJSON accepts null or an icon name. Unknown names are kept as-is and
// resolve to DefaultIcon when read.
func (i *Icon) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*i = IconNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*i = Icon(s)
	return nil
}
