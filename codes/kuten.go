package codes

import (
	"strconv"
	"strings"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// Kuten is a plane, row and column coordinate in a JIS character set
// standard.
type Kuten struct {
	Plane uint8
	Ku    uint8
	Ten   uint8
}

// ParseKuten decodes a "plane-ku-ten" triple such as "1-16-1".
func ParseKuten(s string) (Kuten, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Kuten{}, kderr.Malformed("kuten "+strconv.Quote(s)+" is not a plane-ku-ten triple", kderr.Pos{})
	}
	var fields [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Kuten{}, kderr.NotANumber(part, kderr.Pos{})
		}
		fields[i] = uint8(v)
	}
	return Kuten{Plane: fields[0], Ku: fields[1], Ten: fields[2]}, nil
}

// String renders the coordinate in its source "plane-ku-ten" form.
func (k Kuten) String() string {
	return strconv.Itoa(int(k.Plane)) + "-" + strconv.Itoa(int(k.Ku)) + "-" + strconv.Itoa(int(k.Ten))
}
