package codes

import (
	"strconv"
	"strings"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// BusyPeople is a location in the Japanese for Busy People textbooks.
type BusyPeople struct {
	Volume uint8
	// Chapter is the chapter number. Zero denotes the opening section,
	// written "A" in the source.
	Chapter uint8
}

// ParseBusyPeople decodes a "volume.chapter" reference such as "3.14"
// or "2.A".
func ParseBusyPeople(s string) (BusyPeople, error) {
	volume, chapter, ok := strings.Cut(s, ".")
	if !ok {
		return BusyPeople{}, kderr.Malformed("busy people reference "+strconv.Quote(s)+" is not volume.chapter", kderr.Pos{})
	}
	v, err := strconv.ParseUint(volume, 10, 8)
	if err != nil {
		return BusyPeople{}, kderr.NotANumber(volume, kderr.Pos{})
	}
	if chapter == "A" {
		return BusyPeople{Volume: uint8(v)}, nil
	}
	c, err := strconv.ParseUint(chapter, 10, 8)
	if err != nil || c == 0 {
		return BusyPeople{}, kderr.NotANumber(chapter, kderr.Pos{})
	}
	return BusyPeople{Volume: uint8(v), Chapter: uint8(c)}, nil
}

// String renders the reference in its source form.
func (b BusyPeople) String() string {
	chapter := "A"
	if b.Chapter != 0 {
		chapter = strconv.Itoa(int(b.Chapter))
	}
	return strconv.Itoa(int(b.Volume)) + "." + chapter
}
