package codes

import (
	"strconv"

	"github.com/tim-harding/kanjidic-parser/kderr"
)

// ExtremeTop is the De Roo classification of the top of a kanji. The
// numeric values are the code digits of the system.
type ExtremeTop int

const (
	// Dot group
	ExtremeTopDot ExtremeTop = iota + 3
	ExtremeTopRoofDot
	ExtremeTopDottedCliff
	ExtremeTopAltar
	ExtremeTopKanaU
	ExtremeTopLid
	ExtremeTopHorns
	// Vertical line group
	ExtremeTopSmallOnBox
	ExtremeTopSmall
	ExtremeTopVerticalLine
	ExtremeTopHandOnTheLeft
	ExtremeTopCross
	ExtremeTopCrossOnBox
	ExtremeTopKanaKa
	ExtremeTopWoman
	ExtremeTopTree
	ExtremeTopLetterH
	// Diagonal line group
	ExtremeTopKanaNo
	ExtremeTopManOnTheLeft
	ExtremeTopThousand
	ExtremeTopManOnTheTop
	ExtremeTopCow
	ExtremeTopKanaKu
	ExtremeTopHillTop
	ExtremeTopLeftArrow
	ExtremeTopRoofDiagonalLine
	ExtremeTopX
	// Horizontal line group
	ExtremeTopHorizontalLine
	ExtremeTopFence
	ExtremeTopBald
	ExtremeTopCliff
	ExtremeTopTopLeftCorner
	ExtremeTopTopRightCorner
	ExtremeTopUpsideDownCan
	ExtremeTopMouth
	ExtremeTopSun
	ExtremeTopEyeTop
)

// ExtremeBottom is the De Roo classification of the bottom of a kanji.
// The numeric values are the code digits of the system.
type ExtremeBottom int

const (
	// Dot group
	ExtremeBottomFourDots ExtremeBottom = iota + 40
	ExtremeBottomSmall
	ExtremeBottomWater
	// Left hook group
	ExtremeBottomKanaRi
	ExtremeBottomSeal
	ExtremeBottomSwordBottom
	ExtremeBottomMoon
	ExtremeBottomDotlessInch
	ExtremeBottomInch
	ExtremeBottomMouthLeftHook
	ExtremeBottomBirdBottom
	ExtremeBottomAnimal
	ExtremeBottomBowBottom
	ExtremeBottomLeftHook
	// Vertical line group
	ExtremeBottomVerticalLine
	ExtremeBottomCross
	// Right hook group
	ExtremeBottomRightHook
	ExtremeBottomLegs
	ExtremeBottomHeart
	ExtremeBottomTasseledSpearBottom
	// Diagonal line group
	ExtremeBottomKanaNo
	// Back diagonal line group
	ExtremeBottomSmallPodium
	ExtremeBottomBackKanaNo
	ExtremeBottomBig
	ExtremeBottomTree
	ExtremeBottomSmallSpoon
	ExtremeBottomGovern
	ExtremeBottomAgain
	ExtremeBottomWindyAgain
	ExtremeBottomWoman
	// Head bottom group
	ExtremeBottomHeadBottom
	// Watakushi bottom group
	ExtremeBottomWatakushiBottom
	// Horizontal line group
	ExtremeBottomHorizontalLineBottom
	ExtremeBottomStandingBottom
	ExtremeBottomDishBottom
	ExtremeBottomMountain
	ExtremeBottomMouth
	ExtremeBottomSun
	ExtremeBottomEye
)

// DeRoo identifies a kanji in Father Joseph De Roo's 2001 Kanji system
// by the shapes at its vertical extremes.
type DeRoo struct {
	Top    ExtremeTop
	Bottom ExtremeBottom
}

// ParseDeRoo decodes a De Roo code such as "3273": the top shape code
// followed by a two-digit bottom shape code.
func ParseDeRoo(s string) (DeRoo, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return DeRoo{}, kderr.NotANumber(s, kderr.Pos{})
	}
	top := ExtremeTop(v / 100)
	bottom := ExtremeBottom(v % 100)
	if top < ExtremeTopDot || top > ExtremeTopEyeTop {
		return DeRoo{}, kderr.Unrecognized("de roo top shape "+strconv.Itoa(int(top)), kderr.Pos{})
	}
	if bottom < ExtremeBottomFourDots || bottom > ExtremeBottomEye {
		return DeRoo{}, kderr.Unrecognized("de roo bottom shape "+strconv.Itoa(int(bottom)), kderr.Pos{})
	}
	return DeRoo{Top: top, Bottom: bottom}, nil
}

// String renders the code in its source form, e.g. "3273".
func (d DeRoo) String() string {
	return strconv.Itoa(int(d.Top)*100 + int(d.Bottom))
}
