// Package wuyun computes the annual "five movements, six qi" profile of a year.
package wuyun

// Stems are the ten heavenly stems in cycle order.
var Stems = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches are the twelve earthly branches in cycle order.
var Branches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// Element is one of the five movements.
type Element int

// Elements in the order assigned to stem index mod 5.
const (
	Earth Element = iota
	Metal
	Water
	Wood
	Fire
)

// ElementCount is the number of defined elements.
const ElementCount = 5

var elementNames = [ElementCount]string{"Earth", "Metal", "Water", "Wood", "Fire"}
var elementNamesZH = [ElementCount]string{"土", "金", "水", "木", "火"}

// Valid reports whether e is one of the five defined elements.
func (e Element) Valid() bool {
	return e >= 0 && int(e) < ElementCount
}

func (e Element) String() string {
	if !e.Valid() {
		return "Unknown"
	}
	return elementNames[e]
}

// Chinese returns the single-character label, e.g. "土".
func (e Element) Chinese() string {
	if !e.Valid() {
		return ""
	}
	return elementNamesZH[e]
}

// Phase is the excess/deficient modifier of the annual movement.
type Phase int

const (
	Excess Phase = iota
	Deficient
)

func (p Phase) String() string {
	switch p {
	case Excess:
		return "Excess"
	case Deficient:
		return "Deficient"
	default:
		return "Unknown"
	}
}

// Chinese returns 太过 or 不及.
func (p Phase) Chinese() string {
	switch p {
	case Excess:
		return "太过"
	case Deficient:
		return "不及"
	default:
		return ""
	}
}

// Qi is one of the six seasonal qi.
type Qi int

// Six qi in the order assigned to branch index mod 6.
const (
	MinorYinSovereignFire Qi = iota
	MajorYinDampEarth
	MinorYangViceFire
	YangBrightnessDryMetal
	MajorYangColdWater
	RevertingYinWindWood
)

// QiCount is the number of seasonal qi.
const QiCount = 6

var qiNames = [QiCount]string{
	"Minor-Yin Sovereign-Fire",
	"Major-Yin Damp-Earth",
	"Minor-Yang Vice-Fire",
	"Yang-Brightness Dry-Metal",
	"Major-Yang Cold-Water",
	"Reverting-Yin Wind-Wood",
}

var qiNamesZH = [QiCount]string{"少阴君火", "太阴湿土", "少阳相火", "阳明燥金", "太阳寒水", "厥阴风木"}

// Valid reports whether q is one of the six qi.
func (q Qi) Valid() bool {
	return q >= 0 && int(q) < QiCount
}

func (q Qi) String() string {
	if !q.Valid() {
		return "Unknown"
	}
	return qiNames[q]
}

// Chinese returns the four-character label, e.g. "少阴君火".
func (q Qi) Chinese() string {
	if !q.Valid() {
		return ""
	}
	return qiNamesZH[q]
}

// Opposite returns the qi three positions later in the cycle.
func (q Qi) Opposite() Qi {
	return Qi(mod(int(q)+3, QiCount))
}

// ParseQi maps an English or Chinese label back to its Qi.
func ParseQi(label string) (Qi, bool) {
	for i := 0; i < QiCount; i++ {
		if qiNames[i] == label || qiNamesZH[i] == label {
			return Qi(i), true
		}
	}
	return 0, false
}

// Pattern is a named special-year tag.
type Pattern uint8

const (
	HeavenMatching Pattern = 1 << iota
	YearMeeting
)

// BalancedYear is displayed when no special pattern applies.
const (
	BalancedYear   = "balanced-year"
	BalancedYearZH = "平气年份"
)

func (p Pattern) String() string {
	switch p {
	case HeavenMatching:
		return "Heaven-Matching"
	case YearMeeting:
		return "Year-Meeting"
	default:
		return "Unknown"
	}
}

// Chinese returns 天符 or 岁会.
func (p Pattern) Chinese() string {
	switch p {
	case HeavenMatching:
		return "天符"
	case YearMeeting:
		return "岁会"
	default:
		return ""
	}
}

// allPatterns fixes display order.
var allPatterns = []Pattern{HeavenMatching, YearMeeting}

// These sets are a simplified illustration and are kept literal.
var (
	heavenMatchingPairs = map[string]bool{"癸巳": true, "癸亥": true, "乙卯": true, "乙酉": true}
	yearMeetingPairs    = map[string]bool{"丁卯": true, "丙午": true, "乙未": true}
)
