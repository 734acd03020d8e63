package bagua

import "fmt"

// Element is one of the five elemental categories (五行).
//
// Constants follow the generating cycle, so Generates and Controls are
// plain modular steps.
type Element uint8

const (
	Wood  Element = iota // 木
	Fire                 // 火
	Earth                // 土
	Metal                // 金
	Water                // 水
)

// NumElements is the number of elemental categories.
const NumElements = 5

var elementInfo = [NumElements]struct {
	name  string
	han   string
	trait string
	color string
}{
	Wood:  {"wood", "木", "生长、发展、有创造力", "#00ff00"},
	Fire:  {"fire", "火", "热情、光明、有感染力", "#ff4500"},
	Earth: {"earth", "土", "稳重、包容、有承载力", "#daa520"},
	Metal: {"metal", "金", "刚毅、果断、有决断力", "#ffd700"},
	Water: {"water", "水", "智慧、灵活、适应性强", "#00ffff"},
}

// String returns the English name.
func (e Element) String() string {
	if e >= NumElements {
		return fmt.Sprintf("unknown(%d)", uint8(e))
	}
	return elementInfo[e].name
}

// Han returns the Chinese character for e.
func (e Element) Han() string {
	if e >= NumElements {
		return ""
	}
	return elementInfo[e].han
}

// Characteristic returns the trait phrase shown in sequence summaries.
// Unknown elements read as balanced.
func (e Element) Characteristic() string {
	if e >= NumElements {
		return "平衡和谐"
	}
	return elementInfo[e].trait
}

// Color returns the hex display color used for e.
func (e Element) Color() string {
	if e >= NumElements {
		return "#ffffff"
	}
	return elementInfo[e].color
}

// Generates returns the element that e feeds (相生).
func (e Element) Generates() Element {
	return (e + 1) % NumElements
}

// Controls returns the element that e restrains (相克).
func (e Element) Controls() Element {
	return (e + 2) % NumElements
}

// ParseElement accepts an English name or a Chinese character.
func ParseElement(s string) (Element, bool) {
	for e := Element(0); e < NumElements; e++ {
		if s == elementInfo[e].name || s == elementInfo[e].han {
			return e, true
		}
	}
	return 0, false
}
