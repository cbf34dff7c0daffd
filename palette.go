package img2svg

import (
	"math"
	"strconv"
	"strings"
)

// StyleRule binds a palette class to the CSS color its rectangles are
// filled with.
type StyleRule struct {
	Class int
	Color ColorKey
	CSS   string
}

// Selector returns the CSS class selector of the rule, e.g. ".c3".
func (r StyleRule) Selector() string {
	return "." + ClassName(r.Class)
}

// Declaration renders the rule as a single CSS statement.
func (r StyleRule) Declaration() string {
	return r.Selector() + "{fill:" + r.CSS + "}"
}

// Palette assigns every distinct ColorKey a dense class identifier in the
// order the key is first interned. A Palette belongs to one conversion and
// is not safe for concurrent mutation.
type Palette struct {
	entries *orderedMap[ColorKey, StyleRule]
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{entries: newOrderedMap[ColorKey, StyleRule]()}
}

// Intern returns the class of k, allocating the next identifier and its
// style rule the first time k is seen.
func (p *Palette) Intern(k ColorKey) int {
	id, _ := p.entries.insert(k, func(i int) StyleRule {
		return StyleRule{Class: i, Color: k, CSS: CSSColor(k)}
	})
	return id
}

// Lookup returns the class of k without interning it.
func (p *Palette) Lookup(k ColorKey) (int, bool) {
	return p.entries.get(k)
}

// Len is the number of distinct colors interned so far.
func (p *Palette) Len() int {
	return p.entries.len()
}

// Colors returns the interned keys in class order.
func (p *Palette) Colors() []ColorKey {
	return append([]ColorKey(nil), p.entries.keys...)
}

// Rules returns the style table in class order.
func (p *Palette) Rules() []StyleRule {
	return append([]StyleRule(nil), p.entries.values...)
}

// ClassName returns the CSS class used for palette identifier id.
func ClassName(id int) string {
	return "c" + strconv.Itoa(id)
}

// CSSColor renders k as a CSS color. Opaque colors use rgb(); anything
// else uses rgba() with the alpha rounded to three decimals, so 128
// renders as 0.502.
func CSSColor(k ColorKey) string {
	var sb strings.Builder
	if k.A == 255 {
		sb.WriteString("rgb(")
	} else {
		sb.WriteString("rgba(")
	}
	sb.WriteString(strconv.Itoa(int(k.R)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(k.G)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(int(k.B)))
	if k.A != 255 {
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(alphaFraction(k.A), 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// alphaFraction is round(a/255 * 1000) / 1000.
func alphaFraction(a uint8) float64 {
	return math.Round(float64(a)/255*1000) / 1000
}
