package action

import "fmt"

// Symbol is one of the two stack symbols modelling IPv4/IPv6 encapsulation.
type Symbol uint8

const (
	// Four is the IPv4 stack symbol.
	Four Symbol = 4
	// Six is the IPv6 stack symbol.
	Six Symbol = 6
)

// String renders the symbol the way node labels and dumps print it.
func (s Symbol) String() string {
	switch s {
	case Four:
		return "4"
	case Six:
		return "6"
	default:
		return fmt.Sprintf("symbol(%d)", uint8(s))
	}
}

// Kind distinguishes the three action families.
type Kind uint8

const (
	// Transmit leaves the stack unchanged; requires top = Arg.
	Transmit Kind = iota
	// Push requires top = Arg, then pushes Pushed as the new top.
	Push
	// Pop requires height >= 1, top = Arg, and the cell below = Below; removes the top.
	Pop
)

// Action is one of the ten canonical stack operations. Canonical ordering
// matches the table in the tunnel-network attribute grammar:
//
//	0 transmit(4)   1 transmit(6)
//	2 push(4,4)     3 push(6,4)     4 push(4,6)     5 push(6,6)
//	6 pop(4,4)      7 pop(4,6)      8 pop(6,4)      9 pop(6,6)
//
// For push(b,a): Arg is the required top-before (a), Pushed is the new top (b).
// For pop(b,a): Arg is the required top (b), Below is the required element
// underneath (a).
type Action struct {
	kind   Kind
	index  uint8
	arg    Symbol
	pushed Symbol // valid when kind == Push
	below  Symbol // valid when kind == Pop
}

// NumActions is the size of the closed action alphabet.
const NumActions = 10

var canonical = [NumActions]Action{
	{kind: Transmit, index: 0, arg: Four},
	{kind: Transmit, index: 1, arg: Six},
	{kind: Push, index: 2, arg: Four, pushed: Four},
	{kind: Push, index: 3, arg: Four, pushed: Six},
	{kind: Push, index: 4, arg: Six, pushed: Four},
	{kind: Push, index: 5, arg: Six, pushed: Six},
	{kind: Pop, index: 6, arg: Four, below: Four},
	{kind: Pop, index: 7, arg: Four, below: Six},
	{kind: Pop, index: 8, arg: Six, below: Four},
	{kind: Pop, index: 9, arg: Six, below: Six},
}

// Transmit4 leaves the stack unchanged; requires top = 4.
var Transmit4 = canonical[0]

// Transmit6 leaves the stack unchanged; requires top = 6.
var Transmit6 = canonical[1]

// Push44 requires top = 4, pushes 4.
var Push44 = canonical[2]

// Push64 requires top = 6, pushes 4.
var Push64 = canonical[4]

// Push46 requires top = 4, pushes 6.
var Push46 = canonical[3]

// Push66 requires top = 6, pushes 6.
var Push66 = canonical[5]

// Pop44 requires top = 4, below = 4; pops.
var Pop44 = canonical[6]

// Pop46 requires top = 4, below = 6; pops.
var Pop46 = canonical[7]

// Pop64 requires top = 6, below = 4; pops.
var Pop64 = canonical[8]

// Pop66 requires top = 6, below = 6; pops.
var Pop66 = canonical[9]

// All returns the ten canonical actions in index order.
func All() [NumActions]Action { return canonical }

// ByIndex returns the canonical action for i, or false if i is out of range.
func ByIndex(i int) (Action, bool) {
	if i < 0 || i >= NumActions {
		return Action{}, false
	}
	return canonical[i], true
}

// Index returns the canonical index 0..9 of a.
func (a Action) Index() int { return int(a.index) }

// Kind returns which of the three families a belongs to.
func (a Action) Kind() Kind { return a.kind }

// Top returns the required top-of-stack symbol before a is applied.
func (a Action) Top() Symbol { return a.arg }

// Pushed returns the symbol a push action places on top. Only meaningful
// when Kind() == Push.
func (a Action) Pushed() Symbol { return a.pushed }

// Below returns the symbol a pop action requires beneath the top. Only
// meaningful when Kind() == Pop.
func (a Action) Below() Symbol { return a.below }

// String renders a using the tunnel-network label notation (e.g. "4↑46",
// "64↓6"), matching the tokens parsed from node labels.
func (a Action) String() string {
	switch a.kind {
	case Transmit:
		return fmt.Sprintf("%s→%s", a.arg, a.arg)
	case Push:
		return fmt.Sprintf("%s↑%s%s", a.arg, a.arg, a.pushed)
	case Pop:
		return fmt.Sprintf("%s%s↓%s", a.arg, a.below, a.arg)
	default:
		return fmt.Sprintf("action(%d)", a.index)
	}
}

// Dual returns the action that exactly undoes the stack effect of a:
// transmit actions are self-dual, push(b,a) dualizes to pop(b,a), and
// pop(b,a) dualizes to push(b,a). Used by the stack-action round-trip
// property.
func (a Action) Dual() Action {
	switch a.kind {
	case Push:
		for _, c := range canonical {
			if c.kind == Pop && c.arg == a.pushed && c.below == a.arg {
				return c
			}
		}
	case Pop:
		for _, c := range canonical {
			if c.kind == Push && c.arg == a.below && c.pushed == a.arg {
				return c
			}
		}
	}
	return a
}
