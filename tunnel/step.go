package tunnel

import (
	"fmt"
	"strings"

	"github.com/arcrouting/tunnelsat/action"
)

// Step is one transition of a path: node Source performs Action to reach
// node Target.
type Step struct {
	Source int
	Target int
	Action action.Action
}

// String renders a step as "source -(action)-> target", using node names
// from net.
func (s Step) String(net *Network) string {
	return fmt.Sprintf("%s -(%s)-> %s", net.NodeName(s.Source), s.Action, net.NodeName(s.Target))
}

// FormatPath renders a full path the way the teacher's printers render
// walks: each step's source and action, followed by the final node name.
func FormatPath(net *Network, path []Step) string {
	if len(path) == 0 {
		return net.NodeName(net.Initial())
	}
	var b strings.Builder
	for _, s := range path {
		fmt.Fprintf(&b, "%s -(%s)-> ", net.NodeName(s.Source), s.Action)
	}
	b.WriteString(net.NodeName(path[len(path)-1].Target))
	return b.String()
}
