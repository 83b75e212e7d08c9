package resolver

import (
	"strconv"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/zeebo/xxh3"
)

// Source names the channel an assignment came through
type Source string

const (
	SourceTarget Source = "target"
	SourceTag    Source = "tag"
	SourceConfig Source = "config"
)

// Assignment wires one extension to one admin
type Assignment struct {
	Admin     string `yaml:"-" toml:"-"`
	Extension string `yaml:"extension" toml:"extension"`
	Priority  int    `yaml:"priority" toml:"priority"`
	Source    Source `yaml:"source" toml:"source"`
}

// AdminPlan is the resolved extension list of one service
type AdminPlan struct {
	ID    string `yaml:"id" toml:"id"`
	Class string `yaml:"class,omitempty" toml:"class,omitempty"`

	// ModelClasses are the model classes that resolved to known types
	ModelClasses []string     `yaml:"model_classes,omitempty" toml:"model_classes,omitempty"`
	Assignments  []Assignment `yaml:"extensions" toml:"extensions"`
}

// Extensions returns the extension ids in final order
func (a *AdminPlan) Extensions() []string {
	out := make([]string, len(a.Assignments))
	for i, as := range a.Assignments {
		out[i] = as.Extension
	}
	return out
}

// Plan is the outcome of a resolution pass. Services appear in the order
// they were first touched: direct targets first, then admins in tag order.
type Plan struct {
	admins *orderedmap.OrderedMap[string, *AdminPlan]
}

func newPlan() *Plan {
	return &Plan{admins: orderedmap.NewOrderedMap[string, *AdminPlan]()}
}

// Admins returns the service ids of the plan in order
func (p *Plan) Admins() []string {
	return p.admins.Keys()
}

// Get returns the plan of one service
func (p *Plan) Get(id string) (*AdminPlan, bool) {
	return p.admins.Get(id)
}

// Extensions returns the ordered extension ids of admin, nil when unknown
func (p *Plan) Extensions(admin string) []string {
	a, ok := p.admins.Get(admin)
	if !ok {
		return nil
	}
	return a.Extensions()
}

// All returns every service plan in order
func (p *Plan) All() []*AdminPlan {
	out := make([]*AdminPlan, 0, p.admins.Len())
	for el := p.admins.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Len returns the number of assignments
func (p *Plan) Len() int {
	n := 0
	for el := p.admins.Front(); el != nil; el = el.Next() {
		n += len(el.Value.Assignments)
	}
	return n
}

// Digest hashes the ordered wiring of the plan. Two passes over the same
// input produce the same digest.
func (p *Plan) Digest() uint64 {
	h := xxh3.New()
	for el := p.admins.Front(); el != nil; el = el.Next() {
		_, _ = h.WriteString(el.Key)
		_, _ = h.WriteString("\x00")
		for _, a := range el.Value.Assignments {
			_, _ = h.WriteString(a.Extension)
			_, _ = h.WriteString("\x00")
			_, _ = h.WriteString(strconv.Itoa(a.Priority))
			_, _ = h.WriteString("\x00")
		}
		_, _ = h.WriteString("\n")
	}
	return h.Sum64()
}
