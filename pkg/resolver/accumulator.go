package resolver

import (
	"sort"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/samber/lo"
)

type record struct {
	Assignment
	seq int
}

type pending struct {
	plan    *AdminPlan
	records []record
}

// accumulator collects assignments from both channels. Records are only
// appended; ordering happens once, in drain.
type accumulator struct {
	services *orderedmap.OrderedMap[string, *pending]
	seq      int
}

func newAccumulator() *accumulator {
	return &accumulator{services: orderedmap.NewOrderedMap[string, *pending]()}
}

// touch registers a service so it appears in the plan even without
// assignments
func (a *accumulator) touch(id string) *AdminPlan {
	if p, ok := a.services.Get(id); ok {
		return p.plan
	}
	p := &pending{plan: &AdminPlan{ID: id}}
	a.services.Set(id, p)
	return p.plan
}

func (a *accumulator) record(admin, extension string, priority int, source Source) {
	a.touch(admin)
	p, _ := a.services.Get(admin)
	a.seq++
	p.records = append(p.records, record{
		Assignment: Assignment{Admin: admin, Extension: extension, Priority: priority, Source: source},
		seq:        a.seq,
	})
}

// drain orders every service's records by priority descending, then by
// insertion descending, and keeps the first occurrence of each extension
func (a *accumulator) drain() *Plan {
	plan := newPlan()
	for el := a.services.Front(); el != nil; el = el.Next() {
		records := el.Value.records
		sort.SliceStable(records, func(i, j int) bool {
			if records[i].Priority != records[j].Priority {
				return records[i].Priority > records[j].Priority
			}
			return records[i].seq > records[j].seq
		})
		records = lo.UniqBy(records, func(r record) string { return r.Extension })

		ap := el.Value.plan
		ap.Assignments = lo.Map(records, func(r record, _ int) Assignment { return r.Assignment })
		plan.admins.Set(el.Key, ap)
	}
	return plan
}
