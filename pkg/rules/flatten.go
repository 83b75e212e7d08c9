package rules

import (
	"sort"

	"github.com/arthur-debert/adminext/pkg/types"
	"github.com/samber/lo"
)

// Flatten turns per-extension options into an index keyed by rule kind and
// subject. Every declared subject appears once per owning extension.
func Flatten(config map[string]ExtensionOptions) *Index {
	ix := newIndex()

	ids := make([]string, 0, len(config))
	for id := range config {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		opts := config[id]
		entry := Entry{Extension: id, Priority: opts.Priority}

		for _, kind := range types.AllKinds {
			if kind == types.KindGlobal {
				if opts.Global {
					ix.add(kind, id, entry)
				}
				continue
			}
			for _, subject := range lo.Uniq(opts.Subjects(kind)) {
				ix.add(kind, subject, entry)
			}
		}
	}

	return ix
}
