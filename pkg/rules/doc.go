// Package rules holds the declarative extension map and flattens it into an
// index the resolver can walk.
//
// # Extension map
//
// Each extension declares where it applies:
//
//	extensions:
//	  app.admin.extension.audit:
//	    global: true
//	    priority: 10
//	  app.admin.extension.publish:
//	    implements: [App\Model\PublishableInterface]
//	    excludes: [app.admin.legacy_post]
//	    priority: 5
//	  app.admin.extension.seo:
//	    admins: [app.admin.page]
//	    uses: [App\Traits\Sluggable]
//
// Subject collections may be written as lists or as maps keyed by subject;
// map values are ignored.
//
// # Flattening
//
// Flatten inverts the map: for each rule kind, every subject points to the
// extensions declaring it, each with the extension's single priority.
// `global: true` becomes a global subject named after the extension itself.
// Extensions are visited in lexicographic id order so the index does not
// depend on map iteration.
//
// Excludes stay a kind of their own. The resolver never matches them; it
// subtracts them from the configured extensions of an admin at the end.
package rules
