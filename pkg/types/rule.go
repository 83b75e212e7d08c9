package types

import "fmt"

// RuleKind identifies how an extension declares which admins it applies to
type RuleKind string

const (
	KindGlobal          RuleKind = "global"
	KindExcludes        RuleKind = "excludes"
	KindAdmins          RuleKind = "admins"
	KindImplements      RuleKind = "implements"
	KindExtends         RuleKind = "extends"
	KindInstanceof      RuleKind = "instanceof"
	KindUses            RuleKind = "uses"
	KindAdminImplements RuleKind = "admin_implements"
	KindAdminExtends    RuleKind = "admin_extends"
	KindAdminInstanceof RuleKind = "admin_instanceof"
	KindAdminUses       RuleKind = "admin_uses"
)

// AllKinds lists every rule kind in evaluation order
var AllKinds = []RuleKind{
	KindGlobal,
	KindExcludes,
	KindAdmins,
	KindImplements,
	KindExtends,
	KindInstanceof,
	KindUses,
	KindAdminImplements,
	KindAdminExtends,
	KindAdminInstanceof,
	KindAdminUses,
}

// ParseRuleKind converts a string into a RuleKind
func ParseRuleKind(s string) (RuleKind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown rule kind: %s", s)
}

// IsAdminKind reports whether the kind is evaluated against the admin's own
// type rather than the managed model type
func (k RuleKind) IsAdminKind() bool {
	switch k {
	case KindAdminImplements, KindAdminExtends, KindAdminInstanceof, KindAdminUses:
		return true
	}
	return false
}

// IsStructural reports whether the kind is resolved by id comparison in the
// resolver and never reaches the matcher
func (k RuleKind) IsStructural() bool {
	return k == KindExcludes || k == KindAdmins
}
