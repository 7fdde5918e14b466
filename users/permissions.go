package users

import "strings"

// Permissions is the set of permission scopes granted to a user.
//
// A scope is a dot-separated path such as "crm.customers.read". Two wildcard
// forms are recognised: the bare "*" grants everything, and a "prefix.*"
// entry grants every scope under that prefix ("crm.*" allows
// "crm.customers.read" but not "accounting.transactions.read").
type Permissions []string

// Allows reports whether the set grants the given scope.
func (p Permissions) Allows(scope string) bool {
	if scope == "" {
		return false
	}
	for _, granted := range p {
		if scopeMatches(granted, scope) {
			return true
		}
	}
	return false
}

func scopeMatches(granted, scope string) bool {
	if granted == "*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(granted, ".*"); ok {
		return strings.HasPrefix(scope, prefix+".")
	}
	return granted == scope
}
