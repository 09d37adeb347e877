package studysdk

// DefaultLoginPath is where denied navigations are redirected when the Gate
// is not configured with anything else.
const DefaultLoginPath = "/login"

// Decision is the outcome of a role check.
type Decision struct {
	// Allowed reports whether the identity may enter the gated area.
	Allowed bool

	// RedirectTo is the navigation target when denied, normally the login
	// entry point. Empty when allowed.
	RedirectTo string
}

// Gate evaluates role-based access for gated areas (dashboards, admin
// surfaces). Decisions are computed on every call; nothing is cached, so a
// refreshed or cleared identity takes effect on the next navigation.
type Gate struct {
	// LoginPath overrides the redirect target for denied checks.
	LoginPath string
}

// Authorize checks the identity's role against the allowed set. A nil or
// unusable identity is always denied.
func (g Gate) Authorize(id *Identity, allowed ...Role) Decision {
	login := g.LoginPath
	if login == "" {
		login = DefaultLoginPath
	}

	if !id.Usable() {
		return Decision{Allowed: false, RedirectTo: login}
	}

	for _, role := range allowed {
		if id.Role == role {
			return Decision{Allowed: true}
		}
	}

	return Decision{Allowed: false, RedirectTo: login}
}
