package session

// Route names used by the terminal navigator.
const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Decision is the outcome of a guard: either the navigation is allowed, or
// it is denied with the route to redirect to.
type Decision struct {
	Allow    bool
	Redirect string
}

// RequireAuth permits navigation to protected routes only while
// authenticated; otherwise it redirects to the login route.
func RequireAuth(s *State) Decision {
	if s.Authenticated() {
		return Decision{Allow: true}
	}
	return Decision{Redirect: RouteLogin}
}

// RequireAnon permits navigation to the login route only while
// unauthenticated; otherwise it redirects to the default landing route.
func RequireAnon(s *State) Decision {
	if !s.Authenticated() {
		return Decision{Allow: true}
	}
	return Decision{Redirect: RouteDashboard}
}
