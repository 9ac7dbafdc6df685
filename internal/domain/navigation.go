package domain

type Route string

const (
	RouteNone        Route = ""
	RouteLogin       Route = "login"
	RouteHome        Route = "home"
	RouteServiceList Route = "services"
	RouteMyBookings  Route = "my-bookings"
)

// NavigationIntent tells the surface where to send the user next. It knows
// routes only by name; rendering is entirely up to the caller.
type NavigationIntent struct {
	Route Route
	// Redirect is the originating route to return to after login.
	Redirect string
}

func NavigateNone() NavigationIntent {
	return NavigationIntent{Route: RouteNone}
}

func NavigateLogin(redirect string) NavigationIntent {
	return NavigationIntent{Route: RouteLogin, Redirect: redirect}
}

func NavigateHome() NavigationIntent {
	return NavigationIntent{Route: RouteHome}
}

func NavigateServiceList() NavigationIntent {
	return NavigationIntent{Route: RouteServiceList}
}

func NavigateMyBookings() NavigationIntent {
	return NavigationIntent{Route: RouteMyBookings}
}

func (n NavigationIntent) None() bool {
	return n.Route == RouteNone
}
