package api

// ResourceRoutes holds the backend paths of one resource. Item-scoped
// paths contain a single %s placeholder for the record id. Keeping every
// path and upload field name in this table means a backend rename is a
// one-line change here instead of a hunt through the call sites.
type ResourceRoutes struct {
	List    string
	ByEmail string // list filtered by owner email, via ?email= query param
	Item    string
	Create  string
	Update  string
	Delete  string

	// ImageField is the multipart field name the backend expects for the
	// device photo on create. It differs between resources.
	ImageField string
}

// AuthRoutes holds the authentication endpoints.
type AuthRoutes struct {
	Login       string
	Register    string
	VerifyEmail string
	ResendCode  string
}

// Endpoints is the full route table of the backend API.
type Endpoints struct {
	Lost     ResourceRoutes
	Found    ResourceRoutes
	Contacts ResourceRoutes
	Users    ResourceRoutes
	Matches  ResourceRoutes
	Auth     AuthRoutes
}

// DefaultEndpoints returns the route table of the stock backend.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Lost: ResourceRoutes{
			List:       "/api/devices/lost/list/",
			ByEmail:    "/api/devices/lost/by-email/",
			Item:       "/api/devices/lost/%s/",
			Create:     "/api/devices/lost/",
			Update:     "/api/devices/lost/%s/",
			Delete:     "/api/devices/lost/%s/delete/",
			ImageField: "deviceimage",
		},
		Found: ResourceRoutes{
			List:       "/api/devices/found/list/",
			ByEmail:    "/api/devices/found/by-email/",
			Item:       "/api/devices/found/%s/",
			Create:     "/api/devices/found/",
			Update:     "/api/devices/found/%s/",
			Delete:     "/api/devices/found/%s/delete/",
			ImageField: "image",
		},
		Contacts: ResourceRoutes{
			List:   "/api/devices/contact/list/",
			Item:   "/api/devices/contact/%s/",
			Create: "/api/devices/contact/",
			Delete: "/api/devices/contact/%s/delete/",
		},
		Users: ResourceRoutes{
			List:   "/api/auth/users/",
			Item:   "/api/auth/users/%s/",
			Delete: "/api/auth/users/%s/delete/",
		},
		Matches: ResourceRoutes{
			List:   "/api/devices/matches/list/",
			Item:   "/api/devices/matches/%s/",
			Delete: "/api/devices/matches/%s/delete/",
		},
		Auth: AuthRoutes{
			Login:       "/api/auth/login/",
			Register:    "/api/auth/register/",
			VerifyEmail: "/api/auth/verify-email/",
			ResendCode:  "/api/auth/resend-code/",
		},
	}
}
