package constants

// Static route constants
const (
	PublicRoute   = "/"
	APIRoute      = "/api"
	AdminAPIRoute = "/api/v1/admin"
)
