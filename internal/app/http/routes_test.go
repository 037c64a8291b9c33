package routes

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func routeSet(r *gin.Engine) map[string]bool {
	out := map[string]bool{}
	for _, route := range r.Routes() {
		out[route.Method+" "+route.Path] = true
	}
	return out
}

func TestRegisterRoutesSurface(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)

	routes := routeSet(r)
	want := []string{
		http.MethodGet + " /health",
		http.MethodGet + " /competition/",
		http.MethodGet + " /competition/:id",
		http.MethodPost + " /auth/register",
		http.MethodPost + " /auth/login",
		http.MethodGet + " /auth/verify",
		http.MethodPost + " /auth/logout",
		http.MethodGet + " /me",
		http.MethodGet + " /guard/decision",
		http.MethodPost + " /team",
		http.MethodPut + " /team/update",
		http.MethodGet + " /registration",
		http.MethodGet + " /registration/:id",
		http.MethodPost + " /registration",
		http.MethodPut + " /registration",
		http.MethodPost + " /registration/status",
		http.MethodPost + " /registration/upload",
		http.MethodGet + " /admin/dashboard",
		http.MethodGet + " /admin/registrations",
		http.MethodGet + " /admin/registrations/:id",
		http.MethodGet + " /admin/stats",
	}

	for _, route := range want {
		if !routes[route] {
			t.Errorf("route %q is not registered", route)
		}
	}
}
