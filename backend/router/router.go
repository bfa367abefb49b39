package router

import (
	"net/http"

	"fleetd/backend/app/controllers"
	"fleetd/backend/app/middleware"
)

// NewRouter wires the v2 control surface. Every route except /ping and
// /login sits behind the auth middleware; that includes GET
// /v2/responses, deliberately closing the unauthenticated gap the first
// generation of this API shipped with.
func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, agentCtrl *controllers.AgentController, cmdCtrl *controllers.CommandController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/ping", httpCtrl.Ping)
	mux.HandleFunc("/login", authCtrl.Login)

	// agent surface
	mux.Handle("/v2/checkin", mw.Require(http.HandlerFunc(agentCtrl.Checkin)))
	mux.Handle("/v2/orders", mw.Require(http.HandlerFunc(agentCtrl.FetchOrder)))

	// operator surface
	mux.Handle("/v2/commands", mw.Require(http.HandlerFunc(cmdCtrl.Enqueue)))
	mux.Handle("/v2/responses", mw.Require(http.HandlerFunc(cmdCtrl.Responses)))
	mux.Handle("/v2/computers", mw.Require(http.HandlerFunc(agentCtrl.List)))

	return mux
}
