package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/varenn/minefield-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	boards := handlers.NewBoards(a.logger, a.db, a.ws, createRand())
	auth := handlers.NewAuth(a.logger, a.db, a.cookies, a.jwt)

	a.router.HandleFunc("POST /board", boards.Create)
	a.router.HandleFunc("GET /board/{id}", boards.Fetch)
	a.router.HandleFunc("POST /board/{id}/move", boards.Move)
	a.router.HandleFunc("GET /board/{id}/render", boards.RenderText)
	a.router.HandleFunc("/board/{id}/connect", boards.ConnectWS)

	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
	a.router.HandleFunc("GET /status", auth.Status)
}
