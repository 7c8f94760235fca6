package handler

import (
	"net/http"

	"github.com/greethub/greeter/internal/domain"
)

// GreetingHandler serves the fixed greeting. It holds no state, so one
// instance may serve any number of requests.
type GreetingHandler struct{}

func NewGreetingHandler() *GreetingHandler { return &GreetingHandler{} }

// Greet handles GET /
//
// @Summary  Greeting
// @Tags     greeting
// @Produce  plain
// @Success  200  {string}  string  "Hello, World!"
// @Router   / [get]
func (h *GreetingHandler) Greet(w http.ResponseWriter, r *http.Request) {
	respondText(w, http.StatusOK, domain.Greeting)
}
