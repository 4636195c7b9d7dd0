package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/slavinskiyboris/stellar-burgers/internal/api"
	"github.com/slavinskiyboris/stellar-burgers/internal/orderlog"
)

// Publisher is satisfied by *kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte, headers ...kafkago.Header) error
}

// History reads the order log written by the orderlog worker.
type History interface {
	BySession(ctx context.Context, sessionID string, limit int) ([]orderlog.Entry, error)
}

type Handler struct {
	Sessions *Registry
	Producer Publisher
	History  History
	Service  string
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/ingredients", h.listIngredients)
	r.Get("/ingredients/{id}", h.getIngredient)

	r.Get("/constructor", h.getConstructor)
	r.Post("/constructor/items", h.addItem)
	r.Delete("/constructor/items/{instanceID}", h.removeItem)
	r.Post("/constructor/move", h.moveItem)
	r.Delete("/constructor", h.clearConstructor)

	r.Post("/orders", h.submitOrder)
	r.Get("/orders/placed", h.placedOrder)
	r.Delete("/orders/placed", h.resetPlaced)
	r.Get("/feed", h.feed)
	r.Get("/feed/{number}", h.feedOrder)
	r.Get("/profile/orders", h.personalOrders)
	r.Get("/profile/orders/{number}", h.personalOrder)
	r.Get("/history", h.history)

	r.Post("/auth/register", h.register)
	r.Post("/auth/login", h.login)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/user", h.user)
	r.Patch("/auth/user", h.updateUser)
	r.Post("/auth/forgot-password", h.forgotPassword)
	r.Post("/auth/reset-password", h.resetPassword)
	r.Get("/auth/check", h.checkAuth)

	r.Get("/state", h.state)
}

// remoteStatus maps a failed remote call to a response code. Client errors
// reported by the API pass through, anything else is a bad gateway.
func remoteStatus(err error) int {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		return apiErr.Status
	}
	return http.StatusBadGateway
}

func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).store.State())
}
