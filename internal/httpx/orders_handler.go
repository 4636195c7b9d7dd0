package httpx

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/slavinskiyboris/stellar-burgers/internal/api"
	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
	"github.com/slavinskiyboris/stellar-burgers/internal/events"
	kafkax "github.com/slavinskiyboris/stellar-burgers/internal/kafka"
	"github.com/slavinskiyboris/stellar-burgers/internal/orderlog"
	"github.com/slavinskiyboris/stellar-burgers/internal/store"
	"go.opentelemetry.io/otel/trace"
)

const historyLimit = 50

type feedResp struct {
	Orders []burgers.Order `json:"orders"`
	store.FeedBoard
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r)
	if !s.submit.TryLock() {
		writeError(w, http.StatusConflict, "order already in progress")
		return
	}
	defer s.submit.Unlock()

	st := s.store.State()
	user := store.User(st)
	if user == nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	if store.OrderRequestInFlight(st) {
		writeError(w, http.StatusConflict, "order already in progress")
		return
	}
	o, cart, err := s.store.SubmitOrder(r.Context())
	switch {
	case errors.Is(err, store.ErrNoBun):
		writeError(w, http.StatusBadRequest, "add a bun first")
		return
	case err != nil:
		writeError(w, remoteStatus(err), s.store.State().Orders.Error)
		return
	}

	h.publishPlaced(r, s.id, user.Email, o, cart.Price())
	writeJSON(w, http.StatusCreated, o)
}

// publishPlaced announces the order to the order log. Failures are logged;
// the order is already placed remotely.
func (h *Handler) publishPlaced(r *http.Request, sid, email string, o burgers.Order, total int) {
	if h.Producer == nil {
		return
	}
	ev, err := events.NewEnvelope(events.EventOrderPlaced, h.Service, traceID(r.Context()), strconv.Itoa(o.Number),
		events.OrderPlacedPayload{
			SessionID:   sid,
			UserEmail:   email,
			OrderNumber: o.Number,
			OrderName:   o.Name,
			Ingredients: o.Ingredients,
			TotalPrice:  total,
		})
	if err != nil {
		log.Printf("order %d: build event: %v", o.Number, err)
		return
	}
	ev.RequestID = middleware.GetReqID(r.Context())
	err = h.Producer.Publish(context.WithoutCancel(r.Context()), events.PartitionKey(sid), kafkax.MustMarshal(ev),
		kafkax.EventHeaders(events.EventOrderPlaced, events.Version)...)
	if err != nil {
		log.Printf("order %d: publish: %v", o.Number, err)
	}
}

// traceID is the id of the request's span, empty when it is not traced.
func traceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}

func (h *Handler) placedOrder(w http.ResponseWriter, r *http.Request) {
	o := store.PlacedOrder(sessionFrom(r).store.State())
	if o == nil {
		writeError(w, http.StatusNotFound, "no placed order")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) resetPlaced(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).store.ResetOrderData()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	st := sessionFrom(r).store
	if err := st.LoadFeed(r.Context()); err != nil {
		writeError(w, remoteStatus(err), st.State().Orders.Error)
		return
	}
	s := st.State()
	writeJSON(w, http.StatusOK, feedResp{Orders: store.FeedOrders(s), FeedBoard: store.Board(s)})
}

func (h *Handler) personalOrders(w http.ResponseWriter, r *http.Request) {
	st := sessionFrom(r).store
	if store.User(st.State()) == nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	if err := st.LoadPersonalOrders(r.Context()); err != nil {
		writeError(w, remoteStatus(err), st.State().Orders.Error)
		return
	}
	writeJSON(w, http.StatusOK, store.PersonalOrders(st.State()))
}

func (h *Handler) feedOrder(w http.ResponseWriter, r *http.Request) {
	h.orderInfo(w, r, false)
}

func (h *Handler) personalOrder(w http.ResponseWriter, r *http.Request) {
	if store.User(sessionFrom(r).store.State()) == nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	h.orderInfo(w, r, true)
}

func (h *Handler) orderInfo(w http.ResponseWriter, r *http.Request, private bool) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number <= 0 {
		writeError(w, http.StatusBadRequest, "invalid order number")
		return
	}
	if _, ok := h.catalog(w, r); !ok {
		return
	}
	st := sessionFrom(r).store
	info, ok, err := st.OrderInfo(r.Context(), number, private)
	switch {
	case errors.Is(err, api.ErrOrderAbsent):
		writeError(w, http.StatusNotFound, "order not found")
		return
	case err != nil:
		writeError(w, remoteStatus(err), st.State().Orders.Error)
		return
	case !ok:
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "not ready"})
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	if h.History == nil {
		writeError(w, http.StatusNotFound, "history disabled")
		return
	}
	entries, err := h.History.BySession(r.Context(), sessionFrom(r).id, historyLimit)
	if err != nil {
		log.Printf("history: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if entries == nil {
		entries = []orderlog.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}
