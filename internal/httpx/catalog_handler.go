package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
	"github.com/slavinskiyboris/stellar-burgers/internal/store"
)

type constructorResp struct {
	burgers.Cart
	Price  int            `json:"price"`
	Counts map[string]int `json:"counts"`
}

func cartResp(c burgers.Cart) constructorResp {
	return constructorResp{Cart: c, Price: c.Price(), Counts: c.Counts()}
}

type addItemReq struct {
	IngredientID string `json:"ingredient_id"`
}

type moveItemReq struct {
	Index int `json:"index"`
	Move  int `json:"move"`
}

// catalog loads the ingredients on first use and retries after a failure.
func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) ([]burgers.Ingredient, bool) {
	st := sessionFrom(r).store
	if items := store.Ingredients(st.State()); len(items) > 0 {
		return items, true
	}
	if err := st.LoadIngredients(r.Context()); err != nil {
		writeError(w, remoteStatus(err), st.State().Ingredients.Error)
		return nil, false
	}
	return store.Ingredients(st.State()), true
}

func (h *Handler) listIngredients(w http.ResponseWriter, r *http.Request) {
	items, ok := h.catalog(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getIngredient(w http.ResponseWriter, r *http.Request) {
	items, ok := h.catalog(w, r)
	if !ok {
		return
	}
	ing, ok := burgers.FindIngredient(items, chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "ingredient not found")
		return
	}
	writeJSON(w, http.StatusOK, ing)
}

func (h *Handler) getConstructor(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, cartResp(store.Constructor(sessionFrom(r).store.State())))
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemReq
	if !decode(w, r, &req) {
		return
	}
	if req.IngredientID == "" {
		writeError(w, http.StatusBadRequest, "missing ingredient_id")
		return
	}
	items, ok := h.catalog(w, r)
	if !ok {
		return
	}
	ing, ok := burgers.FindIngredient(items, req.IngredientID)
	if !ok {
		writeError(w, http.StatusNotFound, "ingredient not found")
		return
	}
	item := sessionFrom(r).store.AddIngredient(ing)
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	st := sessionFrom(r).store
	st.RemoveIngredient(chi.URLParam(r, "instanceID"))
	writeJSON(w, http.StatusOK, cartResp(store.Constructor(st.State())))
}

func (h *Handler) moveItem(w http.ResponseWriter, r *http.Request) {
	var req moveItemReq
	if !decode(w, r, &req) {
		return
	}
	st := sessionFrom(r).store
	st.MoveIngredient(req.Index, req.Move)
	writeJSON(w, http.StatusOK, cartResp(store.Constructor(st.State())))
}

func (h *Handler) clearConstructor(w http.ResponseWriter, r *http.Request) {
	sessionFrom(r).store.ClearConstructor()
	w.WriteHeader(http.StatusNoContent)
}
