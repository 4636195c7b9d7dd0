package httpx

import (
	"net/http"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
	"github.com/slavinskiyboris/stellar-burgers/internal/store"
)

type forgotPasswordReq struct {
	Email string `json:"email"`
}

type resetPasswordReq struct {
	Password string `json:"password"`
	Token    string `json:"token"`
}

type authCheckResp struct {
	AuthChecked bool          `json:"isAuthChecked"`
	User        *burgers.User `json:"user"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req burgers.RegisterData
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	st := sessionFrom(r).store
	if err := st.Register(r.Context(), req); err != nil {
		writeError(w, remoteStatus(err), st.State().Auth.Error)
		return
	}
	writeJSON(w, http.StatusCreated, store.User(st.State()))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req burgers.LoginData
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	st := sessionFrom(r).store
	if err := st.Login(r.Context(), req); err != nil {
		writeError(w, remoteStatus(err), st.State().Auth.Error)
		return
	}
	writeJSON(w, http.StatusOK, store.User(st.State()))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	st := sessionFrom(r).store
	if err := st.Logout(r.Context()); err != nil {
		writeError(w, remoteStatus(err), st.State().Auth.Error)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) user(w http.ResponseWriter, r *http.Request) {
	u := store.User(sessionFrom(r).store.State())
	if u == nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req burgers.ProfilePatch
	if !decode(w, r, &req) {
		return
	}
	st := sessionFrom(r).store
	if store.User(st.State()) == nil {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}
	if err := st.UpdateProfile(r.Context(), req); err != nil {
		writeError(w, remoteStatus(err), st.State().Auth.Error)
		return
	}
	writeJSON(w, http.StatusOK, store.User(st.State()))
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordReq
	if !decode(w, r, &req) {
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "missing email")
		return
	}
	st := sessionFrom(r).store
	if err := st.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, remoteStatus(err), st.State().Auth.Error)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"resetRequested": true})
}

// resetPassword is only accepted after a reset code was requested in this
// session.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordReq
	if !decode(w, r, &req) {
		return
	}
	if req.Password == "" || req.Token == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	st := sessionFrom(r).store
	if !st.State().Auth.ResetRequested {
		writeError(w, http.StatusForbidden, "request a reset code first")
		return
	}
	if err := st.ResetPassword(r.Context(), req.Password, req.Token); err != nil {
		writeError(w, remoteStatus(err), st.State().Auth.Error)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	s := sessionFrom(r).store.State()
	writeJSON(w, http.StatusOK, authCheckResp{AuthChecked: store.IsAuthChecked(s), User: store.User(s)})
}
