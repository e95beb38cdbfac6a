package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RoleName string `json:"roleName"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	role, err := a.store.CreateRole(r.Context(), req.RoleName)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, role)
}

func (a *API) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := a.store.ListRoles(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, roles)
}

func (a *API) handleListUsersByRole(w http.ResponseWriter, r *http.Request) {
	roleName := chi.URLParam(r, "roleName")

	users, err := a.store.ListUsers(r.Context(), roleName)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserDTOs(users))
}
