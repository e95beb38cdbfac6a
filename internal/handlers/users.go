package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	user, err := a.store.CreateUser(r.Context(), req.Username, req.Email)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toUserDTO(user))
}

func (a *API) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := a.store.ListUsers(r.Context(), "")
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toUserDTOs(users))
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	if err := a.store.DeleteUser(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleAssignRole(w http.ResponseWriter, r *http.Request) {
	userID, roleID, err := pairParams(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	if err := a.store.AssignRole(r.Context(), userID, roleID); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, nil)
}

func (a *API) handleUnassignRole(w http.ResponseWriter, r *http.Request) {
	userID, roleID, err := pairParams(r)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	if err := a.store.UnassignRole(r.Context(), userID, roleID); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleListRolesOfUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uintParam(r, "userID")
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	roles, err := a.store.ListRolesOfUser(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, roles)
}

// uintParam parses a numeric path segment. A non-numeric value names no
// resource, so callers respond 404 rather than 400.
func uintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("valid " + name + " is required")
	}
	return uint(value), nil
}

func pairParams(r *http.Request) (uint, uint, error) {
	userID, err := uintParam(r, "userID")
	if err != nil {
		return 0, 0, err
	}
	roleID, err := uintParam(r, "roleID")
	if err != nil {
		return 0, 0, err
	}
	return userID, roleID, nil
}
