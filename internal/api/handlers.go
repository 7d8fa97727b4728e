package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"tripsplit/internal/fault"
	"tripsplit/internal/middleware"
	"tripsplit/internal/models"
	"tripsplit/internal/service"
)

// registeredUser is the public view of a user returned on registration.
type registeredUser struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// tokenResponse is the body of a successful POST /token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// handleRegister creates a new user account.
// Form fields follow the OAuth2 password flow: username (used as the
// email) and password.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, fault.Wrap(fault.BadRequest, "invalid form body", err))
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	if err := validate.Var(username, "required,email"); err != nil {
		writeError(w, fault.New(fault.BadRequest, "username must be a valid email address"))
		return
	}

	user, err := s.directory.Register(r.Context(), username, password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, registeredUser{
		Email:    user.Email,
		FullName: user.FullName,
	})
}

// handleToken authenticates a user and returns a bearer token.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, fault.Wrap(fault.BadRequest, "invalid form body", err))
		return
	}

	user, err := s.directory.Authenticate(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		writeError(w, err)
		return
	}

	token, err := s.jwt.Issue(user.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// handleCreateGroup creates a new trip group owned by the caller.
func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	group, err := s.groups.CreateGroup(r.Context(), middleware.CurrentUser(r.Context()), req.Name, req.Members)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

// handleListGroups returns all groups created by the caller.
func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.groups.ListMyGroups(r.Context(), middleware.CurrentUser(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if groups == nil {
		groups = []*models.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

// handleGetGroup returns a single group's details, creator only.
func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := s.groups.GetGroupDetails(r.Context(), chi.URLParam(r, "groupID"), middleware.CurrentUser(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, group)
}

// handleAddExpense records a new expense in a group, creator only.
func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	expense, err := s.groups.AddExpense(r.Context(), chi.URLParam(r, "groupID"), service.ExpenseInput{
		Description:  req.Description,
		Amount:       req.Amount,
		Payer:        req.Payer,
		Participants: req.Participants,
	}, middleware.CurrentUser(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

// handleListExpenses returns a group's expenses, newest first, creator only.
func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.groups.ListExpenses(r.Context(), chi.URLParam(r, "groupID"), middleware.CurrentUser(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	writeJSON(w, http.StatusOK, expenses)
}

// handleHealthz is a liveness probe.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
