package service

import (
	"context"
	"fmt"
	"log/slog"

	"tripsplit/internal/fault"
	"tripsplit/internal/models"
	"tripsplit/internal/storage"
)

// minGroupNameLength is the minimum accepted group name length.
const minGroupNameLength = 3

// GroupService implements group creation, creator-scoped retrieval and
// expense recording. Visibility and mutation of a group's data are
// restricted to its creator; being listed as a member grants nothing.
type GroupService struct {
	store storage.Store
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

// ExpenseInput carries the caller-supplied fields of a new expense.
type ExpenseInput struct {
	Description  string
	Amount       float64
	Payer        string
	Participants []string
}

// CreateGroup creates a new trip group owned by creator. The creator's
// display name is always part of the member set, whether or not the
// caller listed it.
func (s *GroupService) CreateGroup(ctx context.Context, creator *models.User, name string, members []string) (*models.Group, error) {
	if len(name) < minGroupNameLength {
		return nil, fault.Errorf(fault.BadRequest, "group name must be at least %d characters", minGroupNameLength)
	}
	if len(members) == 0 {
		return nil, fault.New(fault.BadRequest, "group must have at least one member")
	}

	group := &models.Group{
		Name:         name,
		Members:      dedupe(append(members, creator.FullName)),
		CreatorEmail: creator.Email,
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	slog.Info("Group created",
		"group_id", group.ID,
		"name", group.Name,
		"creator", group.CreatorEmail,
		"members_count", len(group.Members),
	)
	return group, nil
}

// ListMyGroups returns all groups created by the given user.
// Order is not guaranteed.
func (s *GroupService) ListMyGroups(ctx context.Context, user *models.User) ([]*models.Group, error) {
	groups, err := s.store.ListGroupsByCreator(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// GetGroupDetails retrieves a single group. Only the creator may view
// it; members who are not the creator are Forbidden.
func (s *GroupService) GetGroupDetails(ctx context.Context, groupID string, user *models.User) (*models.Group, error) {
	return s.authorizedGroup(ctx, groupID, user)
}

// AddExpense records a new expense in a group. Checks run in order:
// group existence, creator authorization, payer membership, then
// participant membership. Nothing is persisted unless every check
// passes.
func (s *GroupService) AddExpense(ctx context.Context, groupID string, in ExpenseInput, user *models.User) (*models.Expense, error) {
	group, err := s.authorizedGroup(ctx, groupID, user)
	if err != nil {
		return nil, err
	}

	if !group.HasMember(in.Payer) {
		return nil, fault.Errorf(fault.BadRequest, "payer %q is not a member of this group", in.Payer)
	}
	for _, participant := range in.Participants {
		if !group.HasMember(participant) {
			return nil, fault.Errorf(fault.BadRequest, "participant %q is not a member of this group", participant)
		}
	}

	expense := &models.Expense{
		GroupID:      group.ID,
		Description:  in.Description,
		Amount:       in.Amount,
		Payer:        in.Payer,
		Participants: dedupe(in.Participants),
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"group_id", group.ID,
		"amount", expense.Amount,
		"payer", expense.Payer,
	)
	return expense, nil
}

// ListExpenses returns all expenses for a group, newest first. Same
// creator-only authorization as GetGroupDetails.
func (s *GroupService) ListExpenses(ctx context.Context, groupID string, user *models.User) ([]*models.Expense, error) {
	group, err := s.authorizedGroup(ctx, groupID, user)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// authorizedGroup loads a group and enforces creator-only access.
// Existence is checked before authorization, so strangers probing a
// missing ID see NotFound rather than Forbidden.
func (s *GroupService) authorizedGroup(ctx context.Context, groupID string, user *models.User) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group == nil {
		return nil, fault.New(fault.NotFound, "group not found")
	}
	if group.CreatorEmail != user.Email {
		return nil, fault.New(fault.Forbidden, "you do not have permission to access this group")
	}
	return group, nil
}

// dedupe removes duplicate names, preserving first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
