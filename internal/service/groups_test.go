package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tripsplit/internal/fault"
	"tripsplit/internal/models"
	"tripsplit/internal/storage"
)

func registerUser(t *testing.T, store storage.Store, email string) *models.User {
	t.Helper()
	user, err := NewDirectory(store).Register(context.Background(), email, "password1")
	require.NoError(t, err)
	return user
}

func TestCreateGroup_AddsCreator(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	svc := NewGroupService(store)
	alice := registerUser(t, store, "alice@x.com")

	group, err := svc.CreateGroup(context.Background(), alice, "Goa Trip", []string{"Bob", "Charlie"})
	req.NoError(err)
	req.NotEmpty(group.ID)
	req.NotZero(group.CreatedAt)
	req.Equal("alice@x.com", group.CreatorEmail)
	req.ElementsMatch([]string{"Bob", "Charlie", "alice@x.com"}, group.Members)
}

func TestCreateGroup_CreatorAlreadyListed(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	svc := NewGroupService(store)
	alice := registerUser(t, store, "alice@x.com")

	group, err := svc.CreateGroup(context.Background(), alice, "Goa Trip", []string{"Bob", "alice@x.com", "Bob"})
	req.NoError(err)
	// members stay a set: no duplicate creator, no duplicate Bob
	req.ElementsMatch([]string{"Bob", "alice@x.com"}, group.Members)
}

func TestCreateGroup_Validation(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	svc := NewGroupService(store)
	alice := registerUser(t, store, "alice@x.com")
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, alice, "Go", []string{"Bob"})
	req.Error(err)
	req.Equal(fault.BadRequest, fault.KindOf(err))

	_, err = svc.CreateGroup(ctx, alice, "Goa Trip", nil)
	req.Error(err)
	req.Equal(fault.BadRequest, fault.KindOf(err))
}

func TestListMyGroups(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	svc := NewGroupService(store)
	alice := registerUser(t, store, "alice@x.com")
	eve := registerUser(t, store, "eve@x.com")
	ctx := context.Background()

	_, err := svc.CreateGroup(ctx, alice, "Goa Trip", []string{"Bob"})
	req.NoError(err)
	_, err = svc.CreateGroup(ctx, eve, "Eve Trip", []string{"Mallory"})
	req.NoError(err)

	groups, err := svc.ListMyGroups(ctx, alice)
	req.NoError(err)
	req.Len(groups, 1)
	req.Equal("Goa Trip", groups[0].Name)
}

func TestGetGroupDetails_Authorization(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	svc := NewGroupService(store)
	alice := registerUser(t, store, "alice@x.com")
	// eve is a group member but not the creator
	eve := registerUser(t, store, "eve@x.com")
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, alice, "Goa Trip", []string{"Bob", "eve@x.com"})
	req.NoError(err)

	t.Run("creator can view", func(t *testing.T) {
		got, err := svc.GetGroupDetails(ctx, group.ID, alice)
		req.NoError(err)
		req.Equal(group.ID, got.ID)
	})

	t.Run("non-creator member is forbidden", func(t *testing.T) {
		_, err := svc.GetGroupDetails(ctx, group.ID, eve)
		req.Error(err)
		req.Equal(fault.Forbidden, fault.KindOf(err))
	})

	t.Run("unknown group is not found", func(t *testing.T) {
		_, err := svc.GetGroupDetails(ctx, "no-such-id", eve)
		req.Error(err)
		req.Equal(fault.NotFound, fault.KindOf(err))
	})
}

func TestAddExpense(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	svc := NewGroupService(store)
	alice := registerUser(t, store, "alice@x.com")
	eve := registerUser(t, store, "eve@x.com")
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, alice, "Goa Trip", []string{"Bob", "Charlie"})
	req.NoError(err)

	input := ExpenseInput{
		Description:  "Lunch",
		Amount:       30,
		Payer:        "Bob",
		Participants: []string{"Bob", "Charlie"},
	}

	t.Run("valid expense", func(t *testing.T) {
		expense, err := svc.AddExpense(ctx, group.ID, input, alice)
		req.NoError(err)
		req.NotEmpty(expense.ID)
		req.Equal(group.ID, expense.GroupID)
		req.True(group.HasMember(expense.Payer))
		for _, p := range expense.Participants {
			req.True(group.HasMember(p))
		}
	})

	t.Run("unknown group", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, "no-such-id", input, alice)
		req.Error(err)
		req.Equal(fault.NotFound, fault.KindOf(err))
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, group.ID, input, eve)
		req.Error(err)
		req.Equal(fault.Forbidden, fault.KindOf(err))
	})

	t.Run("payer outside group", func(t *testing.T) {
		bad := input
		bad.Payer = "Dave"
		_, err := svc.AddExpense(ctx, group.ID, bad, alice)
		req.Error(err)
		req.Equal(fault.BadRequest, fault.KindOf(err))
	})

	t.Run("participant outside group", func(t *testing.T) {
		bad := input
		bad.Participants = []string{"Bob", "Dave"}
		_, err := svc.AddExpense(ctx, group.ID, bad, alice)
		req.Error(err)
		req.Equal(fault.BadRequest, fault.KindOf(err))
	})

	t.Run("rejected expenses do not mutate state", func(t *testing.T) {
		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		req.NoError(err)
		req.Len(expenses, 1) // only the one valid expense above
	})
}

func TestListExpenses(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t)
	svc := NewGroupService(store)
	alice := registerUser(t, store, "alice@x.com")
	eve := registerUser(t, store, "eve@x.com")
	ctx := context.Background()

	group, err := svc.CreateGroup(ctx, alice, "Goa Trip", []string{"Bob", "Charlie"})
	req.NoError(err)

	// Older and newer expenses inserted out of order; timestamps set
	// directly in the store so ordering does not depend on the clock.
	req.NoError(store.CreateExpense(ctx, &models.Expense{
		GroupID:      group.ID,
		Description:  "Dinner",
		Amount:       50,
		Payer:        "Charlie",
		Participants: []string{"Bob", "Charlie"},
		CreatedAt:    2000,
	}))
	req.NoError(store.CreateExpense(ctx, &models.Expense{
		GroupID:      group.ID,
		Description:  "Lunch",
		Amount:       30,
		Payer:        "Bob",
		Participants: []string{"Bob"},
		CreatedAt:    1000,
	}))

	t.Run("newest first for the creator", func(t *testing.T) {
		expenses, err := svc.ListExpenses(ctx, group.ID, alice)
		req.NoError(err)
		req.Len(expenses, 2)
		req.Equal("Dinner", expenses[0].Description)
		req.Equal("Lunch", expenses[1].Description)
	})

	t.Run("non-creator is forbidden", func(t *testing.T) {
		_, err := svc.ListExpenses(ctx, group.ID, eve)
		req.Error(err)
		req.Equal(fault.Forbidden, fault.KindOf(err))
	})
}
