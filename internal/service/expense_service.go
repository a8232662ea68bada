package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/pkg/api"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	store   storage.Store
	metrics *metrics.Metrics
}

var _ api.ExpenseServiceHandler = (*ExpenseService)(nil)

// NewExpenseService creates a new ExpenseService with the given storage backend.
// m may be nil, in which case settlement sizes are not recorded.
func NewExpenseService(store storage.Store, m *metrics.Metrics) *ExpenseService {
	return &ExpenseService{store: store, metrics: m}
}

func toAPIExpense(e models.Expense) *api.Expense {
	splits := make([]*api.ExpenseSplit, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = &api.ExpenseSplit{PersonId: s.PersonID, Amount: s.Amount}
	}
	return &api.Expense{
		Id:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		PaidBy:      e.PaidBy,
		Splits:      splits,
		Category:    e.Category,
		Tag:         e.Tag,
		Intent:      e.Intent,
		CreatedAt:   e.CreatedAt,
	}
}

// buildSplits turns the request into the expense's splits: custom shares when
// given, otherwise an equal split among the selected people. Custom shares
// sent together with a selection must cover the same people.
func buildSplits(msg *api.AddExpenseRequest) ([]models.ExpenseSplit, error) {
	if len(msg.Splits) == 0 {
		if len(msg.PersonIds) == 0 {
			return nil, invalidArgument("select at least one person")
		}
		return calculator.EqualSplit(msg.Amount, msg.PersonIds), nil
	}

	splits := make([]models.ExpenseSplit, len(msg.Splits))
	for i, s := range msg.Splits {
		splits[i] = models.ExpenseSplit{PersonID: s.PersonId, Amount: s.Amount}
	}
	if err := calculator.ValidateSplits(msg.Amount, splits); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if len(msg.PersonIds) > 0 && !samePeople(msg.PersonIds, splits) {
		return nil, invalidArgument("splits must name exactly the selected people")
	}
	return splits, nil
}

// samePeople reports whether splits name exactly the people in personIDs.
// Split IDs are already known to be unique.
func samePeople(personIDs []string, splits []models.ExpenseSplit) bool {
	selected := make(map[string]bool, len(personIDs))
	for _, id := range personIDs {
		selected[id] = true
	}
	if len(selected) != len(splits) {
		return false
	}
	for _, s := range splits {
		if !selected[s.PersonID] {
			return false
		}
	}
	return true
}

// AddExpense validates and records an expense.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	msg := req.Msg
	slog.Info("AddExpense request received",
		"user_id", userID,
		"amount", msg.Amount,
		"paid_by", msg.PaidBy,
		"people_count", len(msg.PersonIds),
		"custom_splits", len(msg.Splits) > 0,
	)

	description := strings.TrimSpace(msg.Description)
	if description == "" {
		return nil, invalidArgument("description required")
	}
	if err := calculator.ValidateAmount(msg.Amount); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if msg.PaidBy == "" {
		return nil, invalidArgument("paid_by required")
	}

	category := msg.Category
	if category == "" {
		category = calculator.DefaultCategory
	}
	if !calculator.IsCategory(category) {
		return nil, invalidArgument("unknown category %q", category)
	}

	splits, err := buildSplits(msg)
	if err != nil {
		slog.Warn("AddExpense split validation failed", "error", err)
		return nil, err
	}

	// The engine tolerates unknown IDs; the input layer does not.
	people, err := s.store.ListPeople(ctx, userID)
	if err != nil {
		slog.Error("AddExpense failed to list people", "user_id", userID, "error", err)
		return nil, storeError(err)
	}
	known := make(map[string]bool, len(people))
	for _, p := range people {
		known[p.ID] = true
	}
	if !known[msg.PaidBy] {
		return nil, invalidArgument("paid_by %q is not a person in this ledger", msg.PaidBy)
	}
	for _, split := range splits {
		if !known[split.PersonID] {
			return nil, invalidArgument("person %q is not in this ledger", split.PersonID)
		}
	}

	expense := &models.Expense{
		OwnerID:     userID,
		Description: description,
		Amount:      msg.Amount,
		PaidBy:      msg.PaidBy,
		Splits:      splits,
		Category:    category,
		Tag:         strings.TrimSpace(msg.Tag),
		Intent:      strings.TrimSpace(msg.Intent),
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense added", "expense_id", expense.ID, "splits_count", len(splits))

	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(*expense)}), nil
}

// DeleteExpense removes an expense from the caller's ledger.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("DeleteExpense request received", "user_id", userID, "expense_id", req.Msg.ExpenseId)

	if req.Msg.ExpenseId == "" {
		return nil, invalidArgument("expense_id required")
	}

	if err := s.store.DeleteExpense(ctx, userID, req.Msg.ExpenseId); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseId)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// ListExpenses returns the caller's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		slog.Error("ListExpenses failed", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	out := make([]*api.Expense, len(expenses))
	for i, e := range expenses {
		out[len(expenses)-1-i] = toAPIExpense(e)
	}

	slog.Debug("ListExpenses successful", "user_id", userID, "count", len(expenses))

	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// GetTotals recomputes balances and settlements for the caller's ledger.
func (s *ExpenseService) GetTotals(ctx context.Context, req *connect.Request[api.GetTotalsRequest]) (*connect.Response[api.GetTotalsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	slog.Info("GetTotals request received", "user_id", userID)

	people, err := s.store.ListPeople(ctx, userID)
	if err != nil {
		slog.Error("GetTotals failed - could not list people", "user_id", userID, "error", err)
		return nil, storeError(err)
	}
	expenses, err := s.store.ListExpenses(ctx, userID)
	if err != nil {
		slog.Error("GetTotals failed - could not list expenses", "user_id", userID, "error", err)
		return nil, storeError(err)
	}

	summary := calculator.Summarize(expenses, people)
	settlements := calculator.Settle(expenses, people)
	s.metrics.ObserveSettlement(len(summary.Members), len(settlements))

	byID := make(map[string]models.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	name := func(id string) string {
		if p, ok := byID[id]; ok {
			return p.Name
		}
		return models.UnknownPersonName
	}

	resp := &api.GetTotalsResponse{
		TotalSpent:   summary.TotalSpent,
		ExpenseCount: int32(summary.ExpenseCount),
		Categories:   make([]*api.CategoryTotal, len(summary.Categories)),
		Balances:     make([]*api.MemberBalance, len(summary.Members)),
		Settlements:  make([]*api.Settlement, len(settlements)),
		AllSettled:   len(settlements) == 0,
	}
	for i, c := range summary.Categories {
		resp.Categories[i] = &api.CategoryTotal{Category: c.Category, Total: c.Total, Count: int32(c.Count)}
	}
	for i, m := range summary.Members {
		resp.Balances[i] = &api.MemberBalance{
			PersonId:   m.PersonID,
			Name:       name(m.PersonID),
			Color:      byID[m.PersonID].Color,
			NetBalance: m.NetBalance,
			TotalPaid:  m.TotalPaid,
			TotalOwed:  m.TotalOwed,
		}
	}
	for i, st := range settlements {
		resp.Settlements[i] = &api.Settlement{
			From:     st.From,
			FromName: name(st.From),
			To:       st.To,
			ToName:   name(st.To),
			Amount:   st.Amount,
		}
	}

	slog.Info("GetTotals successful",
		"user_id", userID,
		"expenses_count", len(expenses),
		"members_count", len(summary.Members),
		"settlements_count", len(settlements),
	)

	return connect.NewResponse(resp), nil
}
