package api

// User is the public view of an account.
type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Person is someone sharing expenses in the caller's ledger.
type Person struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt int64  `json:"createdAt"`
}

type AddPersonRequest struct {
	Name string `json:"name"`
	// Color is optional; the next palette colour is used when empty.
	Color string `json:"color,omitempty"`
}

type AddPersonResponse struct {
	Person *Person `json:"person"`
}

type RemovePersonRequest struct {
	PersonId string `json:"personId"`
}

type RemovePersonResponse struct{}

type ListPeopleRequest struct{}

type ListPeopleResponse struct {
	People []*Person `json:"people"`
}

// ExpenseSplit is one person's share of an expense.
type ExpenseSplit struct {
	PersonId string  `json:"personId"`
	Amount   float64 `json:"amount"`
}

type Expense struct {
	Id          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	PaidBy      string          `json:"paidBy"`
	Splits      []*ExpenseSplit `json:"splits"`
	Category    string          `json:"category"`
	Tag         string          `json:"tag,omitempty"`
	Intent      string          `json:"intent,omitempty"`
	CreatedAt   int64           `json:"createdAt"`
}

type AddExpenseRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	PaidBy      string  `json:"paidBy"`
	// PersonIds selects who shares the expense equally.
	PersonIds []string `json:"personIds,omitempty"`
	// Splits gives custom per-person shares; they must add up to Amount.
	// When PersonIds is also set, Splits must name exactly those people.
	Splits   []*ExpenseSplit `json:"splits,omitempty"`
	Category string          `json:"category,omitempty"`
	Tag      string          `json:"tag,omitempty"`
	Intent   string          `json:"intent,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseId string `json:"expenseId"`
}

type DeleteExpenseResponse struct{}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type GetTotalsRequest struct{}

// MemberBalance is one person's position. Name is "Unknown" for people that
// have been removed but still appear in expenses.
type MemberBalance struct {
	PersonId   string  `json:"personId"`
	Name       string  `json:"name"`
	Color      string  `json:"color,omitempty"`
	NetBalance float64 `json:"netBalance"`
	TotalPaid  float64 `json:"totalPaid"`
	TotalOwed  float64 `json:"totalOwed"`
}

type Settlement struct {
	From     string  `json:"from"`
	FromName string  `json:"fromName"`
	To       string  `json:"to"`
	ToName   string  `json:"toName"`
	Amount   float64 `json:"amount"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int32   `json:"count"`
}

type GetTotalsResponse struct {
	TotalSpent   float64          `json:"totalSpent"`
	ExpenseCount int32            `json:"expenseCount"`
	Categories   []*CategoryTotal `json:"categories"`
	Balances     []*MemberBalance `json:"balances"`
	Settlements  []*Settlement    `json:"settlements"`
	AllSettled   bool             `json:"allSettled"`
}
