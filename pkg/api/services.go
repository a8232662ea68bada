package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	AuthServiceName    = "splitledger.v1.AuthService"
	PeopleServiceName  = "splitledger.v1.PeopleService"
	ExpenseServiceName = "splitledger.v1.ExpenseService"
)

// Fully-qualified procedure names, used as HTTP paths.
const (
	AuthServiceRegisterProcedure       = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceLogoutProcedure         = "/" + AuthServiceName + "/Logout"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"

	PeopleServiceAddPersonProcedure    = "/" + PeopleServiceName + "/AddPerson"
	PeopleServiceRemovePersonProcedure = "/" + PeopleServiceName + "/RemovePerson"
	PeopleServiceListPeopleProcedure   = "/" + PeopleServiceName + "/ListPeople"

	ExpenseServiceAddExpenseProcedure    = "/" + ExpenseServiceName + "/AddExpense"
	ExpenseServiceDeleteExpenseProcedure = "/" + ExpenseServiceName + "/DeleteExpense"
	ExpenseServiceListExpensesProcedure  = "/" + ExpenseServiceName + "/ListExpenses"
	ExpenseServiceGetTotalsProcedure     = "/" + ExpenseServiceName + "/GetTotals"
)

// AuthServiceHandler is implemented by the account service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	Logout(context.Context, *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

// PeopleServiceHandler is implemented by the people service.
type PeopleServiceHandler interface {
	AddPerson(context.Context, *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error)
	RemovePerson(context.Context, *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error)
	ListPeople(context.Context, *connect.Request[ListPeopleRequest]) (*connect.Response[ListPeopleResponse], error)
}

// ExpenseServiceHandler is implemented by the expense service.
type ExpenseServiceHandler interface {
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GetTotals(context.Context, *connect.Request[GetTotalsRequest]) (*connect.Response[GetTotalsResponse], error)
}

// router dispatches on the exact procedure path.
type router map[string]http.Handler

func (rt router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h, ok := rt[r.URL.Path]; ok {
		h.ServeHTTP(w, r)
		return
	}
	http.NotFound(w, r)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{WithCodec()}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{WithCodec()}, opts...)
}

// NewAuthServiceHandler builds an HTTP handler for svc.
// It returns the path to mount it on and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", router{
		AuthServiceRegisterProcedure:       connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceLogoutProcedure:         connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
	}
}

// NewPeopleServiceHandler builds an HTTP handler for svc.
func NewPeopleServiceHandler(svc PeopleServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + PeopleServiceName + "/", router{
		PeopleServiceAddPersonProcedure:    connect.NewUnaryHandler(PeopleServiceAddPersonProcedure, svc.AddPerson, opts...),
		PeopleServiceRemovePersonProcedure: connect.NewUnaryHandler(PeopleServiceRemovePersonProcedure, svc.RemovePerson, opts...),
		PeopleServiceListPeopleProcedure:   connect.NewUnaryHandler(PeopleServiceListPeopleProcedure, svc.ListPeople, opts...),
	}
}

// NewExpenseServiceHandler builds an HTTP handler for svc.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + ExpenseServiceName + "/", router{
		ExpenseServiceAddExpenseProcedure:    connect.NewUnaryHandler(ExpenseServiceAddExpenseProcedure, svc.AddExpense, opts...),
		ExpenseServiceDeleteExpenseProcedure: connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
		ExpenseServiceListExpensesProcedure:  connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...),
		ExpenseServiceGetTotalsProcedure:     connect.NewUnaryHandler(ExpenseServiceGetTotalsProcedure, svc.GetTotals, opts...),
	}
}

// AuthServiceClient is a client for the account service.
type AuthServiceClient struct {
	register       *connect.Client[RegisterRequest, RegisterResponse]
	login          *connect.Client[LoginRequest, LoginResponse]
	logout         *connect.Client[LogoutRequest, LogoutResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

// NewAuthServiceClient constructs a client for the service at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register:       connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		logout:         connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// PeopleServiceClient is a client for the people service.
type PeopleServiceClient struct {
	addPerson    *connect.Client[AddPersonRequest, AddPersonResponse]
	removePerson *connect.Client[RemovePersonRequest, RemovePersonResponse]
	listPeople   *connect.Client[ListPeopleRequest, ListPeopleResponse]
}

// NewPeopleServiceClient constructs a client for the service at baseURL.
func NewPeopleServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PeopleServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &PeopleServiceClient{
		addPerson:    connect.NewClient[AddPersonRequest, AddPersonResponse](httpClient, baseURL+PeopleServiceAddPersonProcedure, opts...),
		removePerson: connect.NewClient[RemovePersonRequest, RemovePersonResponse](httpClient, baseURL+PeopleServiceRemovePersonProcedure, opts...),
		listPeople:   connect.NewClient[ListPeopleRequest, ListPeopleResponse](httpClient, baseURL+PeopleServiceListPeopleProcedure, opts...),
	}
}

func (c *PeopleServiceClient) AddPerson(ctx context.Context, req *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *PeopleServiceClient) RemovePerson(ctx context.Context, req *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

func (c *PeopleServiceClient) ListPeople(ctx context.Context, req *connect.Request[ListPeopleRequest]) (*connect.Response[ListPeopleResponse], error) {
	return c.listPeople.CallUnary(ctx, req)
}

// ExpenseServiceClient is a client for the expense service.
type ExpenseServiceClient struct {
	addExpense    *connect.Client[AddExpenseRequest, AddExpenseResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getTotals     *connect.Client[GetTotalsRequest, GetTotalsResponse]
}

// NewExpenseServiceClient constructs a client for the service at baseURL.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ExpenseServiceClient{
		addExpense:    connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+ExpenseServiceAddExpenseProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		getTotals:     connect.NewClient[GetTotalsRequest, GetTotalsResponse](httpClient, baseURL+ExpenseServiceGetTotalsProcedure, opts...),
	}
}

func (c *ExpenseServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) GetTotals(ctx context.Context, req *connect.Request[GetTotalsRequest]) (*connect.Response[GetTotalsResponse], error) {
	return c.getTotals.CallUnary(ctx, req)
}
