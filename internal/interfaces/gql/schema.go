// Package gql esquema GraphQL del API. Los resolvers sólo decodifican argumentos, delegan en
// operations.Service y traducen errores a extensiones.
package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/application/operations"
	"github.com/jhoicas/accounts-api/pkg/logger"
)

// Observer recibe el resultado de cada operación (métricas). Puede ser nil.
type Observer interface {
	ObserveOperation(operation, outcome string)
}

type resolvers struct {
	svc *operations.Service
	log *logger.Logger
	obs Observer
}

// NewSchema construye el esquema sobre el servicio de operaciones.
func NewSchema(svc *operations.Service, log *logger.Logger, obs Observer) (graphql.Schema, error) {
	r := &resolvers{svc: svc, log: log.Component("graphql"), obs: obs}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"getAccounts": {
				Type: graphql.NewList(accountType),
				Args: graphql.FieldConfigArgument{
					"search": {Type: graphql.String},
					"filter": {Type: accountFilterInput},
				},
				Resolve: r.wrap("getAccounts", r.getAccounts),
			},
			"getAccountDetails": {
				Type:    accountType,
				Args:    graphql.FieldConfigArgument{"accountId": {Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: r.wrap("getAccountDetails", r.getAccountDetails),
			},
			"getUsers": {
				Type:    graphql.NewList(userType),
				Resolve: r.wrap("getUsers", r.getUsers),
			},
			"getUserDetails": {
				Type:    userType,
				Args:    graphql.FieldConfigArgument{"userId": {Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: r.wrap("getUserDetails", r.getUserDetails),
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": {
				Type: registerResponseType,
				Args: graphql.FieldConfigArgument{
					"regAccountInput": {Type: graphql.NewNonNull(registerAccountInput)},
					"regUserInput":    {Type: graphql.NewNonNull(registerUserInput)},
				},
				Resolve: r.wrap("register", r.register),
			},
			"login": {
				Type:    loginResponseType,
				Args:    graphql.FieldConfigArgument{"loginInput": {Type: graphql.NewNonNull(loginInput)}},
				Resolve: r.wrap("login", r.login),
			},
			"logout": {
				Type:    logoutResponseType,
				Resolve: r.wrap("logout", r.logout),
			},
			"createUser": {
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"regUserInput": {Type: graphql.NewNonNull(registerUserInput)},
					"accountId":    {Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.wrap("createUser", r.createUser),
			},
			"updateAccount": {
				Type: accountType,
				Args: graphql.FieldConfigArgument{
					"accountId":          {Type: graphql.NewNonNull(graphql.ID)},
					"updateAccountInput": {Type: graphql.NewNonNull(updateAccountInput)},
				},
				Resolve: r.wrap("updateAccount", r.updateAccount),
			},
			"deleteAccount": {
				Type:    deleteAccountResponseType,
				Args:    graphql.FieldConfigArgument{"accountId": {Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: r.wrap("deleteAccount", r.deleteAccount),
			},
			"updateUser": {
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"userId":          {Type: graphql.NewNonNull(graphql.ID)},
					"updateUserInput": {Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: r.wrap("updateUser", r.updateUser),
			},
			"deleteUser": {
				Type:    deleteUserResponseType,
				Args:    graphql.FieldConfigArgument{"userId": {Type: graphql.NewNonNull(graphql.ID)}},
				Resolve: r.wrap("deleteUser", r.deleteUser),
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}

// wrap traduce errores, los registra si son internos y cuenta el resultado.
func (r *resolvers) wrap(op string, fn graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		out, err := fn(p)
		if err == nil {
			r.observe(op, "ok")
			return out, nil
		}
		public, internal := classify(err)
		if internal {
			r.log.Error().Err(err).Str("operation", op).Msg("resolver")
		} else {
			r.log.Debug().Err(err).Str("operation", op).Msg("resolver")
		}
		r.observe(op, public.extensions["code"].(string))
		return nil, public
	}
}

func (r *resolvers) observe(op, outcome string) {
	if r.obs != nil {
		r.obs.ObserveOperation(op, outcome)
	}
}

// ── Queries ──────────────────────────────────────────────────────────────────

func (r *resolvers) getAccounts(p graphql.ResolveParams) (interface{}, error) {
	var in dto.ListAccountsRequest
	in.Search = stringArg(p.Args, "search")
	if raw, ok := p.Args["filter"]; ok && raw != nil {
		in.Filter = &dto.AccountFilterRequest{}
		if err := decode(raw, in.Filter); err != nil {
			return nil, err
		}
	}
	items, err := r.svc.GetAccounts(p.Context, in)
	if err != nil {
		return nil, err
	}
	return accountList(items), nil
}

func (r *resolvers) getAccountDetails(p graphql.ResolveParams) (interface{}, error) {
	a, err := r.svc.GetAccountDetails(p.Context, stringArg(p.Args, "accountId"))
	if err != nil {
		return nil, err
	}
	return accountMap(a), nil
}

func (r *resolvers) getUsers(p graphql.ResolveParams) (interface{}, error) {
	items, err := r.svc.GetUsers(p.Context)
	if err != nil {
		return nil, err
	}
	return userList(items), nil
}

func (r *resolvers) getUserDetails(p graphql.ResolveParams) (interface{}, error) {
	u, err := r.svc.GetUserDetails(p.Context, stringArg(p.Args, "userId"))
	if err != nil {
		return nil, err
	}
	return userMap(u), nil
}

// ── Mutations ────────────────────────────────────────────────────────────────

func (r *resolvers) register(p graphql.ResolveParams) (interface{}, error) {
	var (
		accountIn dto.RegisterAccountRequest
		userIn    dto.RegisterUserRequest
	)
	if err := decode(p.Args["regAccountInput"], &accountIn); err != nil {
		return nil, err
	}
	if err := decode(p.Args["regUserInput"], &userIn); err != nil {
		return nil, err
	}
	res, err := r.svc.Register(p.Context, accountIn, userIn)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"success": res.Success,
		"message": res.Message,
		"account": accountMap(&res.Account),
		"user":    userMap(&res.User),
	}, nil
}

func (r *resolvers) login(p graphql.ResolveParams) (interface{}, error) {
	var in dto.LoginRequest
	if err := decode(p.Args["loginInput"], &in); err != nil {
		return nil, err
	}
	res, err := r.svc.Login(p.Context, in)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"success": res.Success,
		"message": res.Message,
		"account": accountMap(&res.Account),
		"token":   res.Token,
	}, nil
}

func (r *resolvers) logout(p graphql.ResolveParams) (interface{}, error) {
	res, err := r.svc.Logout(p.Context)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"success": res.Success, "message": res.Message}, nil
}

func (r *resolvers) createUser(p graphql.ResolveParams) (interface{}, error) {
	var in dto.RegisterUserRequest
	if err := decode(p.Args["regUserInput"], &in); err != nil {
		return nil, err
	}
	u, err := r.svc.CreateUser(p.Context, in, stringArg(p.Args, "accountId"))
	if err != nil {
		return nil, err
	}
	return userMap(u), nil
}

func (r *resolvers) updateAccount(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateAccountRequest
	if err := decode(p.Args["updateAccountInput"], &in); err != nil {
		return nil, err
	}
	res, err := r.svc.UpdateAccount(p.Context, stringArg(p.Args, "accountId"), in)
	if err != nil {
		return nil, err
	}
	return updatedAccount(res), nil
}

func (r *resolvers) deleteAccount(p graphql.ResolveParams) (interface{}, error) {
	res, err := r.svc.DeleteAccount(p.Context, stringArg(p.Args, "accountId"))
	if err != nil {
		return nil, err
	}
	return deletedAccount(res), nil
}

func (r *resolvers) updateUser(p graphql.ResolveParams) (interface{}, error) {
	var in dto.UpdateUserRequest
	if err := decode(p.Args["updateUserInput"], &in); err != nil {
		return nil, err
	}
	res, err := r.svc.UpdateUser(p.Context, stringArg(p.Args, "userId"), in)
	if err != nil {
		return nil, err
	}
	return updatedUser(res), nil
}

func (r *resolvers) deleteUser(p graphql.ResolveParams) (interface{}, error) {
	res, err := r.svc.DeleteUser(p.Context, stringArg(p.Args, "userId"))
	if err != nil {
		return nil, err
	}
	return deletedUser(res), nil
}
