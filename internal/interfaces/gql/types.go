package gql

import "github.com/graphql-go/graphql"

// Tipos de salida. Los campos de entidad son nullable: una respuesta blanda (no encontrado)
// sólo trae message e id.
var accountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Account",
	Fields: graphql.Fields{
		"id":         {Type: graphql.ID},
		"username":   {Type: graphql.String},
		"email":      {Type: graphql.String},
		"accessType": {Type: graphql.String},
		"signupAt":   {Type: graphql.String},
		"createdAt":  {Type: graphql.String},
		"updatedAt":  {Type: graphql.String},
		"message":    {Type: graphql.String},
	},
})

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":          {Type: graphql.ID},
		"accountId":   {Type: graphql.ID},
		"firstName":   {Type: graphql.String},
		"lastName":    {Type: graphql.String},
		"middleName":  {Type: graphql.String},
		"nickname":    {Type: graphql.String},
		"birthdate":   {Type: graphql.String},
		"birthday":    {Type: graphql.String, DeprecationReason: "Use birthdate."},
		"fbAccount":   {Type: graphql.String},
		"contactNo":   {Type: graphql.String},
		"emailAdd":    {Type: graphql.String},
		"status":      {Type: graphql.String},
		"position":    {Type: graphql.String},
		"type":        {Type: graphql.String},
		"group":       {Type: graphql.String},
		"yearBaptism": {Type: graphql.Int},
		"position1FC": {Type: graphql.String},
		"eon":         {Type: graphql.String},
		"createdAt":   {Type: graphql.String},
		"updatedAt":   {Type: graphql.String},
		"message":     {Type: graphql.String},
	},
})

var registerResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "RegisterResponse",
	Fields: graphql.Fields{
		"success": {Type: graphql.NewNonNull(graphql.Boolean)},
		"message": {Type: graphql.String},
		"account": {Type: accountType},
		"user":    {Type: userType},
	},
})

var loginResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LoginResponse",
	Fields: graphql.Fields{
		"success": {Type: graphql.NewNonNull(graphql.Boolean)},
		"message": {Type: graphql.String},
		"account": {Type: accountType},
		"token":   {Type: graphql.String},
	},
})

var logoutResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "LogoutResponse",
	Fields: graphql.Fields{
		"success": {Type: graphql.NewNonNull(graphql.Boolean)},
		"message": {Type: graphql.String},
	},
})

var deleteAccountResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeleteAccountResponse",
	Fields: graphql.Fields{
		"message":   {Type: graphql.String},
		"accountId": {Type: graphql.ID},
	},
})

var deleteUserResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DeleteUserResponse",
	Fields: graphql.Fields{
		"message": {Type: graphql.String},
		"userId":  {Type: graphql.ID},
	},
})

// Tipos de entrada.
var registerAccountInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "RegisterAccountInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username":        {Type: graphql.NewNonNull(graphql.String)},
		"email":           {Type: graphql.NewNonNull(graphql.String)},
		"accessType":      {Type: graphql.String},
		"signupAt":        {Type: graphql.String},
		"password":        {Type: graphql.NewNonNull(graphql.String)},
		"confirmPassword": {Type: graphql.NewNonNull(graphql.String)},
	},
})

var registerUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "RegisterUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName":   {Type: graphql.NewNonNull(graphql.String)},
		"lastName":    {Type: graphql.NewNonNull(graphql.String)},
		"middleName":  {Type: graphql.String},
		"nickname":    {Type: graphql.String},
		"birthdate":   {Type: graphql.String},
		"fbAccount":   {Type: graphql.String},
		"contactNo":   {Type: graphql.String},
		"emailAdd":    {Type: graphql.String},
		"status":      {Type: graphql.String},
		"position":    {Type: graphql.String},
		"type":        {Type: graphql.String},
		"group":       {Type: graphql.String},
		"yearBaptism": {Type: graphql.Int},
		"position1FC": {Type: graphql.String},
		"eon":         {Type: graphql.String},
	},
})

var updateAccountInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateAccountInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username":   {Type: graphql.String},
		"email":      {Type: graphql.String},
		"accessType": {Type: graphql.String},
		"signupAt":   {Type: graphql.String},
		"password":   {Type: graphql.String},
	},
})

var updateUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateUserInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"accountId":   {Type: graphql.String},
		"firstName":   {Type: graphql.String},
		"lastName":    {Type: graphql.String},
		"middleName":  {Type: graphql.String},
		"nickname":    {Type: graphql.String},
		"birthdate":   {Type: graphql.String},
		"fbAccount":   {Type: graphql.String},
		"contactNo":   {Type: graphql.String},
		"emailAdd":    {Type: graphql.String},
		"status":      {Type: graphql.String},
		"position":    {Type: graphql.String},
		"type":        {Type: graphql.String},
		"group":       {Type: graphql.String},
		"yearBaptism": {Type: graphql.Int},
		"position1FC": {Type: graphql.String},
		"eon":         {Type: graphql.String},
	},
})

var accountFilterInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "AccountFilterInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"accessType": {Type: graphql.String},
		"signupAt":   {Type: graphql.String},
		"createdAt":  {Type: graphql.String},
	},
})

var loginInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"username": {Type: graphql.NewNonNull(graphql.String)},
		"password": {Type: graphql.NewNonNull(graphql.String)},
	},
})
