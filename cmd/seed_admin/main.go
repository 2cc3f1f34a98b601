// seed_admin crea la primera cuenta SUPERADMIN en el almacenamiento configurado.
//
// Uso: go run ./cmd/seed_admin -username root -email root@example.com
// La contraseña se lee de la terminal sin eco (o de SEED_ADMIN_PASSWORD si stdin no es una terminal).
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jhoicas/accounts-api/internal/application/auth"
	"github.com/jhoicas/accounts-api/internal/application/dto"
	"github.com/jhoicas/accounts-api/internal/application/usecase"
	"github.com/jhoicas/accounts-api/internal/domain"
	"github.com/jhoicas/accounts-api/internal/domain/entity"
	"github.com/jhoicas/accounts-api/internal/infrastructure/storage"
	"github.com/jhoicas/accounts-api/pkg/config"
	"github.com/jhoicas/accounts-api/pkg/logger"
)

// readPassword punto de sustitución para term.ReadPassword.
var readPassword = term.ReadPassword

func main() {
	username := flag.String("username", "admin", "username de la cuenta")
	email := flag.String("email", "", "email de la cuenta (requerido)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "-email es requerido")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	password, confirm, err := promptPassword()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer contraseña: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	stores, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer stores.Close(ctx)

	creds := auth.NewCredentials(auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		TTL:        cfg.JWT.TTL(),
		Issuer:     cfg.JWT.Issuer,
		BcryptCost: cfg.JWT.BcryptCost,
	})
	accounts := usecase.NewAccountUseCase(stores.Accounts, creds)

	created, err := accounts.Create(ctx, dto.RegisterAccountRequest{
		Username:        *username,
		Email:           *email,
		AccessType:      entity.AccessSuperAdmin,
		SignupAt:        "seed",
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		var inputErr *domain.UserInputError
		if errors.As(err, &inputErr) {
			for field, msg := range inputErr.Errors {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		}
		fmt.Fprintf(os.Stderr, "Crear cuenta: %v\n", err)
		stores.Close(ctx)
		os.Exit(1)
	}

	log.Info().
		Str("id", created.ID).
		Str("username", created.Username).
		Str("accessType", created.AccessType).
		Msg("cuenta SUPERADMIN creada")
}

func promptPassword() (string, string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		pw := os.Getenv("SEED_ADMIN_PASSWORD")
		if pw == "" {
			// stdin redirigido: primera línea
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && line == "" {
				return "", "", errors.New("sin terminal: defina SEED_ADMIN_PASSWORD")
			}
			pw = strings.TrimRight(line, "\r\n")
		}
		return pw, pw, nil
	}

	fmt.Fprint(os.Stderr, "Contraseña: ")
	pw, err := readPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", "", err
	}
	fmt.Fprint(os.Stderr, "Confirmar contraseña: ")
	confirm, err := readPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", "", err
	}
	return string(pw), string(confirm), nil
}
