package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"qd-authentication-gateway/internal/form"
	"qd-authentication-gateway/internal/model"
	"qd-authentication-gateway/internal/service"
)

// errOperationFailed is returned once a failed result or field errors have been printed
var errOperationFailed = errors.New("operation failed")

type commandRunner struct {
	service    service.AuthenticationServicer
	validator  form.Validatorer
	out        io.Writer
	jsonOutput bool
}

func (runner *commandRunner) register(ctx context.Context, registration form.RegistrationForm) error {
	if !runner.printFieldErrors(runner.validator.ValidateRegistration(registration)) {
		return errOperationFailed
	}
	return runner.finish(runner.service.Register(ctx, registration.Email, registration.Password))
}

func (runner *commandRunner) login(ctx context.Context, login form.LoginForm) error {
	if !runner.printFieldErrors(runner.validator.ValidateLogin(login)) {
		return errOperationFailed
	}
	return runner.finish(runner.service.Login(ctx, login.Email, login.Password))
}

func (runner *commandRunner) loginWithGoogle(ctx context.Context) error {
	return runner.finish(runner.service.LoginWithGoogle(ctx))
}

func (runner *commandRunner) logout(ctx context.Context) error {
	return runner.finish(runner.service.Logout(ctx))
}

func (runner *commandRunner) resetPassword(ctx context.Context, reset form.PasswordResetForm) error {
	if !runner.printFieldErrors(runner.validator.ValidatePasswordReset(reset)) {
		return errOperationFailed
	}
	return runner.finish(runner.service.ResetPassword(ctx, reset.Email))
}

func (runner *commandRunner) finish(result model.OperationResult) error {
	if err := runner.printResult(result); err != nil {
		return err
	}
	if !result.Success() {
		return errOperationFailed
	}
	return nil
}

func (runner *commandRunner) printFieldErrors(fieldErrors form.FieldErrors) bool {
	if fieldErrors.Valid() {
		return true
	}
	if runner.jsonOutput {
		encoded, _ := json.Marshal(map[string]interface{}{
			"success": false,
			"fields":  fieldErrors,
		})
		fmt.Fprintln(runner.out, string(encoded))
		return false
	}
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(runner.out, "%s: %s\n", field, fieldErrors[field])
	}
	return false
}

func (runner *commandRunner) printResult(result model.OperationResult) error {
	if runner.jsonOutput {
		encoded, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(runner.out, string(encoded))
		return nil
	}
	switch {
	case !result.Success():
		fmt.Fprintln(runner.out, result.DisplayMessage())
	case result.User() != nil:
		fmt.Fprintf(runner.out, "Signed in as %s (%s)\n", result.User().Email, result.User().ID)
	case result.Message() != "":
		fmt.Fprintln(runner.out, result.Message())
	default:
		fmt.Fprintln(runner.out, "OK")
	}
	return nil
}
