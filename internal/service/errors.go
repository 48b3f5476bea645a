package service

import "errors"

// Error values surfaced to API clients. The strings are the response
// messages, so they are written for end users rather than for logs.
var (
	// ErrInvalidEmailDomain rejects registrations outside the allowed domains
	ErrInvalidEmailDomain = errors.New("Invalid email domain. Only '.com' and '.com.br' are allowed.")

	// ErrWeakPassword rejects passwords that fail the strength policy
	ErrWeakPassword = errors.New("The password must have at least 6 characters, one capital letter and one special character (#$%-@&*).")

	// ErrEmailTaken rejects duplicate registrations
	ErrEmailTaken = errors.New("Email already registered.")

	// ErrInvalidTipo rejects transaction kinds outside {entrada, saida}
	ErrInvalidTipo = errors.New("Invalid tipo. Only 'entrada' and 'saida' are allowed.")

	// ErrInvalidValor rejects non-positive transaction amounts
	ErrInvalidValor = errors.New("Valor must be greater than zero.")

	// ErrInvalidCredentials is returned on any login failure. Unknown email
	// and wrong password produce the same error so accounts cannot be
	// enumerated.
	ErrInvalidCredentials = errors.New("Incorrect email or password")

	// ErrCouldNotValidate is returned on any token resolution failure.
	// Malformed, expired, forged and orphaned tokens are indistinguishable
	// to the caller.
	ErrCouldNotValidate = errors.New("Could not validate credentials")

	// ErrTransacaoNotFound is returned when a transaction does not exist or
	// belongs to another user. The two cases are indistinguishable so ids
	// cannot be probed.
	ErrTransacaoNotFound = errors.New("Transação não encontrada")
)
