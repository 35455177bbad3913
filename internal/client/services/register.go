package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jcsoftlabs/Yeng-client/internal/client/api"
	"github.com/jcsoftlabs/Yeng-client/internal/client/models"
	"github.com/jcsoftlabs/Yeng-client/internal/client/session"
	"github.com/jcsoftlabs/Yeng-client/internal/common"
)

// MinPasswordLength applies to new accounts only; the backend enforces its
// own policy on login.
const MinPasswordLength = 6

// MinResetPasswordLength is the stricter floor the portal applies when a
// password is reset through an emailed token.
const MinResetPasswordLength = 8

// IdentityForm is step 1 of registration: who the customer is.
type IdentityForm struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// AddressForm is step 2 of registration: where parcels go in Haiti.
type AddressForm struct {
	HaitiAddress    string
	HaitiCity       string
	HaitiDepartment string
}

// RegistrationService drives the two-step registration flow and the
// forgot/reset-password pages.
type RegistrationService interface {
	ValidateIdentity(form IdentityForm) error
	ValidateAddress(form AddressForm) error
	Register(ctx context.Context, identity IdentityForm, address AddressForm, addressCode string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirm string) error
}

type registrationService struct {
	client  api.Client
	session *session.Store
}

func NewRegistrationService(client api.Client, sess *session.Store) RegistrationService {
	return &registrationService{client: client, session: sess}
}

// ValidateIdentity rejects incomplete step-1 forms before anything reaches
// the network.
func (s *registrationService) ValidateIdentity(form IdentityForm) error {
	if form.FirstName == "" || form.LastName == "" || form.Email == "" || form.Phone == "" || form.Password == "" {
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}
	if form.Password != form.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(form.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinPasswordLength)
	}
	return nil
}

func (s *registrationService) ValidateAddress(form AddressForm) error {
	if form.HaitiAddress == "" || form.HaitiCity == "" || form.HaitiDepartment == "" {
		return fmt.Errorf("%w: the Haiti address is required", common.ErrValidation)
	}
	return nil
}

// Register creates the account with the proposed mailing-address code and
// auto-logs the new customer in. The backend is the source of truth for the
// code and may reject or reassign it.
func (s *registrationService) Register(ctx context.Context, identity IdentityForm, address AddressForm, addressCode string) error {
	req := models.RegisterRequest{
		FirstName:       identity.FirstName,
		LastName:        identity.LastName,
		Email:           identity.Email,
		Phone:           identity.Phone,
		Password:        identity.Password,
		CustomAddress:   addressCode,
		HaitiAddress:    address.HaitiAddress,
		HaitiCity:       address.HaitiCity,
		HaitiDepartment: address.HaitiDepartment,
	}

	if _, err := s.client.Register(ctx, req); err != nil {
		return err
	}

	return s.session.Login(ctx, identity.Email, identity.Password)
}

func (s *registrationService) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	return s.client.ForgotPassword(ctx, email)
}

// ResetPassword redeems the emailed reset token. Validation happens locally;
// an invalid or expired token surfaces as the backend's error.
func (s *registrationService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if token == "" {
		return fmt.Errorf("%w: reset token is required", common.ErrValidation)
	}
	if password != confirm {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	if len(password) < MinResetPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, MinResetPasswordLength)
	}
	return s.client.ResetPassword(ctx, token, password)
}

// GenerateAddressCode derives a proposed mailing-address code from the
// uppercased first two letters of the first and last name plus a random
// numeric suffix in [0, 999]. It is a UX convenience with no uniqueness
// guarantee; the backend resolves conflicts.
func GenerateAddressCode(firstName, lastName string) string {
	prefix := strings.ToUpper(firstLetters(firstName, 2) + firstLetters(lastName, 2))
	return fmt.Sprintf("%s%d", prefix, rand.IntN(1000))
}

func firstLetters(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
