package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/learnhq/backend/internal/api/dto"
	"github.com/learnhq/backend/internal/auth"
	"github.com/learnhq/backend/internal/models"
	"github.com/learnhq/backend/internal/otp"
	"github.com/learnhq/backend/internal/repository"
)

// ==============================================
// DEPENDENCY INTERFACES (for testing)
// ==============================================

type OTPVerifier interface {
	VerifyOTP(ctx context.Context, code, sessionID string) *dto.VerifyOTPResponse
}

type IdentityRepositoryInterface interface {
	GetIdentityByID(ctx context.Context, id string) (*models.Identity, error)
	GetMappingByPhone(ctx context.Context, phone string) (*models.PhoneMapping, error)
	RegisterIdentity(ctx context.Context, identity *models.Identity, phone string) error
}

type ProfileUpdater interface {
	UpdateLastLogin(ctx context.Context, identityID string) error
}

// ==============================================
// AUTH SERVICE
// ==============================================

// AuthService reconciles a verified phone number with the identity store:
// returning users sign in with credentials derived from their phone number,
// new users are provisioned atomically (identity + mapping + profile).
type AuthService struct {
	otpVerifier  OTPVerifier
	identityRepo IdentityRepositoryInterface
	profileRepo  ProfileUpdater
	countryCode  string
	jwtSecret    string
}

func NewAuthService(
	otpVerifier OTPVerifier,
	identityRepo IdentityRepositoryInterface,
	profileRepo ProfileUpdater,
	countryCode string,
	jwtSecret string,
) *AuthService {
	return &AuthService{
		otpVerifier:  otpVerifier,
		identityRepo: identityRepo,
		profileRepo:  profileRepo,
		countryCode:  countryCode,
		jwtSecret:    jwtSecret,
	}
}

// ==============================================
// AUTHENTICATE
// ==============================================

// AuthenticateWithOTP runs the full login flow: verify the code, look up the
// phone mapping, then either sign in the existing identity or register a new
// one. Every outcome is a result value tagged with the step that decided it;
// nothing panics past this boundary.
func (s *AuthService) AuthenticateWithOTP(ctx context.Context, phone, code string) (resp *dto.AuthenticateResponse) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("authenticate panic: %v", r)
			resp = &dto.AuthenticateResponse{
				Success: false,
				Step:    dto.StepUnknown,
				Error:   "An unexpected error occurred. Please try again.",
			}
		}
	}()

	// 1. Verify the OTP. Failure here ends the attempt.
	verify := s.otpVerifier.VerifyOTP(ctx, code, "")
	if !verify.Success {
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepOTPVerification,
			Error:   verify.Error,
		}
	}

	prefixed := otp.WithCountryCode(s.countryCode, phone)

	// 2. The mapping lookup is the sole gate between the two flows.
	mapping, err := s.identityRepo.GetMappingByPhone(ctx, prefixed)
	if err != nil && !errors.Is(err, repository.ErrMappingNotFound) {
		log.Printf("mapping lookup failed: %v", err)
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepUnknown,
			Error:   "Failed to look up account. Please try again.",
		}
	}

	if mapping != nil {
		return s.signInExisting(ctx, prefixed, mapping)
	}
	return s.registerNew(ctx, prefixed)
}

// ==============================================
// SIGN IN (existing mapping)
// ==============================================

func (s *AuthService) signInExisting(ctx context.Context, prefixed string, mapping *models.PhoneMapping) *dto.AuthenticateResponse {
	identity, err := s.identityRepo.GetIdentityByID(ctx, mapping.IdentityID)
	if err != nil {
		log.Printf("identity fetch failed: %v", err)
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepSignIn,
			Error:   "Failed to sign in. Please try again.",
		}
	}

	credential := auth.DeriveCredential(prefixed)
	if !auth.CheckCredential(credential, identity.CredentialHash) {
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepSignIn,
			Error:   models.ErrInvalidCredential.Error(),
		}
	}

	// A mismatch between the mapping and the signed-in identity is an
	// integrity failure, never silently accepted.
	if identity.ID != mapping.IdentityID {
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepSignIn,
			Error:   models.ErrIdentityMismatch.Error(),
		}
	}

	if err := s.profileRepo.UpdateLastLogin(ctx, identity.ID); err != nil {
		// Login still succeeds; the timestamp refresh is best-effort.
		log.Printf("failed to update last login: %v", err)
	}

	token, expiresIn, err := auth.GenerateJWT(identity.ID, s.jwtSecret)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepSignIn,
			Error:   "Failed to sign in. Please try again.",
		}
	}

	return &dto.AuthenticateResponse{
		Success:     true,
		UserExists:  true,
		IdentityID:  identity.ID,
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
	}
}

// ==============================================
// REGISTER (no mapping)
// ==============================================

func (s *AuthService) registerNew(ctx context.Context, prefixed string) *dto.AuthenticateResponse {
	credential := auth.DeriveCredential(prefixed)
	credentialHash, err := auth.HashCredential(credential)
	if err != nil {
		log.Printf("credential hash failed: %v", err)
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepRegistration,
			Error:   "Failed to create account. Please try again.",
		}
	}

	identity := &models.Identity{
		ID:             uuid.NewString(),
		DisplayName:    prefixed,
		CredentialHash: credentialHash,
	}

	if err := s.identityRepo.RegisterIdentity(ctx, identity, prefixed); err != nil {
		log.Printf("registration failed: %v", err)
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepRegistration,
			Error:   "Failed to create account. Please try again.",
		}
	}

	token, expiresIn, err := auth.GenerateJWT(identity.ID, s.jwtSecret)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		return &dto.AuthenticateResponse{
			Success: false,
			Step:    dto.StepRegistration,
			Error:   "Account created but sign-in failed. Please log in again.",
		}
	}

	return &dto.AuthenticateResponse{
		Success:     true,
		UserExists:  false,
		IdentityID:  identity.ID,
		AccessToken: token,
		ExpiresIn:   expiresIn,
		TokenType:   "Bearer",
	}
}
