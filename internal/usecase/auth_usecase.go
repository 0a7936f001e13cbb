package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"eldercare-api/internal/converter"
	"eldercare-api/internal/delivery/dto"
	"eldercare-api/internal/domain/entity"
	"eldercare-api/internal/domain/repository"
	"eldercare-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrTokenRevoked = errors.New("token has been revoked")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidOTP   = errors.New("invalid or expired OTP code")
)

// AuthUsecase implements the app's session flows. There is no identity
// backend and no credential verification: login never checks a password,
// it only issues a token pair for the given email. Token revocation and
// OTP codes live in Redis with TTLs.
type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.OTPResponse, error)
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	otpExpiry   time.Duration
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	otpExpiry time.Duration,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		userRepo:    userRepo,
		jwtService:  jwtService,
		redisClient: redisClient,
		otpExpiry:   otpExpiry,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	now := time.Now()
	user := &entity.User{
		ID:          uuid.New(),
		Email:       strings.ToLower(req.Email),
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	u.log.Infof("User registered: id=%s, email=%s", user.ID, user.Email)
	return converter.UserToResponse(user), nil
}

// Login issues a token pair for the email, creating the account on first
// sight. The password is accepted as-is.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(req.Email)

	user := u.userRepo.FindByEmail(email)
	if user == nil {
		now := time.Now()
		user = &entity.User{
			ID:        uuid.New(),
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := u.userRepo.Create(user); err != nil {
			u.log.Warnf("Failed to create account on login for %s: %+v", email, err)
			return nil, err
		}
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:  converter.UserToResponse(user),
		Token: tokens,
	}, nil
}

// ForgotPassword issues a 4-digit confirmation code with a TTL. The code is
// returned in the response; there is no SMS or email delivery behind it.
func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (*dto.OTPResponse, error) {
	email := strings.ToLower(req.Email)

	code, err := generateOTPCode()
	if err != nil {
		u.log.Warnf("Failed to generate OTP code: %+v", err)
		return nil, err
	}

	otpKey := fmt.Sprintf("otp:%s", email)
	if err := u.redisClient.Set(ctx, otpKey, code, u.otpExpiry).Err(); err != nil {
		u.log.Warnf("Failed to store OTP code for %s: %+v", email, err)
		return nil, err
	}

	u.log.Infof("OTP issued for %s", email)
	return &dto.OTPResponse{
		Email:     email,
		Code:      code,
		ExpiresIn: int64(u.otpExpiry.Seconds()),
	}, nil
}

func (u *authUsecase) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(req.Email)
	otpKey := fmt.Sprintf("otp:%s", email)

	stored, err := u.redisClient.Get(ctx, otpKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidOTP
		}
		u.log.Warnf("Failed to read OTP code for %s: %+v", email, err)
		return nil, err
	}
	if stored != req.Code {
		return nil, ErrInvalidOTP
	}

	// One-shot code
	if err := u.redisClient.Del(ctx, otpKey).Err(); err != nil {
		u.log.Warnf("Failed to delete used OTP for %s: %+v", email, err)
	}

	user := u.userRepo.FindByEmail(email)
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	user := u.userRepo.FindByID(claims.UserID)
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Rotate: drop the old refresh token before issuing a new pair
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete rotated refresh token: %+v", err)
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	accessPattern := fmt.Sprintf("access_token:*:%s", accessTokenID)
	refreshPattern := fmt.Sprintf("refresh_token:*:%s", refreshTokenID)

	for _, pattern := range []string{accessPattern, refreshPattern} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list token keys for %s: %+v", pattern, err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete token keys for %s: %+v", pattern, err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user := u.userRepo.FindByID(userID)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// issueTokens generates an access/refresh pair and records both in Redis so
// they can be revoked on logout
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// generateOTPCode produces a 4-digit confirmation code
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
