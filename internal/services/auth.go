package services

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-note/internal/apperrors"
	"github.com/sbilibin2017/gw-expense-note/internal/logger"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
	"github.com/sbilibin2017/gw-expense-note/internal/reporter"
	"github.com/sbilibin2017/gw-expense-note/internal/vault"
)

// Error variables
var (
	ErrUsernameTaken      = apperrors.NewBadRequest("Username already exists")
	ErrEmailTaken         = apperrors.NewBadRequest("Email already exists")
	ErrInvalidCredentials = apperrors.NewUnauthorized("Invalid credentials")
	ErrUserNotFound       = apperrors.NewNotFound("User not found")
)

// SecurityQuestions is the fixed list offered at registration.
var SecurityQuestions = []string{
	"What was your childhood nickname?",
	"What is the name of your favorite childhood friend?",
	"What was the name of your first pet?",
	"What is your favorite movie?",
	"What is your neighbour's last name?",
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter defines write operations for users. Implementations hash plain secrets before storing.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, identity models.Identity) (string, error)
}

// AuthService handles registration, login and profile management.
type AuthService struct {
	reader       UserReader
	writer       UserWriter
	jwt          JWTGenerator
	defaultImage []byte
	reporter     reporter.Reporter
}

// NewAuthService creates a new AuthService instance. defaultImage is stored for users
// registering without a profile picture.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, defaultImage []byte, rep reporter.Reporter) *AuthService {
	if rep == nil {
		rep = reporter.Nop{}
	}
	return &AuthService{
		reader:       reader,
		writer:       writer,
		jwt:          jwt,
		defaultImage: defaultImage,
		reporter:     rep,
	}
}

// SecurityQuestions returns the questions a user may pick from.
func (svc *AuthService) SecurityQuestions() []string {
	out := make([]string, len(SecurityQuestions))
	copy(out, SecurityQuestions)
	return out
}

// Register creates a user and signs a token for it.
func (svc *AuthService) Register(ctx context.Context, in models.RegisterInput) (user *models.User, token string, err error) {
	defer reporter.TrackErrors(ctx, svc.reporter, "AuthService.Register", &err)

	if err := svc.ensureUnique(ctx, "", &in.Username, &in.Email); err != nil {
		return nil, "", err
	}

	image := in.Image
	if len(image) == 0 {
		image = svc.defaultImage
	}

	user = &models.User{
		ID:               uuid.NewString(),
		Username:         in.Username,
		Email:            in.Email,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Password:         vault.Plain(in.Password),
		SecurityQuestion: in.SecurityQuestion,
		SecurityAnswer:   vault.Plain(vault.NormalizeAnswer(in.SecurityAnswer)),
		Image:            image,
	}

	if err := svc.writer.Create(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "username", in.Username, "error", err)
		return nil, "", err
	}

	token, err = svc.jwt.Generate(ctx, user.Identity())
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns a JWT token. Hashes produced with outdated
// parameters are upgraded on success.
func (svc *AuthService) Login(ctx context.Context, in models.LoginInput) (user *models.User, token string, err error) {
	defer reporter.TrackErrors(ctx, svc.reporter, "AuthService.Login", &err)

	user, err = svc.reader.GetByUsername(ctx, in.Username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "username", in.Username, "error", err)
		return nil, "", err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", in.Username)
		return nil, "", ErrInvalidCredentials
	}

	digest := user.Password.Digest()
	ok, err := vault.VerifySecret(digest, in.Password)
	if err != nil {
		logger.Log.Errorw("failed to verify password", "user_id", user.ID, "error", err)
		return nil, "", ErrInvalidCredentials
	}
	if !ok {
		logger.Log.Infow("invalid credentials", "username", in.Username)
		return nil, "", ErrInvalidCredentials
	}

	if vault.NeedsRehash(digest) {
		user.Password = vault.Plain(in.Password)
		if err := svc.writer.Update(ctx, user); err != nil {
			logger.Log.Warnw("failed to upgrade password hash", "user_id", user.ID, "error", err)
			user.Password = vault.Hashed(digest)
		}
	}

	token, err = svc.jwt.Generate(ctx, user.Identity())
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	return user, token, nil
}

// GetUser returns the user with the given id.
func (svc *AuthService) GetUser(ctx context.Context, id string) (user *models.User, err error) {
	defer reporter.TrackErrors(ctx, svc.reporter, "AuthService.GetUser", &err)

	user, err = svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateUser applies the fields present in in to the user.
func (svc *AuthService) UpdateUser(ctx context.Context, id string, in models.UpdateUserInput) (user *models.User, err error) {
	defer reporter.TrackErrors(ctx, svc.reporter, "AuthService.UpdateUser", &err)

	user, err = svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	var username, email *string
	if in.Username != nil && *in.Username != user.Username {
		username = in.Username
	}
	if in.Email != nil && *in.Email != user.Email {
		email = in.Email
	}
	if err := svc.ensureUnique(ctx, user.ID, username, email); err != nil {
		return nil, err
	}

	if username != nil {
		user.Username = *username
	}
	if email != nil {
		user.Email = *email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Password != nil {
		user.Password = vault.Plain(*in.Password)
	}
	if len(in.Image) > 0 {
		user.Image = in.Image
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	return user, nil
}

// ensureUnique checks username before email so the username conflict wins when both clash.
func (svc *AuthService) ensureUnique(ctx context.Context, selfID string, username, email *string) error {
	if username != nil {
		existing, err := svc.reader.GetByUsername(ctx, *username)
		if err != nil {
			logger.Log.Errorw("failed to check username", "username", *username, "error", err)
			return err
		}
		if existing != nil && existing.ID != selfID {
			logger.Log.Infow("username already exists", "username", *username)
			return ErrUsernameTaken
		}
	}
	if email != nil {
		existing, err := svc.reader.GetByEmail(ctx, *email)
		if err != nil {
			logger.Log.Errorw("failed to check email", "email", *email, "error", err)
			return err
		}
		if existing != nil && existing.ID != selfID {
			logger.Log.Infow("email already exists", "email", *email)
			return ErrEmailTaken
		}
	}
	return nil
}
