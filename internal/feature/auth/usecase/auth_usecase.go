package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"portal_backend/internal/feature/auth/domain"
	"portal_backend/internal/feature/auth/domain/entity"
)

// dummyHash is a bcrypt hash compared against when the looked-up user
// does not exist, so login takes the same time either way.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if the user does not exist.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher abstracts the one-way password hashing primitive.
type PasswordHasher interface {
	// Hash derives a salted one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare verifies a plaintext password against a stored hash.
	// It returns an error on mismatch.
	Compare(hash, password string) error
}

// RegisterInput carries the raw registration form fields. Age stays a
// string so the usecase can report "not a number" distinctly from
// "out of range".
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	PasswordConfirm string
	Age             string
}

// AuthUsecase implements the authentication state machine: credential
// verification, the anonymous/authenticated session transition and the
// authorization predicate. Collaborators are injected explicitly.
type AuthUsecase struct {
	users    UserRepository
	hasher   PasswordHasher
	sessions *SessionManager
}

// NewAuthUsecase creates an AuthUsecase with its injected collaborators.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, sessions *SessionManager) *AuthUsecase {
	return &AuthUsecase{users: users, hasher: hasher, sessions: sessions}
}

// validateRegistration runs the ordered registration checks and returns
// the first failure as a ValidationError.
func validateRegistration(in RegisterInput) (int, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.PasswordConfirm == "" || in.Age == "" {
		return 0, domain.NewValidationError("All fields are required")
	}
	age, err := strconv.Atoi(in.Age)
	if err != nil || age < entity.MinAge || age > entity.MaxAge {
		return 0, domain.NewValidationError("Age must be a valid number between 18 and 100")
	}
	if in.Password != in.PasswordConfirm {
		return 0, domain.NewValidationError("Passwords do not match")
	}
	return age, nil
}

// Register creates a new user from the raw form input and transitions
// the session to authenticated, bound to the new principal. The session
// token is rotated on success; the returned session replaces sess.
//
// Validation short-circuits on the first failure, in order: field
// presence, age range, password confirmation, email uniqueness. A
// session that is already authenticated is rejected outright.
func (u *AuthUsecase) Register(ctx context.Context, sess *entity.Session, in RegisterInput) (*entity.Session, error) {
	if sess.IsAuthenticated() {
		return nil, domain.ErrAlreadyAuthenticated
	}

	age, err := validateRegistration(in)
	if err != nil {
		return nil, err
	}

	if _, err := u.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Email: in.Email, Name: in.Name, Age: age, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, domain.ErrUserAlreadyExists
		}
		return nil, err
	}

	return u.bind(ctx, sess, user.ID)
}

// Login verifies the credentials and transitions the session to
// authenticated on success, rotating the token. Unknown email and wrong
// password are indistinguishable to the caller: both return
// domain.ErrInvalidCredentials, and a hash comparison runs either way
// to keep the timing uniform.
func (u *AuthUsecase) Login(ctx context.Context, sess *entity.Session, email, password string) (*entity.Session, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash := dummyHash
	if err == nil {
		hash = user.Password
	}
	compareErr := u.hasher.Compare(hash, password)

	if err != nil || compareErr != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return u.bind(ctx, sess, user.ID)
}

// bind rotates the session under a new token with the principal attached.
func (u *AuthUsecase) bind(ctx context.Context, sess *entity.Session, userID uint) (*entity.Session, error) {
	sess.UserID = userID
	rotated, err := u.sessions.Rotate(ctx, sess)
	if err != nil {
		return nil, err
	}
	return rotated, nil
}

// Logout unconditionally transitions the session to anonymous by
// destroying it server-side. The handler clears the client's cookie.
func (u *AuthUsecase) Logout(ctx context.Context, sess *entity.Session) error {
	return u.sessions.Destroy(ctx, sess)
}

// IsAuthorized reports whether the session has a bound principal.
func (u *AuthUsecase) IsAuthorized(sess *entity.Session) bool {
	return sess.IsAuthenticated()
}

// CurrentUser returns the principal bound to the session, for read-only
// display on protected pages.
func (u *AuthUsecase) CurrentUser(ctx context.Context, sess *entity.Session) (*entity.User, error) {
	if !sess.IsAuthenticated() {
		return nil, domain.ErrUserNotFound
	}
	user, err := u.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
