package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-note/internal/models"
	"github.com/sbilibin2017/gw-expense-note/internal/vault"
)

type userRow struct {
	ID                       string       `db:"id"`
	Username                 string       `db:"username"`
	Email                    string       `db:"email"`
	FirstName                string       `db:"first_name"`
	LastName                 string       `db:"last_name"`
	Password                 vault.Secret `db:"password"`
	SecurityQuestion         string       `db:"security_question"`
	SecurityAnswer           vault.Secret `db:"security_answer"`
	PasswordResetToken       *string      `db:"password_reset_token"`
	PasswordResetTokenExpiry *time.Time   `db:"password_reset_token_expiry"`
	Image                    []byte       `db:"image"`
	APIDefaultModel          *string      `db:"api_default_model"`
	APIGeminiKey             string       `db:"api_gemini_key"`
	APIOpenAIKey             string       `db:"api_openai_key"`
	CreatedAt                time.Time    `db:"created_at"`
	UpdatedAt                time.Time    `db:"updated_at"`
}

func (r *userRow) toModel() *models.User {
	u := &models.User{
		ID:                       r.ID,
		Username:                 r.Username,
		Email:                    r.Email,
		FirstName:                r.FirstName,
		LastName:                 r.LastName,
		Password:                 r.Password,
		SecurityQuestion:         r.SecurityQuestion,
		SecurityAnswer:           r.SecurityAnswer,
		PasswordResetToken:       r.PasswordResetToken,
		PasswordResetTokenExpiry: r.PasswordResetTokenExpiry,
		Image:                    r.Image,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}
	if r.APIDefaultModel != nil {
		u.APIToken = &models.APIToken{
			DefaultModel: models.Model(*r.APIDefaultModel),
			GeminiKey:    r.APIGeminiKey,
			OpenAIKey:    r.APIOpenAIKey,
		}
	}
	return u
}

const selectUser = `
	SELECT id, username, email, first_name, last_name, password, security_question,
	       security_answer, password_reset_token, password_reset_token_expiry, image,
	       api_default_model, api_gemini_key, api_openai_key, created_at, updated_at
	FROM users
`

// UserReadRepository looks users up. Every getter returns nil, nil when no row matches.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.get(ctx, selectUser+`WHERE id = $1`, id)
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.get(ctx, selectUser+`WHERE username = $1`, username)
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.get(ctx, selectUser+`WHERE email = $1`, email)
}

func (r *UserReadRepository) GetByResetToken(ctx context.Context, token string) (*models.User, error) {
	return r.get(ctx, selectUser+`WHERE password_reset_token = $1`, token)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg string) (*models.User, error) {
	var row userRow
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, arg)

	found := err == nil
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	logQuery(query, []any{arg}, found, err)

	if err != nil || !found {
		return nil, err
	}
	return row.toModel(), nil
}

// UserWriteRepository persists users. Plain secrets are sealed into hashes
// before the write and the caller's struct is updated with the sealed values,
// so saving the same user twice never re-hashes.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) error {
	const query = `
		INSERT INTO users (id, username, email, first_name, last_name, password, security_question,
		                   security_answer, password_reset_token, password_reset_token_expiry, image,
		                   api_default_model, api_gemini_key, api_openai_key, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`
	if err := seal(user); err != nil {
		return err
	}

	model, gemini, openai := apiTokenColumns(user.APIToken)
	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.Password, user.SecurityQuestion, user.SecurityAnswer,
		user.PasswordResetToken, user.PasswordResetTokenExpiry, user.Image,
		model, gemini, openai,
	)
	logQuery(query, []any{user.ID, user.Username, user.Email}, nil, err)

	return err
}

func (r *UserWriteRepository) Update(ctx context.Context, user *models.User) error {
	const query = `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, last_name = $5, password = $6,
		    security_question = $7, security_answer = $8, password_reset_token = $9,
		    password_reset_token_expiry = $10, image = $11, api_default_model = $12,
		    api_gemini_key = $13, api_openai_key = $14, updated_at = NOW()
		WHERE id = $1
	`
	if err := seal(user); err != nil {
		return err
	}

	model, gemini, openai := apiTokenColumns(user.APIToken)
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.Password, user.SecurityQuestion, user.SecurityAnswer,
		user.PasswordResetToken, user.PasswordResetTokenExpiry, user.Image,
		model, gemini, openai,
	)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{user.ID, user.Username, user.Email}, rowsAffected, err)

	return err
}

func seal(user *models.User) error {
	password, err := vault.Seal(user.Password)
	if err != nil {
		return err
	}
	answer, err := vault.Seal(user.SecurityAnswer)
	if err != nil {
		return err
	}
	user.Password, user.SecurityAnswer = password, answer
	return nil
}

func apiTokenColumns(t *models.APIToken) (model *string, gemini, openai string) {
	if t == nil {
		return nil, "", ""
	}
	m := string(t.DefaultModel)
	return &m, t.GeminiKey, t.OpenAIKey
}
