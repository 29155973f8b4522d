package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
	RoleGuest   Role = "guest"
)

var (
	ErrUserExists     = errors.New("auth: user already exists")
	ErrUserNotFound   = errors.New("auth: user not found")
	ErrBadCredentials = errors.New("auth: bad credentials")
)

// User is an account row without the password hash.
type User struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Nickname    string    `json:"nickname"`
	Role        Role      `json:"role"`
}

// NewUser describes a sign-up request. Sign-up always creates students;
// teacher and admin accounts are provisioned out of band.
type NewUser struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Nickname    string `json:"nickname"`
}

func CreateUser(ctx context.Context, db *sql.DB, nu NewUser) (User, error) {
	if _, err := GetByUsername(ctx, db, nu.Username); err == nil {
		return User{}, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	u := User{
		ID:          uuid.New(),
		Username:    nu.Username,
		DisplayName: nu.DisplayName,
		Nickname:    nu.Nickname,
		Role:        RoleStudent,
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, display_name, nickname, role, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		u.ID.String(), u.Username, string(hash), u.DisplayName, u.Nickname, string(u.Role), time.Now().Unix())
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate checks the username/password pair and returns the account.
func Authenticate(ctx context.Context, db *sql.DB, username, password string) (User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, display_name, nickname, role FROM users WHERE username=$1`,
		username)
	var u User
	var id, role, hash string
	if err := row.Scan(&id, &u.Username, &hash, &u.DisplayName, &u.Nickname, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrBadCredentials
		}
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, ErrBadCredentials
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return User{}, err
	}
	u.ID = uid
	u.Role = Role(role)
	return u, nil
}

func GetByUsername(ctx context.Context, db *sql.DB, username string) (User, error) {
	return getUser(ctx, db, `WHERE username=$1`, username)
}

func GetByID(ctx context.Context, db *sql.DB, id uuid.UUID) (User, error) {
	return getUser(ctx, db, `WHERE id=$1`, id.String())
}

func getUser(ctx context.Context, db *sql.DB, where string, arg any) (User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT id, username, display_name, nickname, role FROM users `+where, arg)
	var u User
	var id, role string
	if err := row.Scan(&id, &u.Username, &u.DisplayName, &u.Nickname, &role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}
	uid, err := uuid.Parse(id)
	if err != nil {
		return User{}, err
	}
	u.ID = uid
	u.Role = Role(role)
	return u, nil
}

// ListStudents returns every student account, ordered by username.
func ListStudents(ctx context.Context, db *sql.DB) ([]User, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, username, display_name, nickname, role FROM users WHERE role=$1 ORDER BY username`,
		string(RoleStudent))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		var id, role string
		if err := rows.Scan(&id, &u.Username, &u.DisplayName, &u.Nickname, &role); err != nil {
			return nil, err
		}
		uid, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		u.ID = uid
		u.Role = Role(role)
		out = append(out, u)
	}
	return out, rows.Err()
}
