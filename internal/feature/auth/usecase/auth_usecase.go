package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"polygon_dashboard/internal/feature/auth/domain/entity"
)

// minPasswordLength はサインアップ時に要求するパスワードの最低文字数です。
const minPasswordLength = 8

// dummyPasswordHash はユーザー未検出時でもbcrypt比較を実行するためのダミーハッシュです。
// ユーザーの存在有無で応答時間に差が出ること（タイミング攻撃）を防ぎます。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// インターフェースはコンシューマー側（usecase）で定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化します。メールアドレスが重複する場合はエラーを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail はメールアドレスでユーザーを検索します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID はIDでユーザーを検索します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator は署名済みアクセストークンの発行を抽象化します。
type JWTGenerator interface {
	GenerateToken(userID uint, email string) (string, error)
}

// authUsecase はサインアップとログインのビジネスロジックを実装します。
type authUsecase struct {
	users UserRepository
	jwt   JWTGenerator
}

// NewAuthUsecase はauthUsecaseを生成します。
func NewAuthUsecase(users UserRepository, jwt JWTGenerator) *authUsecase {
	return &authUsecase{users: users, jwt: jwt}
}

// Signup はパスワードをbcryptでハッシュ化して新規ユーザーを登録します。
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return u.users.Create(ctx, &entity.User{
		Email:    email,
		Password: string(hashed),
	})
}

// Login はユーザーを認証し、成功時に署名済みJWTを返します。
// 認証失敗の理由（ユーザー不在かパスワード不一致か）は呼び出し元に区別させません。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, findErr := u.users.FindByEmail(ctx, email)

	// 未検出でも必ずbcrypt比較を通すことで応答時間を揃える
	hash := dummyPasswordHash
	if findErr == nil {
		hash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if findErr != nil || compareErr != nil {
		return "", errors.New("invalid email or password")
	}

	token, err := u.jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
