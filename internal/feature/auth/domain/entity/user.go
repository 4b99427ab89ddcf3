// Package entity はauthフィーチャーのドメインエンティティを定義します。
package entity

import "time"

// User はダッシュボードの登録ユーザーです。
type User struct {
	// ID はユーザーの一意な識別子です。
	ID uint `gorm:"primaryKey"`

	// Email は認証に使用するメールアドレスです。全ユーザー間で一意です。
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password はbcryptでハッシュ化されたパスワードです。平文は保存しません。
	Password string `gorm:"size:255;not null"`

	// CreatedAt はユーザーの作成日時です。
	CreatedAt time.Time

	// UpdatedAt はユーザーの最終更新日時です。
	UpdatedAt time.Time
}
