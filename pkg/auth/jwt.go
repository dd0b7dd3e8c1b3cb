package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims 是存放在 token 內的呼叫者資訊。
// Address 即鏈上地址，後續所有授權判斷都以它為準。
type Claims struct {
	Address string `json:"address"`
	jwt.RegisteredClaims
}

// Manager 負責簽發與驗證呼叫者的 JWT token。
// 使用 HMAC-SHA256 對稱簽章，secret 由設定檔提供。
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager 建立一個新的 token Manager。
//
// 參數:
//
//	secret: string - HMAC 簽章金鑰
//	ttl: time.Duration - token 有效期限，0 表示使用預設 24 小時
//
// 回傳值:
//
//	*Manager: token 管理器
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue 為指定地址簽發一個新的 token。
//
// 參數:
//
//	address: string - 呼叫者地址
//
// 回傳值:
//
//	string: 簽章後的 token 字串
//	error: 簽章失敗時回傳錯誤
func (m *Manager) Issue(address string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Address: address,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify 驗證 token 簽章與效期，並回傳其中的呼叫者地址。
//
// 參數:
//
//	tokenString: string - 待驗證的 token 字串
//
// 回傳值:
//
//	string: token 內的呼叫者地址
//	error: token 無效或過期時回傳錯誤
func (m *Manager) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Address == "" {
		return "", errors.New("token missing address claim")
	}
	return claims.Address, nil
}
