package auth

import "fmt"

// AdminCredentials holds the administrator login. The password is kept only
// as a bcrypt hash.
type AdminCredentials struct {
	phone  string
	hash   string
	hasher HashServiceInterface
}

func NewAdminCredentials(phone, password string, hasher HashServiceInterface) (*AdminCredentials, error) {
	hash, err := hasher.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &AdminCredentials{phone: phone, hash: hash, hasher: hasher}, nil
}

func (c *AdminCredentials) Verify(phone, password string) bool {
	return phone == c.phone && c.hasher.ComparePassword(c.hash, password)
}

func (c *AdminCredentials) Phone() string {
	return c.phone
}
