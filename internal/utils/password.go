package utils

import "golang.org/x/crypto/bcrypt"

// PasswordCost: стоимость bcrypt; тесты понижают её до bcrypt.MinCost.
var PasswordCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash сравнивает за постоянное время; на битом хеше просто false.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
