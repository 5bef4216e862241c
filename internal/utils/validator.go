package utils

import (
	"net/mail"
	"regexp"
	"strings"
)

var (
	passwordCharset = regexp.MustCompile(`^[a-zA-Z0-9[:punct:]]+$`)
	hasLetter       = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit        = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail 返回 (是否合法, 提示信息)
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "L'adresse e-mail est requise"
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return false, "Adresse e-mail invalide"
	}
	return true, ""
}

// ValidatePassword 至少 8 位，且同时包含字母与数字
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Le mot de passe doit contenir au moins 8 caractères"
	}
	if !passwordCharset.MatchString(password) {
		return false, "Le mot de passe ne peut contenir que des lettres, des chiffres et des symboles"
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return false, "Le mot de passe doit contenir au moins une lettre et un chiffre"
	}
	return true, ""
}
