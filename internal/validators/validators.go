package validators

import (
	"strings"

	"github.com/google/uuid"
)

// CheckCurrency проверяет код валюты: три заглавные латинские буквы
func CheckCurrency(code string) bool {
	return checkUpperLetters(code, 3)
}

// CheckCountry проверяет код страны: две заглавные латинские буквы
func CheckCountry(code string) bool {
	return checkUpperLetters(code, 2)
}

// CheckUserID проверяет идентификатор пользователя (UUID)
func CheckUserID(id string) bool {
	if strings.TrimSpace(id) != id || id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// CanonicalUserID приводит идентификатор пользователя к каноническому виду UUID
// (нижний регистр, без фигурных скобок и префикса urn:uuid:)
func CanonicalUserID(id string) (string, bool) {
	if !CheckUserID(id) {
		return "", false
	}
	return uuid.MustParse(id).String(), true
}

func checkUpperLetters(code string, size int) bool {
	if len(code) != size {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
