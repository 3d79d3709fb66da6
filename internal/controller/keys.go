package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func IntKey(raw string) (int, error) {
	return strconv.Atoi(raw)
}

func UUIDKey(raw string) (uuid.UUID, error) {
	return uuid.Parse(raw)
}

// StringKey accepts any non-blank natural key such as a category code.
func StringKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", errors.New("empty key")
	}
	return key, nil
}
