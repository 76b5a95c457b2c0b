package utils

import (
	"os"
	"os/user"
)

// Identity names who ran a command.
type Identity struct {
	User string
	Host string
}

// CurrentIdentity returns the local user and host. A lookup that fails
// leaves its field empty. When the uid has no passwd entry, as in minimal
// containers, USER or USERNAME is used instead.
func CurrentIdentity() Identity {
	var id Identity

	if u, err := user.Current(); err == nil && u.Username != "" {
		id.User = u.Username
	} else {
		id.User = firstEnv("USER", "USERNAME")
	}

	if host, err := os.Hostname(); err == nil {
		id.Host = host
	}

	return id
}

// firstEnv returns the first non-empty value among the named variables.
func firstEnv(keys ...string) string {
	for _, key := range keys {
		if value := os.Getenv(key); value != "" {
			return value
		}
	}
	return ""
}
