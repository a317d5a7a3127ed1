package advancement

import (
	"strings"

	"github.com/roach88/advkit/pkg/condition"
)

// Key is a namespaced identifier such as "minecraft:story/root".
type Key struct {
	Namespace string
	Key       string
}

// NewKey returns the key namespace:key. It is not validated until the
// advancement is built.
func NewKey(namespace, key string) Key {
	return Key{Namespace: namespace, Key: key}
}

// MinecraftKey returns a key in the minecraft namespace.
func MinecraftKey(key string) Key {
	return Key{Namespace: condition.MinecraftNamespace, Key: key}
}

// ParseKey parses "namespace:key". A string without a colon is placed in the
// minecraft namespace.
func ParseKey(s string) (Key, error) {
	ns, key, found := strings.Cut(s, ":")
	if !found {
		ns, key = condition.MinecraftNamespace, s
	}
	k := Key{Namespace: ns, Key: key}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}

// String returns "namespace:key".
func (k Key) String() string {
	return k.Namespace + ":" + k.Key
}

// IsZero reports whether both parts are empty.
func (k Key) IsZero() bool {
	return k.Namespace == "" && k.Key == ""
}

// Validate checks the character sets allowed by the server: namespaces use
// [a-z0-9_.-], keys additionally allow '/'. Key path segments must be
// non-empty and neither "." nor "..".
func (k Key) Validate() error {
	if k.Namespace == "" {
		return newInvalidKeyError(k.String(), "empty namespace")
	}
	if k.Key == "" {
		return newInvalidKeyError(k.String(), "empty key")
	}
	if !validKeyPart(k.Namespace, false) {
		return newInvalidKeyError(k.String(), "namespace must match [a-z0-9_.-]")
	}
	if !validKeyPart(k.Key, true) {
		return newInvalidKeyError(k.String(), "key must match [a-z0-9_.-/]")
	}
	if k.Namespace == "." || k.Namespace == ".." {
		return newInvalidKeyError(k.String(), "namespace cannot be . or ..")
	}
	// Keys name files under the world directory.
	for _, seg := range strings.Split(k.Key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return newInvalidKeyError(k.String(), "key has an empty, . or .. path segment")
		}
	}
	return nil
}

func validKeyPart(s string, slash bool) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
		case r == '/' && slash:
		default:
			return false
		}
	}
	return true
}
