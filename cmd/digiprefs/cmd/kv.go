package cmd

import (
	"fmt"
	"strings"
)

type keyValue struct {
	Key   string
	Value string
}

// parseKeyValuePairs keeps argument order so a repeated key resolves to its last value.
func parseKeyValuePairs(items []string) ([]keyValue, error) {
	result := make([]keyValue, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key, value, err := splitKeyValue(trimmed)
		if err != nil {
			return nil, err
		}
		result = append(result, keyValue{Key: key, Value: value})
	}
	return result, nil
}

func splitKeyValue(value string) (string, string, error) {
	key, val, ok := strings.Cut(value, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid format %q (expected KEY=VALUE)", value)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("invalid format %q (empty key)", value)
	}
	return key, strings.TrimSpace(val), nil
}
