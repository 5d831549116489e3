package framework

import (
	"errors"
	"strings"
)

// reformatError condenses the multi-line output of a testify assertion failure into a single
// line containing only the failure message and any caller-supplied message, so that it reads
// well in a test result's details. Other errors are returned unchanged.
func reformatError(err error) error {
	s := err.Error()
	if !strings.Contains(s, "Error Trace:") {
		return err
	}
	var parts, messages []string
	section := ""
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if label, content, ok := splitLabel(trimmed); ok {
			section = label
			trimmed = content
		}
		switch section {
		case "Error":
			parts = append(parts, trimmed)
		case "Messages":
			messages = append(messages, trimmed)
		}
	}
	if len(parts) == 0 {
		return err
	}
	message := strings.Join(parts, " ")
	if len(messages) != 0 {
		message += " (" + strings.Join(messages, " ") + ")"
	}
	return errors.New(message)
}

func splitLabel(line string) (string, string, bool) {
	for _, label := range []string{"Error Trace", "Error", "Test", "Messages"} {
		if strings.HasPrefix(line, label+":") {
			return label, strings.TrimSpace(strings.TrimPrefix(line, label+":")), true
		}
	}
	return "", "", false
}
