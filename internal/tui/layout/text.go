package layout

import (
	"regexp"
	"unicode/utf8"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// TruncateText truncates text to maxWidth with ellipsis.
// Returns the truncated text and whether truncation occurred.
func TruncateText(text string, maxWidth int, cfg TextConfig) (string, bool) {
	if maxWidth <= 0 {
		return "", true
	}

	ellipsisLen := utf8.RuneCountInString(cfg.Ellipsis)
	textLen := utf8.RuneCountInString(text)

	if textLen <= maxWidth {
		return text, false
	}

	if maxWidth <= ellipsisLen {
		// No room for any text, only a (possibly partial) ellipsis.
		runes := []rune(cfg.Ellipsis)
		return string(runes[:maxWidth]), true
	}

	runes := []rune(text)
	return string(runes[:maxWidth-ellipsisLen]) + cfg.Ellipsis, true
}

// TruncateANSIAware truncates styled text, preserving ANSI codes.
// Used for jump match rendering where matched runes are highlighted.
// The result gets a reset code appended to prevent style bleed.
func TruncateANSIAware(styledText string, maxWidth int, cfg TextConfig) string {
	if maxWidth <= 0 {
		return ""
	}

	if VisibleLength(styledText) <= maxWidth {
		return styledText
	}

	targetLen := maxWidth - utf8.RuneCountInString(cfg.Ellipsis)
	if targetLen < 0 {
		targetLen = 0
	}

	var result []byte
	var visibleCount int
	input := []byte(styledText)

	i := 0
	for i < len(input) && visibleCount < targetLen {
		// Pass ANSI escape sequences through without counting them.
		if input[i] == '\x1b' && i+1 < len(input) && input[i+1] == '[' {
			j := i + 2
			for j < len(input) && input[j] != 'm' {
				j++
			}
			if j < len(input) {
				result = append(result, input[i:j+1]...)
				i = j + 1
				continue
			}
		}

		r, size := utf8.DecodeRune(input[i:])
		if r != utf8.RuneError {
			result = append(result, input[i:i+size]...)
			visibleCount++
		}
		i += size
	}

	result = append(result, []byte(cfg.Ellipsis)...)
	result = append(result, []byte("\x1b[0m")...)

	return string(result)
}
