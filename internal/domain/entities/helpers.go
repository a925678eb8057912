package entities

import "strings"

func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskCPF keeps the first 3 and the last 2 digits.
func MaskCPF(cpf string) string {
	d := OnlyDigits(cpf)
	if len(d) < 6 {
		return strings.Repeat("*", len(d))
	}
	return d[:3] + strings.Repeat("*", len(d)-5) + d[len(d)-2:]
}

// MaskSecret keeps at most the first 4 characters of a credential.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "****"
}
