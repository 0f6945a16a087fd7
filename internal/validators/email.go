package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the email's domain actually resolves
// (MX preferred, any A/AAAA record accepted). Used on admin
// registration only; customer-facing paths stick to syntax checks so a
// DNS hiccup never blocks a booking.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
