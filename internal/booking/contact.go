package booking

import "strings"

// WhatsAppLink builds a wa.me deep link from a contact phone number.
// Formatting characters are stripped; wa.me accepts digits only.
func WhatsAppLink(number string) string {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String()
}
