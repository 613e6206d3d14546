// Package venmo builds outbound Venmo pay links. Pure formatting, no
// network: the system never talks to Venmo, it only hands the caller a URL.
package venmo

import (
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://venmo.com"

// BuildNote returns the payment note embedded in a pay link:
// "<eventName>-via.Vensoc".
func BuildNote(eventName string) string {
	return strings.TrimSpace(eventName) + "-via.Vensoc"
}

// BuildPayLink formats a Venmo payment URL for the organizer's handle. Any
// leading "@"s are stripped from the handle and the amount is rendered with
// exactly two fraction digits. Query parameters keep a fixed order so links
// for the same event are byte-identical.
func BuildPayLink(organizerVenmoUsername string, amount float64, eventName string) string {
	username := strings.TrimLeft(strings.TrimSpace(organizerVenmoUsername), "@")
	note := strings.ReplaceAll(url.QueryEscape(BuildNote(eventName)), "+", "%20")
	return fmt.Sprintf("%s/%s?txn=pay&amount=%.2f&note=%s", baseURL, username, amount, note)
}
