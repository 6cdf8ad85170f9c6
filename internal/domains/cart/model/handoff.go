package model

import (
	"fmt"
	"net/url"
	"strings"
)

// CheckoutMessage renders the pre-filled chat message:
//
//	<greeting>
//
//	- <title> (x<qty>)
//
//	Total: $<total>
func CheckoutMessage(greeting string, items []CartItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("- %s (x%d)", item.Book.Title, item.Quantity))
	}
	return fmt.Sprintf("%s\n\n%s\n\nTotal: $%s",
		greeting, strings.Join(lines, "\n"), Total(items).StringFixed(2))
}

// QueryEscape escapes characters a browser leaves alone in a URI component
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
	"%7E", "~",
)

// HandoffURL builds <base>/<number>?text=<message>. Spaces are sent as %20.
func HandoffURL(baseURL, number, message string) string {
	text := componentUnescaper.Replace(url.QueryEscape(message))
	return fmt.Sprintf("%s/%s?text=%s", strings.TrimRight(baseURL, "/"), number, text)
}
