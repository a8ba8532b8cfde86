// Package main provides the entry point for the urlrisk CLI.
//
// urlrisk scores URLs for phishing risk from their text alone. It extracts
// a few lexical features, runs them through a pre-fitted scaler and
// classifier, and prints a risk tier with confidence and reasons.
//
// Usage:
//
//	urlrisk check <url>
//	urlrisk check --list <file>
//	urlrisk serve
//
// See --help for all available options.
package main

// main is the entry point for urlrisk.
func main() {
	Execute()
}
