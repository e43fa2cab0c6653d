// Package examples holds the canned user stories used by the demo command.
package examples

import "sort"

// Example is a predefined user story with acceptance criteria.
type Example struct {
	Story    string
	Criteria []string
}

var examples = map[string]Example{
	"login": {
		Story: "As a registered user, I want to log into my account using my email and password so that I can access my personalized dashboard.",
		Criteria: []string{
			"User can enter valid email and password",
			"System validates credentials against database",
			"User is redirected to dashboard on successful login",
			"Error message shown for invalid credentials",
			"Account locked after 3 failed attempts",
		},
	},
	"ecommerce": {
		Story: "As a customer, I want to add items to my shopping cart and proceed to checkout so that I can purchase products online.",
		Criteria: []string{
			"User can add products to cart",
			"Cart displays correct items and quantities",
			"User can modify cart contents",
			"Checkout process calculates total correctly",
			"Payment is processed securely",
		},
	},
	"api": {
		Story: "As a developer, I want to integrate with a REST API to retrieve user data so that I can display user profiles in my application.",
		Criteria: []string{
			"API returns user data in JSON format",
			"Authentication token is required",
			"Rate limiting is enforced",
			"Error responses are properly formatted",
			"Data includes all required user fields",
		},
	},
	"mobile": {
		Story: "As a mobile app user, I want to receive push notifications for important updates so that I stay informed about relevant activities.",
		Criteria: []string{
			"Notifications appear on device lock screen",
			"User can enable/disable notifications",
			"Notifications are categorized by importance",
			"Tapping notification opens relevant app section",
			"Notification history is maintained",
		},
	},
}

// Get returns the named example and whether it exists.
func Get(name string) (Example, bool) {
	ex, ok := examples[name]
	return ex, ok
}

// Names returns the available example names in sorted order.
func Names() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
