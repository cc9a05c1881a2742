package email

import "fmt"

// WelcomeBody renders the registration welcome email.
func WelcomeBody(firstName string) (subject, html string) {
	subject = "Welcome to WatchParty"
	html = fmt.Sprintf(`<h2>Welcome, %s!</h2>
<p>Your WatchParty account is ready. Join a channel, schedule a party and
invite your friends to watch together.</p>`, firstName)
	return subject, html
}
