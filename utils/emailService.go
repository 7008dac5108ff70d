package utils

import (
	"fmt"
	"log"
	"strings"

	"placementpulse/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEnrollmentConfirmation emails a student after a successful enrollment.
// Failures are logged by the caller; they never fail the enrollment itself.
func SendEnrollmentConfirmation(email, name string, courseTitles []string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Println("SendGrid key not set, skipping enrollment confirmation email")
		return nil
	}

	if name == "" {
		name = "Student"
	}

	courseList := strings.Join(courseTitles, ", ")
	subject := "Enrollment Confirmed - PlacementPulse"

	plainText := fmt.Sprintf(
		"Hi %s,\n\nYour enrollment is confirmed for: %s.\n\nHead over to your dashboard to start preparing.\n\nTeam PlacementPulse",
		name, courseList,
	)

	htmlBody := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #1a1a2e;">Enrollment Confirmed</h2>
					<p>Hi %s,</p>
					<p>Your enrollment is confirmed for: <strong>%s</strong>.</p>
					<p>Head over to your dashboard to start preparing.</p>
					<p style="color: #888;">Team PlacementPulse</p>
				</div>
			</body>
		</html>`, name, courseList)

	from := mail.NewEmail("PlacementPulse", config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}

	log.Printf("Enrollment confirmation sent to %s", email)
	return nil
}
