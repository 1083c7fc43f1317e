package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAnalysisReport(toEmail, companyName string, totalSavings float64, recommendationCount int) error
	SendAnalysisFailure(toEmail, companyName, reason string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendAnalysisReport(toEmail, companyName string, totalSavings float64, recommendationCount int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Redundancy Analysis Is Ready")

	reportLink := fmt.Sprintf("%s/redundancy", s.clientURL)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Redundancy Analysis Complete</h2>
			<p>The software spend analysis for <strong>%s</strong> has finished.</p>
			<p>Estimated annual savings: <strong>$%.2f</strong></p>
			<p>Consolidation recommendations: <strong>%d</strong></p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">View Report</a>
		</div>
	`, companyName, totalSavings, recommendationCount, reportLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send analysis report to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Analysis report sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendAnalysisFailure(toEmail, companyName, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Redundancy Analysis Failed")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Analysis Could Not Be Completed</h2>
			<p>The software spend analysis for <strong>%s</strong> did not finish.</p>
			<p>Reason: %s</p>
			<p>You can retrigger the analysis from the dashboard at any time.</p>
		</div>
	`, companyName, reason)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send failure notice to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}
