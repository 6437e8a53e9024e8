package service

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends notification emails via Amazon SES. All sends are
// best effort: failures are logged and never affect the request that
// triggered them.
type EmailService struct {
	client      *sesv2.Client
	fromEmail   string
	fromName    string
	adminEmails []string
	appBaseURL  string
	enabled     bool
}

// NewEmailService creates a new email service. If fromEmail is empty the
// service is disabled and all sends are skipped.
func NewEmailService(awsRegion, fromEmail, fromName string, adminEmails []string, appBaseURL string) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:      sesv2.NewFromConfig(cfg),
		fromEmail:   fromEmail,
		fromName:    fromName,
		adminEmails: adminEmails,
		appBaseURL:  appBaseURL,
		enabled:     true,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// NotifyRegistration tells the admins a new parent needs approval.
// Fire-and-forget; never blocks or fails the caller.
func (s *EmailService) NotifyRegistration(parentEmail, parentName, parentID string) {
	subject := "[SafeRide] New User Registration - Approval Required"
	body := fmt.Sprintf(`
<h2>New User Registration</h2>
<p>A new user has registered on SafeRide and requires approval:</p>
<ul>
	<li><strong>Name:</strong> %s</li>
	<li><strong>Email:</strong> %s</li>
	<li><strong>User ID:</strong> %s</li>
</ul>
<p><a href="%s/admin/users/%s">Review User</a></p>
`, parentName, parentEmail, parentID, s.appBaseURL, parentID)

	go s.sendToAdmins(subject, body)
}

// NotifyEnrollmentRequest tells the admins a new enrollment is pending
func (s *EmailService) NotifyEnrollmentRequest(parentEmail, parentName, schoolName, enrollmentID string) {
	subject := "[SafeRide] New School Enrollment Request"
	body := fmt.Sprintf(`
<h2>New School Enrollment Request</h2>
<ul>
	<li><strong>Parent Name:</strong> %s</li>
	<li><strong>Parent Email:</strong> %s</li>
	<li><strong>School:</strong> %s</li>
</ul>
<p><a href="%s/admin/enrollments/%s">Review Enrollment</a></p>
`, parentName, parentEmail, schoolName, s.appBaseURL, enrollmentID)

	go s.sendToAdmins(subject, body)
}

// NotifyApprovalDecision tells a parent their account was approved or rejected
func (s *EmailService) NotifyApprovalDecision(parentEmail, parentName string, approved bool) {
	var subject, body string
	if approved {
		subject = "[SafeRide] Account Approved - Welcome!"
		body = fmt.Sprintf(`
<h2>Welcome to SafeRide, %s!</h2>
<p>Your account has been approved and you can now access all SafeRide features.</p>
<p><a href="%s/dashboard">Login to SafeRide</a></p>
`, parentName, s.appBaseURL)
	} else {
		subject = "[SafeRide] Account Registration Update"
		body = fmt.Sprintf(`
<h2>Hello %s,</h2>
<p>We were unable to approve your SafeRide registration at this time.
Please contact support if you believe this is a mistake.</p>
`, parentName)
	}

	go func() {
		if err := s.send(parentEmail, subject, body); err != nil {
			log.Printf("Failed to send approval email to %s: %v", parentEmail, err)
		}
	}()
}

func (s *EmailService) sendToAdmins(subject, body string) {
	for _, adminEmail := range s.adminEmails {
		if err := s.send(adminEmail, subject, body); err != nil {
			log.Printf("Failed to send admin email to %s: %v", adminEmail, err)
		}
	}
}

func (s *EmailService) send(toEmail, subject, htmlBody string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): %q to %s", subject, toEmail)
		return nil
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(context.Background(), input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
