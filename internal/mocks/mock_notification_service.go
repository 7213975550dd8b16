package mocks

import "github.com/mdestafadilah/pesan-pms/domain"

// MockNotificationService implements domain.NotificationService interface for testing.
// Sent messages are recorded so tests can assert on them.
type MockNotificationService struct {
	SendSMSFunc   func(to, message string) error
	SendEmailFunc func(to, subject, body string) error

	SentSMS    []SentMessage
	SentEmails []SentEmail
}

// SentMessage is a recorded SMS send.
type SentMessage struct {
	To      string
	Message string
}

// SentEmail is a recorded email send.
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendSMS records and optionally delegates an SMS send
func (m *MockNotificationService) SendSMS(to, message string) error {
	m.SentSMS = append(m.SentSMS, SentMessage{To: to, Message: message})
	if m.SendSMSFunc != nil {
		return m.SendSMSFunc(to, message)
	}
	// Default behavior: success
	return nil
}

// SendEmail records and optionally delegates an email send
func (m *MockNotificationService) SendEmail(to, subject, body string) error {
	m.SentEmails = append(m.SentEmails, SentEmail{To: to, Subject: subject, Body: body})
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, body)
	}
	// Default behavior: success
	return nil
}

// Compile-time interface compliance verification
var _ domain.NotificationService = (*MockNotificationService)(nil)
