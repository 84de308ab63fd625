// internal/email/mailer/company_invite.go
package mailer

import "github.com/SurveyOS/SurveyOS-api/internal/email"

// CompanyInviteTemplateData contains data for the company invite email template
type CompanyInviteTemplateData struct {
	Name        string
	CompanyName string
	Role        string
	LoginLink   string
}

// SendCompanyInviteEmail notifies a user they were added to a company
func SendCompanyInviteEmail(s *email.Service, to string, data CompanyInviteTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "SurveyOS",
		Subject:      "You have been added to " + data.CompanyName + " on SurveyOS",
		TemplateName: "company_invite",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
