// internal/email/mailer/workspace_invite.go
package mailer

import "github.com/SurveyOS/SurveyOS-api/internal/email"

// WorkspaceInviteTemplateData contains data for the workspace invite email template
type WorkspaceInviteTemplateData struct {
	Name          string
	WorkspaceName string
	Role          string
	LoginLink     string
}

// SendWorkspaceInviteEmail notifies a user they were added to a workspace
func SendWorkspaceInviteEmail(s *email.Service, to string, data WorkspaceInviteTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "SurveyOS",
		Subject:      "You have been added to the " + data.WorkspaceName + " workspace on SurveyOS",
		TemplateName: "workspace_invite",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
