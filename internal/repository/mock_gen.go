// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks -typed UserRepositoryIface
//go:generate mockgen -source=./company.go -destination=../mocks/mock_company_repository.go -package=mocks -typed CompanyRepositoryIface
//go:generate mockgen -source=./workspace.go -destination=../mocks/mock_workspace_repository.go -package=mocks -typed WorkspaceRepositoryIface
//go:generate mockgen -source=./survey.go -destination=../mocks/mock_survey_repository.go -package=mocks -typed SurveyRepositoryIface
//go:generate mockgen -source=./question.go -destination=../mocks/mock_question_repository.go -package=mocks -typed QuestionRepositoryIface
//go:generate mockgen -source=./theme.go -destination=../mocks/mock_theme_repository.go -package=mocks -typed ThemeRepositoryIface
