package service

import (
	"fmt"
	"net/http"

	"acadplan_backend/internal/config"
	"acadplan_backend/internal/model"
	"acadplan_backend/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// NotificationService sends plan-review emails. It is initialized once at
// process start and never called from the report pipeline.
type NotificationService struct {
	cfg  config.MailConfig
	from *sgmail.Email
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{
		cfg:  cfg.Mail,
		from: sgmail.NewEmail(cfg.Mail.FromName, cfg.Mail.FromAddress),
	}
}

// Init validates the mail configuration at boot. A disabled service is
// valid: sends become log lines.
func (s *NotificationService) Init() error {
	if !s.cfg.Enabled {
		logger.Log.Info("Email notifications disabled; review emails will be logged only")
		return nil
	}
	if s.cfg.SendgridAPIKey == "" {
		return fmt.Errorf("mail enabled but sendgrid_api_key is empty")
	}
	logger.Log.Info("Email notification service initialized", zap.String("from", s.cfg.FromAddress))
	return nil
}

// NotifyPlanReviewed mails the plan's teacher about a review decision.
// Sends run asynchronously; a delivery failure is logged, never retried.
func (s *NotificationService) NotifyPlanReviewed(recipient *model.User, plan *model.Plan) {
	subject := fmt.Sprintf("Your plan for %s was %s", plan.Subject, plan.Status)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour teaching plan for %s (cycle %s) has been marked as %s.\n",
		recipient.Name, plan.Subject, plan.Cycle, plan.Status,
	)
	if plan.Feedback != "" {
		body += "\nReviewer feedback:\n" + plan.Feedback + "\n"
	}

	if !s.cfg.Enabled {
		logger.Log.Info("plan review notification (mail disabled)",
			zap.String("to", recipient.Email),
			zap.String("subject", subject),
		)
		return
	}

	go s.send(recipient, subject, body)
}

func (s *NotificationService) send(recipient *model.User, subject, body string) {
	to := sgmail.NewEmail(recipient.Name, recipient.Email)
	message := sgmail.NewSingleEmail(s.from, subject, to, body, "")

	req := sendgrid.GetRequest(s.cfg.SendgridAPIKey, "/v3/mail/send", "https://api.sendgrid.com")
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(message)

	res, err := sendgrid.API(req)
	if err != nil {
		logger.Log.Error("sending review email", zap.Error(err))
	} else if res.StatusCode >= http.StatusBadRequest {
		logger.Log.Error("sending review email",
			zap.Int("status", res.StatusCode),
			zap.String("body", res.Body),
		)
	}
}
