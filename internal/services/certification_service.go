package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// CodeTTL - сколько действует код подтверждения
const CodeTTL = 5 * time.Minute

// CodeSender доставляет код подтверждения получателю
type CodeSender interface {
	SendCode(ctx context.Context, to string, code int) error
}

type CertificationService interface {
	// Send выдает новый 6-значный код и отправляет его по SMS или email
	Send(ctx context.Context, db *gorm.DB, req *dto.SendCodeRequest) error
	// Check сверяет код; при совпадении код погашается
	Check(ctx context.Context, db *gorm.DB, req *dto.CheckCodeRequest) (bool, error)
}

type certificationService struct {
	authRepo repositories.AuthCodeRepository
	sms      CodeSender
	email    CodeSender
	now      func() time.Time
}

func NewCertificationService(authRepo repositories.AuthCodeRepository, sms, email CodeSender) CertificationService {
	return &certificationService{
		authRepo: authRepo,
		sms:      sms,
		email:    email,
		now:      time.Now,
	}
}

func (s *certificationService) Send(ctx context.Context, db *gorm.DB, req *dto.SendCodeRequest) error {
	code, err := generateCode()
	if err != nil {
		return apperrors.InternalError(err)
	}

	record := &models.Auth{CertificationNum: code}
	sender, to := s.email, req.Email
	if req.Phone != "" {
		record.Phone = req.Phone
		sender, to = s.sms, req.Phone
	} else {
		record.Email = req.Email
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.authRepo.DeleteFor(tx, record.Phone, record.Email); err != nil {
			return err
		}
		return s.authRepo.Create(tx, record)
	})
	if err != nil {
		return apperrors.StorageFailure(err, "certification", "Failed to store certification code")
	}

	if sender == nil {
		return apperrors.ExternalFailure(errors.New("no sender configured"), "certification", "Certification channel is not configured")
	}
	if err := sender.SendCode(ctx, to, code); err != nil {
		return apperrors.ExternalFailure(err, "certification", "Failed to send certification code")
	}
	logger.CtxInfo(ctx, "Certification code sent", "channel", channelName(req.Phone))
	return nil
}

func (s *certificationService) Check(ctx context.Context, db *gorm.DB, req *dto.CheckCodeRequest) (bool, error) {
	phone, email := req.Phone, req.Email
	if phone != "" {
		email = ""
	}

	db = db.WithContext(ctx)
	record, err := s.authRepo.FindLatest(db, phone, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAuthCodeNotFound) {
			return false, nil
		}
		return false, apperrors.StorageFailure(err, "certification", "Failed to load certification code")
	}

	if s.now().Sub(record.CreatedAt) > CodeTTL || record.CertificationNum != req.CertificationNum {
		return false, nil
	}

	if err := s.authRepo.Delete(db, record.AuthNum); err != nil {
		return false, apperrors.StorageFailure(err, "certification", "Failed to consume certification code")
	}
	return true, nil
}

func generateCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()) + 100000, nil
}

func channelName(phone string) string {
	if phone != "" {
		return "sms"
	}
	return "email"
}

// TwilioSender отправляет код по SMS
type TwilioSender struct {
	client    *twilio.RestClient
	fromPhone string
}

func NewTwilioSender(accountSID, authToken, fromPhone string) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{client: client, fromPhone: fromPhone}
}

func (s *TwilioSender) SendCode(ctx context.Context, to string, code int) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.fromPhone)
	params.SetBody(fmt.Sprintf("[geekku] 인증번호는 %06d 입니다.", code))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms via twilio: %w", err)
	}
	return nil
}

// SMTPSender отправляет код письмом
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

func (s *SMTPSender) SendCode(ctx context.Context, to string, code int) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "[geekku] 인증번호 안내")
	m.SetBody("text/html", fmt.Sprintf("<p>인증번호: <b>%06d</b></p><p>5분 안에 입력해 주세요.</p>", code))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email via smtp: %w", err)
	}
	return nil
}
