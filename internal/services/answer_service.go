package services

import (
	"context"

	"geekku_backend/internal/logger"
	"geekku_backend/internal/models"
	"geekku_backend/internal/repositories"
	"geekku_backend/internal/services/dto"
	"geekku_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AnswerService - ответы компаний на заявки пользователей
type AnswerService interface {
	WriteHouseAnswer(ctx context.Context, db *gorm.DB, companyID string, req *dto.AnswerWriteRequest) (int, error)
	WriteOnestopAnswer(ctx context.Context, db *gorm.DB, companyID string, req *dto.AnswerWriteRequest) (int, error)
	WriteInteriorAllAnswer(ctx context.Context, db *gorm.DB, companyID string, req *dto.AnswerWriteRequest) (int, error)
	InteriorAllAnswers(ctx context.Context, db *gorm.DB, requestAllNum int) ([]dto.InteriorAnswerDto, error)
}

type answerService struct {
	answerRepo  repositories.AnswerRepository
	companyRepo repositories.CompanyRepository
}

func NewAnswerService(answerRepo repositories.AnswerRepository, companyRepo repositories.CompanyRepository) AnswerService {
	return &answerService{answerRepo: answerRepo, companyRepo: companyRepo}
}

func (s *answerService) WriteHouseAnswer(ctx context.Context, db *gorm.DB, companyID string, req *dto.AnswerWriteRequest) (int, error) {
	db = db.WithContext(ctx)
	if err := s.requireTarget(db, &models.House{}, "house_num", req.TargetNum, "house"); err != nil {
		return 0, err
	}

	answer := &models.HouseAnswer{HouseNum: req.TargetNum, CompanyID: companyID, Content: req.Content}
	if err := s.answerRepo.CreateHouseAnswer(db, answer); err != nil {
		return 0, apperrors.StorageFailure(err, "answer", "Failed to create answer")
	}
	logger.CtxInfo(ctx, "House answer written", "house_num", req.TargetNum, "company_id", companyID)
	return answer.AnswerHouseNum, nil
}

func (s *answerService) WriteOnestopAnswer(ctx context.Context, db *gorm.DB, companyID string, req *dto.AnswerWriteRequest) (int, error) {
	db = db.WithContext(ctx)
	if err := s.requireTarget(db, &models.Onestop{}, "onestop_num", req.TargetNum, "onestop"); err != nil {
		return 0, err
	}

	answer := &models.OnestopAnswer{OnestopNum: req.TargetNum, CompanyID: companyID, Content: req.Content}
	if err := s.answerRepo.CreateOnestopAnswer(db, answer); err != nil {
		return 0, apperrors.StorageFailure(err, "answer", "Failed to create answer")
	}
	logger.CtxInfo(ctx, "Onestop answer written", "onestop_num", req.TargetNum, "company_id", companyID)
	return answer.AnswerOnestopNum, nil
}

func (s *answerService) WriteInteriorAllAnswer(ctx context.Context, db *gorm.DB, companyID string, req *dto.AnswerWriteRequest) (int, error) {
	db = db.WithContext(ctx)
	if err := s.requireTarget(db, &models.InteriorAllRequest{}, "request_all_num", req.TargetNum, "request"); err != nil {
		return 0, err
	}

	answer := &models.InteriorAllAnswer{RequestAllNum: req.TargetNum, CompanyID: companyID, Content: req.Content}
	if err := s.answerRepo.CreateInteriorAllAnswer(db, answer); err != nil {
		return 0, apperrors.StorageFailure(err, "answer", "Failed to create answer")
	}
	logger.CtxInfo(ctx, "Interior answer written", "request_all_num", req.TargetNum, "company_id", companyID)
	return answer.AnswerAllNum, nil
}

func (s *answerService) InteriorAllAnswers(ctx context.Context, db *gorm.DB, requestAllNum int) ([]dto.InteriorAnswerDto, error) {
	db = db.WithContext(ctx)

	answers, err := s.answerRepo.InteriorAllAnswersByRequest(db, requestAllNum)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "answer", "Failed to list answers")
	}

	ids := make([]string, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.CompanyID)
	}
	companies, err := s.companyRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, apperrors.StorageFailure(err, "company", "Failed to load companies")
	}

	return dto.MapSlice(answers, func(a *models.InteriorAllAnswer) dto.InteriorAnswerDto {
		return dto.FromInteriorAllAnswer(a, companies[a.CompanyID])
	}), nil
}

func (s *answerService) requireTarget(db *gorm.DB, model interface{}, pk string, num int, domain string) error {
	ok, err := s.answerRepo.RequestExists(db, model, pk, num)
	if err != nil {
		return apperrors.StorageFailure(err, domain, "Failed to load request")
	}
	if !ok {
		return apperrors.NotFound(repositories.ErrTargetNotFound, domain, "Request not found")
	}
	return nil
}
