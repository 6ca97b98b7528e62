package service

import (
	"fmt"

	"pdfchat-api/internal/domain"
)

type usageService struct {
	userRepo domain.UserRepository
	logger   domain.Logger
}

func NewUsageService(userRepo domain.UserRepository, logger domain.Logger) domain.UsageService {
	return &usageService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ResetMonthlyUsage zeroes every user's upload counter in one batch and
// returns how many records changed.
func (s *usageService) ResetMonthlyUsage() (int64, error) {
	n, err := s.userRepo.ResetMonthlyUploadUsage()
	if err != nil {
		return 0, fmt.Errorf("failed to reset monthly usage: %w", err)
	}
	if n == 0 {
		s.logger.Info("No usage counters to reset")
	}
	return n, nil
}
