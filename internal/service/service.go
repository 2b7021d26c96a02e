package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/realtyaudit/capital-service/internal/config"
	"github.com/realtyaudit/capital-service/internal/engine"
	"github.com/realtyaudit/capital-service/internal/models"
	"github.com/realtyaudit/capital-service/internal/repository"
)

// LeadNotifier delivers a notification about a freshly captured lead.
type LeadNotifier interface {
	SendLeadNotification(lead models.Lead) error
}

// KeyRateSource provides the current central bank key rate.
type KeyRateSource interface {
	GetKeyRate() (float64, error)
}

// Service handles business logic
type Service struct {
	repo     *repository.Repository
	cache    repository.CacheRepository
	rates    KeyRateSource
	notifier LeadNotifier
	log      *logrus.Logger
	config   *config.Config

	mu          sync.RWMutex
	keyRate     float64
	keyRateTime time.Time
}

// NewService initializes a new service. Cache, rates and notifier may be nil;
// the corresponding features degrade gracefully.
func NewService(repo *repository.Repository, cache repository.CacheRepository, rates KeyRateSource, notifier LeadNotifier, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, cache: cache, rates: rates, notifier: notifier, log: log, config: cfg}
}

// Calculate runs the audit and simulation engine for one input snapshot.
// Results are memoized on the input tuple: identical portfolios and
// parameters always produce identical output, so the cache needs no
// invalidation beyond its TTL.
func (s *Service) Calculate(ctx context.Context, req models.CalculateRequest) (models.CalculationResult, error) {
	key, err := cacheKey(req)
	if err == nil && s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			var result models.CalculationResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				s.log.Debugf("Calculation served from cache: %s", key)
				return result, nil
			}
		}
	}

	result := engine.Run(req)

	if err == nil && s.cache != nil {
		if payload, merr := json.Marshal(result); merr == nil {
			if cerr := s.cache.Set(ctx, key, string(payload), s.config.CacheTTL); cerr != nil {
				s.log.Warnf("Failed to cache calculation: %v", cerr)
			}
		}
	}
	return result, nil
}

func cacheKey(req models.CalculateRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to build cache key: %w", err)
	}
	sum := sha256.Sum256(payload)
	return "calc:" + hex.EncodeToString(sum[:]), nil
}

// SubmitLead stores a contact request and notifies the agency inbox. The
// notification is best-effort: a dead SMTP server must not lose the lead.
func (s *Service) SubmitLead(name, phone string) (*models.Lead, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}

	lead := &models.Lead{Name: name, Phone: phone}
	if err := s.repo.CreateLead(lead); err != nil {
		return nil, err
	}
	s.log.Infof("Lead captured: %s", lead.Phone)

	if s.notifier != nil && s.config.LeadInbox != "" {
		if err := s.notifier.SendLeadNotification(*lead); err != nil {
			s.log.Warnf("Failed to notify about lead %d: %v", lead.ID, err)
		}
	}
	return lead, nil
}

// Leads returns all captured leads, newest first.
func (s *Service) Leads() ([]models.Lead, error) {
	return s.repo.ListLeads()
}

// Login authenticates the agency admin and returns a JWT token
func (s *Service) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Info("Admin logged in")
	return tokenString, nil
}

// RefreshKeyRate pulls the current key rate and caches it for KeyRate.
// Called at startup and on a schedule.
func (s *Service) RefreshKeyRate() {
	if s.rates == nil {
		return
	}
	rate, err := s.rates.GetKeyRate()
	if err != nil {
		s.log.Warnf("Failed to refresh key rate: %v", err)
		return
	}
	s.mu.Lock()
	s.keyRate = rate
	s.keyRateTime = time.Now()
	s.mu.Unlock()
	s.log.Infof("Key rate refreshed: %.2f%%", rate)
}

// KeyRate returns the last refreshed key rate. ok is false until the first
// successful refresh.
func (s *Service) KeyRate() (rate float64, updatedAt time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyRate, s.keyRateTime, !s.keyRateTime.IsZero()
}
