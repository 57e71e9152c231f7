package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/profile-card/internal/config"
	"github.com/MKhiriev/profile-card/internal/logger"
	"github.com/skip2/go-qrcode"
)

type qrService struct {
	frontendURL string
	size        int

	logger *logger.Logger
}

// NewQRService builds links as {cfg.FrontendURL}/profile/{userID} and
// renders them as cfg.QRCodeSize pixel PNGs with medium error correction.
func NewQRService(cfg config.App, logger *logger.Logger) QRService {
	return &qrService{
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		size:        cfg.QRCodeSize,
		logger:      logger,
	}
}

func (q *qrService) ProfileURL(userID int64) string {
	return fmt.Sprintf("%s/profile/%d", q.frontendURL, userID)
}

func (q *qrService) GenerateProfileQR(ctx context.Context, userID int64) ([]byte, error) {
	png, err := qrcode.Encode(q.ProfileURL(userID), qrcode.Medium, q.size)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("qr encoding failed")
		return nil, fmt.Errorf("%w: %w", ErrQRGenerationFailed, err)
	}

	return png, nil
}
