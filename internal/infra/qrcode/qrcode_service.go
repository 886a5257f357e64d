package qrcode

import (
	"workgroup/config"
	"workgroup/internal/domain/service"
	"workgroup/internal/errors"

	"github.com/goccy/go-json"
	"github.com/skip2/go-qrcode"
)

const provisioningType = "device_provisioning"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ProvisioningData is the JSON payload encoded in a provisioning code.
type ProvisioningData struct {
	Type           string `json:"type"`
	DeviceUID      string `json:"device_uid"`
	WorkingGroupID int64  `json:"working_group_id"`
}

// New builds the service from the qrcode config section.
func New(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(256, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

func (s *qrcodeService) GenerateProvisioningQR(deviceUID string, workingGroupID int64) ([]byte, error) {
	if deviceUID == "" {
		return nil, errors.New("device uid is required")
	}

	jsonData, err := json.Marshal(ProvisioningData{
		Type:           provisioningType,
		DeviceUID:      deviceUID,
		WorkingGroupID: workingGroupID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) ParseProvisioningQR(payload string) (string, int64, error) {
	var data ProvisioningData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return "", 0, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != provisioningType {
		return "", 0, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.DeviceUID == "" || data.WorkingGroupID <= 0 {
		return "", 0, errors.New("provisioning code is missing the device or group")
	}

	return data.DeviceUID, data.WorkingGroupID, nil
}
