package service

// QRCodeService renders device provisioning codes.
type QRCodeService interface {
	// GenerateProvisioningQR returns a PNG encoding the device uid and its working group.
	GenerateProvisioningQR(deviceUID string, workingGroupID int64) ([]byte, error)

	// ParseProvisioningQR decodes the payload of a scanned provisioning code.
	ParseProvisioningQR(payload string) (deviceUID string, workingGroupID int64, err error)
}
