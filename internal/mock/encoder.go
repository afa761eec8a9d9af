package mock

import (
	"github.com/avictorin/photos-ms-go/internal/model"
	"github.com/avictorin/photos-ms-go/internal/port"
	"github.com/avictorin/photos-ms-go/internal/variant"
)

// MockEncoder implements port.ImageEncoder for tests.
type MockEncoder struct {
	ProbeOut  model.Dimensions
	EncodeOut port.EncodedImage
	BudgetOut port.BudgetResult

	ProbeErr         error
	EncodeErr        error
	EncodeErrByName  map[string]error
	BudgetErr        error

	ProbeCalled     bool
	EncodedProfiles []string
	BudgetCalled    bool
	BudgetMaxWidth  int
	BudgetTargetKB  int
}

func (m *MockEncoder) Probe(src []byte) (model.Dimensions, error) {
	m.ProbeCalled = true
	if m.ProbeErr != nil {
		return model.Dimensions{}, m.ProbeErr
	}
	return m.ProbeOut, nil
}

func (m *MockEncoder) Encode(src []byte, profile variant.SizeProfile, format port.ImageFormat) (port.EncodedImage, error) {
	m.EncodedProfiles = append(m.EncodedProfiles, profile.Name)
	if err, ok := m.EncodeErrByName[profile.Name]; ok {
		return port.EncodedImage{}, err
	}
	if m.EncodeErr != nil {
		return port.EncodedImage{}, m.EncodeErr
	}
	return m.EncodeOut, nil
}

func (m *MockEncoder) FitToByteBudget(src []byte, maxWidth, targetSizeKB int, opts port.BudgetOptions) (port.BudgetResult, error) {
	m.BudgetCalled = true
	m.BudgetMaxWidth = maxWidth
	m.BudgetTargetKB = targetSizeKB
	if m.BudgetErr != nil {
		return port.BudgetResult{}, m.BudgetErr
	}
	return m.BudgetOut, nil
}
