package contract

import (
	"context"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/stretchr/testify/mock"
)

// --- MockTerraformClient Implementation ---

// MockTerraformClient is an autogenerated mock type for the TerraformClient type.
type MockTerraformClient struct {
	mock.Mock
}

var _ TerraformClient = &MockTerraformClient{} // Compile-time check

// Run implements the TerraformClient interface.
func (m *MockTerraformClient) Run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	mockArgs := []any{ctx, dir}
	for _, arg := range args {
		mockArgs = append(mockArgs, arg)
	}
	ret := m.Called(mockArgs...)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// CheckFormat implements the TerraformClient interface.
func (m *MockTerraformClient) CheckFormat(ctx context.Context, dir string) ([]byte, error) {
	ret := m.Called(ctx, dir)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// Init implements the TerraformClient interface.
func (m *MockTerraformClient) Init(ctx context.Context, dir string) ([]byte, error) {
	ret := m.Called(ctx, dir)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// Validate implements the TerraformClient interface.
func (m *MockTerraformClient) Validate(ctx context.Context, dir string) ([]byte, error) {
	ret := m.Called(ctx, dir)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// Plan implements the TerraformClient interface.
func (m *MockTerraformClient) Plan(ctx context.Context, dir string) ([]byte, error) {
	ret := m.Called(ctx, dir)
	output, _ := ret.Get(0).([]byte)
	return output, ret.Error(1)
}

// --- MockProber Implementation ---

// MockProber is an autogenerated mock type for the Prober type.
type MockProber struct {
	mock.Mock
}

var _ Prober = &MockProber{} // Compile-time check

// Probe implements the Prober interface.
func (m *MockProber) Probe(ctx context.Context, url string) schema.ProbeResult {
	ret := m.Called(ctx, url)
	result, _ := ret.Get(0).(schema.ProbeResult)
	return result
}
