package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) SetupTest() {
}

func (s *ValidatorTestSuite) TearDownTest() {
}

func (s *ValidatorTestSuite) SetupSuite() {
}

func (s *ValidatorTestSuite) TearDownSuite() {
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestIsValidLabelHash() {
	s.True(IsValidLabelHash("0xaf2caa1c2ca1d027f1ac823b529d0a67cd144264b2789fa2ea4d63a67c7103cc"))
	s.True(IsValidLabelHash("[af2caa1c2ca1d027f1ac823b529d0a67cd144264b2789fa2ea4d63a67c7103cc]"))
	s.False(IsValidLabelHash("0x1234"))
	s.False(IsValidLabelHash("af2caa1c2ca1d027f1ac823b529d0a67cd144264b2789fa2ea4d63a67c7103cc"))
	s.False(IsValidLabelHash("0xzz2caa1c2ca1d027f1ac823b529d0a67cd144264b2789fa2ea4d63a67c7103cc"))
}

func (s *ValidatorTestSuite) TestCustomValidator() {
	type payload struct {
		Address   string `validate:"required,eth_addr"`
		LabelHash string `validate:"required,labelhash"`
	}

	v := NewCustomValidator(validator.New())
	s.NoError(v.Validate(&payload{
		Address:   "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		LabelHash: "0xaf2caa1c2ca1d027f1ac823b529d0a67cd144264b2789fa2ea4d63a67c7103cc",
	}))
	s.Error(v.Validate(&payload{Address: "0x1234", LabelHash: "0xaf2caa1c2ca1d027f1ac823b529d0a67cd144264b2789fa2ea4d63a67c7103cc"}))
	s.Error(v.Validate(&payload{Address: "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", LabelHash: "vitalik"}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
