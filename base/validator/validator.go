package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	bEns "github.com/x-xyz/ensapi/base/ens"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidLabelHash accepts a 0x-prefixed 32 byte hex or an encoded "[<hex>]" label
func IsValidLabelHash(s string) bool {
	if bEns.IsEncodedLabelHash(s) {
		return true
	}
	return len(s) == 66 && strings.HasPrefix(s, "0x") && len(common.FromHex(s)) == common.HashLength
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	// the tag name is a constant, registration can only fail on programmer error
	if err := v.RegisterValidation("labelhash", func(fl validator.FieldLevel) bool {
		return IsValidLabelHash(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
