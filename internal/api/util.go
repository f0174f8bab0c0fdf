package api

import (
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/constants"
)

// respondData writes the success envelope used by every endpoint.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{constants.JSONKeySuccess: true, constants.JSONKeyData: data})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyError: msg})
}

// parseID parses a positive integer path parameter.
func parseID(c *gin.Context, param string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// parseAmount parses a decimal amount string and reports whether it is a
// valid non-negative number.
func parseAmount(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// isWalletAddress reports whether s is a 0x-prefixed 20-byte hex address.
func isWalletAddress(s string) bool {
	return common.IsHexAddress(s)
}

func badRequest(c *gin.Context, msg string) {
	respondError(c, http.StatusBadRequest, msg)
}
