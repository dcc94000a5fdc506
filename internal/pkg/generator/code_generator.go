package generator

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/yuzvak/nhh-storefront/internal/pkg/clock"
)

const referencePrefix = "NHH-"

type CodeGenerator struct {
	clock clock.Clock
}

func NewCodeGenerator(c clock.Clock) *CodeGenerator {
	return &CodeGenerator{clock: c}
}

// OrderReference derives a display reference from the current time:
// "NHH-" followed by the last six base-36 digits of the Unix millisecond
// timestamp, uppercased. References are not guaranteed unique.
func (g *CodeGenerator) OrderReference() string {
	ms := g.clock.Now().UnixMilli()
	digits := strconv.FormatInt(ms, 36)
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	return referencePrefix + strings.ToUpper(digits)
}

func (g *CodeGenerator) SessionID() string {
	return uuid.NewString()
}

// ValidSessionID accepts the ids SessionID hands out.
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}
